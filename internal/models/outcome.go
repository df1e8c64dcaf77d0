// internal/models/outcome.go
package models

// Historical outcome types.
const (
	OutcomeSuccess       = "success"
	OutcomeReturned      = "returned"
	OutcomeFosterToAdopt = "foster_to_adopt"
	OutcomeOngoing       = "ongoing"
)

// OutcomeRecord is a historical adoption outcome as stored in the
// rescue-adoption-outcomes index. Read-only to this service.
type OutcomeRecord struct {
	OutcomeID     string `json:"outcome_id"`
	DogID         string `json:"dog_id"`
	ApplicationID string `json:"application_id"`

	Outcome        string `json:"outcome"`
	OutcomeReason  string `json:"outcome_reason,omitempty"`
	SuccessFactors string `json:"success_factors,omitempty"`
	FailureFactors string `json:"failure_factors,omitempty"`
	FollowUpNotes  string `json:"follow_up_notes,omitempty"`

	AdoptionDate string `json:"adoption_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`

	// Present only for returned outcomes.
	DaysUntilReturn *int `json:"days_until_return,omitempty"`
	// 1-10, present only for successful outcomes.
	AdopterSatisfactionScore *int `json:"adopter_satisfaction_score,omitempty"`

	DogDifficultyLevel     string  `json:"dog_difficulty_level,omitempty"`
	AdopterExperienceLevel string  `json:"adopter_experience_level,omitempty"`
	MatchScoreAtAdoption   float64 `json:"match_score_at_adoption,omitempty"`
}

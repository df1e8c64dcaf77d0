// internal/models/dog.go
package models

// DogProfile is a dog document as stored in the dogs index.
type DogProfile struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Breed              string   `json:"breed,omitempty"`
	Age                int      `json:"age,omitempty"`
	WeightKg           float64  `json:"weight_kg,omitempty"`
	Sex                string   `json:"sex,omitempty"`
	AdoptionStatus     string   `json:"adoption_status,omitempty"`
	RescueOrganization string   `json:"rescue_organization,omitempty"`
	BehavioralNotes    string   `json:"behavioral_notes,omitempty"`
	MedicalHistory     []string `json:"medical_history,omitempty"`
	CombinedProfile    string   `json:"combined_profile,omitempty"`
	Photos             []string `json:"photos,omitempty"`
}

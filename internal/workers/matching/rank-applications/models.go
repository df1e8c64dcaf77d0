// internal/workers/matching/rank-applications/models.go
package rankapplications

import "adoption-workers/internal/models"

type Input struct {
	DogID string `json:"dogId"`
	Limit int    `json:"limit,omitempty"`
}

type Output struct {
	DogID              string                     `json:"dogId"`
	RankedApplications []models.RankedApplication `json:"rankedApplications"`
	Count              int                        `json:"count"`
}

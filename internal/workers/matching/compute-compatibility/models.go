// internal/workers/matching/compute-compatibility/models.go
package computecompatibility

import "adoption-workers/internal/models"

type Input struct {
	ApplicationID string `json:"applicationId"`
	DogID         string `json:"dogId"`
}

type Output struct {
	Compatibility *models.CompatibilityResult `json:"compatibility"`
}

// internal/matching/recommend.go
package matching

import (
	"strings"

	"adoption-workers/internal/models"
)

// deriveRecommendation re-inspects the dimension scores and the raw
// application for red flags, then maps the overall score plus the concern
// list onto approve/review/reject.
func deriveRecommendation(overall float64, dims models.DimensionScores, app *models.Application) (string, []string) {
	concerns := []string{}

	if dims.Experience < 40 {
		concerns = append(concerns, "Limited pet ownership experience")
	}

	if dims.Housing < 50 {
		concerns = append(concerns, "Housing may not be suitable")
		housing := app.HousingInfo
		if housing.OwnershipStatus == "Leased" || housing.OwnershipStatus == "Rented" {
			if housing.LandlordPermissionGranted != "Yes" {
				concerns = append(concerns, "CRITICAL: No landlord permission")
			}
		}
	}

	if dims.Household < 50 {
		concerns = append(concerns, "Household compatibility concerns")
		if app.HouseholdInfo.HasAllergies {
			concerns = append(concerns, "Household member has allergies")
		}
	}

	if dims.Lifestyle < 50 {
		concerns = append(concerns, "Lifestyle may not align with pet needs")
	}

	if dims.Motivation < 50 {
		concerns = append(concerns, "Application essays don't strongly align with this dog's profile")
	}

	// Surrender without explanation is flagged regardless of scores.
	if app.PetExperience.EverSurrenderedPet && app.PetExperience.SurrenderReason == "" {
		concerns = append(concerns, "Previous pet surrender without explanation")
	}

	critical := false
	for _, c := range concerns {
		if strings.Contains(c, "CRITICAL") {
			critical = true
			break
		}
	}

	switch {
	case critical || overall < 50:
		return models.RecommendationReject, concerns
	case overall >= 80 && len(concerns) <= 1:
		return models.RecommendationApprove, concerns
	default:
		return models.RecommendationReview, concerns
	}
}

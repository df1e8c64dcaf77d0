// internal/matching/dimensions.go
package matching

import (
	"strings"

	"adoption-workers/internal/models"
)

// Dimension weights. Must sum to exactly 1.0.
const (
	weightExperience = 0.25
	weightHousing    = 0.20
	weightLifestyle  = 0.15
	weightHousehold  = 0.15
	weightMotivation = 0.25
)

var highEnergyWords = []string{"active", "energetic", "playful", "high energy"}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// scoreExperience rates pet ownership history, volunteer work, surrender
// history and introduction planning. Base 50.
func scoreExperience(app *models.Application, dog *models.DogProfile) float64 {
	score := 50.0

	exp := app.PetExperience
	if exp.HasCurrentOrPastPets {
		score += 20
		if exp.PetHistoryDetails != "" {
			score += 10
		}
	}

	if exp.VolunteerExperienceDetails != "" {
		score += 15
	}

	if exp.EverSurrenderedPet {
		if exp.SurrenderReason != "" {
			score -= 10
		} else {
			score -= 20
		}
	}

	if exp.NewPetIntroductionPlan != "" {
		planLength := len(exp.NewPetIntroductionPlan)
		if planLength > 200 {
			score += 15
		} else if planLength > 50 {
			score += 5
		}
	}

	return clampScore(score)
}

// scoreHousing rates space adequacy, yard access for high-energy dogs,
// landlord permission and housing type. Base 70.
func scoreHousing(app *models.Application, dog *models.DogProfile) float64 {
	score := 70.0

	housing := app.HousingInfo

	// Space requirements by dog weight.
	if dog.WeightKg > 0 && housing.SizeSqm > 0 {
		if dog.WeightKg > 30 {
			if housing.SizeSqm >= 100 {
				score += 15
			} else if housing.SizeSqm < 70 {
				score -= 20
			}
		} else if dog.WeightKg > 15 {
			if housing.SizeSqm >= 70 {
				score += 10
			}
		}
	}

	// Yard or balcony matters for high-energy dogs. Skipped entirely when
	// the applicant left the question unanswered.
	if isHighEnergy(dog.BehavioralNotes) && housing.HasYardOrBalcony != nil {
		if *housing.HasYardOrBalcony {
			score += 15
		} else {
			score -= 15
		}
	}

	// Landlord permission is critical for renters.
	if housing.OwnershipStatus == "Leased" || housing.OwnershipStatus == "Rented" {
		switch housing.LandlordPermissionGranted {
		case "Yes":
			score += 10
		case "No":
			score -= 40
		default:
			score -= 25
		}
	}

	if housing.Type == "Detached House" || housing.Type == "Townhouse" {
		score += 5
	} else if housing.Type == "Apartment" && dog.WeightKg > 35 {
		score -= 10
	}

	return clampScore(score)
}

func isHighEnergy(behavioralNotes string) bool {
	text := strings.ToLower(behavioralNotes)
	for _, word := range highEnergyWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// scoreLifestyle rates commitment signals from the application itself. Base 70.
func scoreLifestyle(app *models.Application, dog *models.DogProfile) float64 {
	score := 70.0

	switch app.ApplicationMeta.Type {
	case models.ApplicationTypeAdoption:
		score += 20
	case models.ApplicationTypeFoster:
		score += 10
	}

	if app.ApplicationMeta.IsKaraDonor {
		score += 15
	}

	if app.ApplicantInfo.MaritalStatus == "Married" || app.ApplicantInfo.MaritalStatus == "Partnered" {
		score += 5
	}

	return clampScore(score)
}

// scoreHousehold rates household agreement, allergies and support structure.
// Base 70.
func scoreHousehold(app *models.Application, dog *models.DogProfile) float64 {
	score := 70.0

	household := app.HouseholdInfo

	if household.AllMembersAgree != "" {
		agreement := strings.ToLower(household.AllMembersAgree)
		// Affirmative wording wins: answers are free text and words like
		// "know" or "disagrees" would otherwise trip the substring check
		// for "no"/"disagree" on an answer that starts with "yes".
		if strings.Contains(agreement, "yes") || strings.Contains(agreement, "agree") {
			score += 20
		} else if strings.Contains(agreement, "no") || strings.Contains(agreement, "disagree") {
			score -= 40
		}
	}

	if household.HasAllergies {
		if household.AllergyDetails != "" {
			score -= 10
		} else {
			score -= 20
		}
	}

	if household.HouseholdSize == 1 {
		if app.ApplicantInfo.EmergencyContactPhone != "" {
			score += 5
		}
	} else if household.HouseholdSize >= 2 {
		score += 10
	}

	if len(household.MembersDescription) > 100 {
		score += 10
	}

	return clampScore(score)
}

// internal/matching/dimensions_test.go
package matching

import (
	"strings"
	"testing"

	"adoption-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Experience Dimension
// ==========================

func TestScoreExperience(t *testing.T) {
	dog := mediumDog("dog-1")

	tests := []struct {
		name     string
		exp      models.PetExperience
		expected float64
	}{
		{
			name:     "empty experience stays at base",
			exp:      models.PetExperience{},
			expected: 50,
		},
		{
			name: "pets with history and volunteer work, no surrender",
			exp: models.PetExperience{
				HasCurrentOrPastPets:       true,
				PetHistoryDetails:          "Two dogs over ten years",
				VolunteerExperienceDetails: "Shelter volunteer",
			},
			expected: 95,
		},
		{
			name: "pets without detailed history",
			exp: models.PetExperience{
				HasCurrentOrPastPets: true,
			},
			expected: 70,
		},
		{
			name: "surrender with explanation",
			exp: models.PetExperience{
				EverSurrenderedPet: true,
				SurrenderReason:    "Moved abroad for work",
			},
			expected: 40,
		},
		{
			name: "surrender without explanation",
			exp: models.PetExperience{
				EverSurrenderedPet: true,
			},
			expected: 30,
		},
		{
			name: "detailed introduction plan",
			exp: models.PetExperience{
				NewPetIntroductionPlan: strings.Repeat("a", 201),
			},
			expected: 65,
		},
		{
			name: "basic introduction plan",
			exp: models.PetExperience{
				NewPetIntroductionPlan: strings.Repeat("a", 51),
			},
			expected: 55,
		},
		{
			name: "plan at 200 chars counts as basic",
			exp: models.PetExperience{
				NewPetIntroductionPlan: strings.Repeat("a", 200),
			},
			expected: 55,
		},
		{
			name: "plan at 50 chars earns nothing",
			exp: models.PetExperience{
				NewPetIntroductionPlan: strings.Repeat("a", 50),
			},
			expected: 50,
		},
		{
			name: "everything positive clamps at 100",
			exp: models.PetExperience{
				HasCurrentOrPastPets:       true,
				PetHistoryDetails:          "details",
				VolunteerExperienceDetails: "volunteer",
				NewPetIntroductionPlan:     strings.Repeat("a", 300),
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &models.Application{ID: "app-1", PetExperience: tt.exp}
			assert.Equal(t, tt.expected, scoreExperience(app, dog))
		})
	}
}

// ==========================
// Housing Dimension
// ==========================

func TestScoreHousing(t *testing.T) {
	tests := []struct {
		name     string
		housing  models.HousingInfo
		dog      models.DogProfile
		expected float64
	}{
		{
			name:     "no data stays at base",
			housing:  models.HousingInfo{},
			dog:      models.DogProfile{ID: "d"},
			expected: 70,
		},
		{
			name:     "large dog with large home",
			housing:  models.HousingInfo{SizeSqm: 100},
			dog:      models.DogProfile{ID: "d", WeightKg: 31},
			expected: 85,
		},
		{
			name:     "large dog in small home",
			housing:  models.HousingInfo{SizeSqm: 69},
			dog:      models.DogProfile{ID: "d", WeightKg: 31},
			expected: 50,
		},
		{
			name:     "large dog in mid-size home is neutral",
			housing:  models.HousingInfo{SizeSqm: 85},
			dog:      models.DogProfile{ID: "d", WeightKg: 31},
			expected: 70,
		},
		{
			name:     "medium dog with adequate space",
			housing:  models.HousingInfo{SizeSqm: 70},
			dog:      models.DogProfile{ID: "d", WeightKg: 16},
			expected: 80,
		},
		{
			name:     "small dog space rules skipped",
			housing:  models.HousingInfo{SizeSqm: 40},
			dog:      models.DogProfile{ID: "d", WeightKg: 10},
			expected: 70,
		},
		{
			name:     "high energy dog with yard",
			housing:  models.HousingInfo{HasYardOrBalcony: boolPtr(true)},
			dog:      models.DogProfile{ID: "d", BehavioralNotes: "Very energetic and loves fetch"},
			expected: 85,
		},
		{
			name:     "high energy dog without yard",
			housing:  models.HousingInfo{HasYardOrBalcony: boolPtr(false)},
			dog:      models.DogProfile{ID: "d", BehavioralNotes: "high energy, needs runs"},
			expected: 55,
		},
		{
			name:     "high energy dog with yard unanswered skips the rule",
			housing:  models.HousingInfo{},
			dog:      models.DogProfile{ID: "d", BehavioralNotes: "playful boy"},
			expected: 70,
		},
		{
			name:     "calm dog ignores yard",
			housing:  models.HousingInfo{HasYardOrBalcony: boolPtr(false)},
			dog:      models.DogProfile{ID: "d", BehavioralNotes: "calm and gentle"},
			expected: 70,
		},
		{
			name: "renter with permission",
			housing: models.HousingInfo{
				OwnershipStatus:           "Leased",
				LandlordPermissionGranted: "Yes",
			},
			dog:      models.DogProfile{ID: "d"},
			expected: 80,
		},
		{
			name: "renter denied permission",
			housing: models.HousingInfo{
				OwnershipStatus:           "Rented",
				LandlordPermissionGranted: "No",
			},
			dog:      models.DogProfile{ID: "d"},
			expected: 30,
		},
		{
			name: "renter with unresolved permission",
			housing: models.HousingInfo{
				OwnershipStatus:           "Leased",
				LandlordPermissionGranted: "Not_Applicable",
			},
			dog:      models.DogProfile{ID: "d"},
			expected: 45,
		},
		{
			name:     "detached house bonus",
			housing:  models.HousingInfo{Type: "Detached House"},
			dog:      models.DogProfile{ID: "d"},
			expected: 75,
		},
		{
			name:     "townhouse bonus",
			housing:  models.HousingInfo{Type: "Townhouse"},
			dog:      models.DogProfile{ID: "d"},
			expected: 75,
		},
		{
			name:     "very large dog in apartment",
			housing:  models.HousingInfo{Type: "Apartment"},
			dog:      models.DogProfile{ID: "d", WeightKg: 36},
			expected: 60,
		},
		{
			name:     "dog at 35kg in apartment is fine",
			housing:  models.HousingInfo{Type: "Apartment"},
			dog:      models.DogProfile{ID: "d", WeightKg: 35},
			expected: 70,
		},
		{
			// 70 - 10 (35kg+ apartment) - 40 (permission denied) = 20.
			name: "large dog in leased apartment without permission",
			housing: models.HousingInfo{
				Type:                      "Apartment",
				OwnershipStatus:           "Leased",
				LandlordPermissionGranted: "No",
			},
			dog:      models.DogProfile{ID: "d", WeightKg: 36},
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &models.Application{ID: "app-1", HousingInfo: tt.housing}
			assert.Equal(t, tt.expected, scoreHousing(app, &tt.dog))
		})
	}
}

func TestIsHighEnergy(t *testing.T) {
	assert.True(t, isHighEnergy("Very ACTIVE around other dogs"))
	assert.True(t, isHighEnergy("energetic"))
	assert.True(t, isHighEnergy("so playful"))
	assert.True(t, isHighEnergy("High Energy breed"))
	assert.False(t, isHighEnergy("calm senior, sleeps a lot"))
	assert.False(t, isHighEnergy(""))
}

// ==========================
// Lifestyle Dimension
// ==========================

func TestScoreLifestyle(t *testing.T) {
	dog := mediumDog("dog-1")

	tests := []struct {
		name     string
		app      models.Application
		expected float64
	}{
		{
			name:     "no signals stays at base",
			app:      models.Application{ID: "a"},
			expected: 70,
		},
		{
			name: "adoption application",
			app: models.Application{
				ID:              "a",
				ApplicationMeta: models.ApplicationMeta{Type: models.ApplicationTypeAdoption},
			},
			expected: 90,
		},
		{
			name: "foster application",
			app: models.Application{
				ID:              "a",
				ApplicationMeta: models.ApplicationMeta{Type: models.ApplicationTypeFoster},
			},
			expected: 80,
		},
		{
			name: "donor adopter with partner maxes out",
			app: models.Application{
				ID:              "a",
				ApplicantInfo:   models.ApplicantInfo{MaritalStatus: "Partnered"},
				ApplicationMeta: models.ApplicationMeta{Type: models.ApplicationTypeAdoption, IsKaraDonor: true},
			},
			expected: 100,
		},
		{
			name: "single foster donor",
			app: models.Application{
				ID:              "a",
				ApplicantInfo:   models.ApplicantInfo{MaritalStatus: "Single"},
				ApplicationMeta: models.ApplicationMeta{Type: models.ApplicationTypeFoster, IsKaraDonor: true},
			},
			expected: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreLifestyle(&tt.app, dog))
		})
	}
}

// ==========================
// Household Dimension
// ==========================

func TestScoreHousehold(t *testing.T) {
	dog := mediumDog("dog-1")

	tests := []struct {
		name      string
		household models.HouseholdInfo
		applicant models.ApplicantInfo
		expected  float64
	}{
		{
			name:      "no data stays at base",
			household: models.HouseholdInfo{},
			expected:  70,
		},
		{
			name:      "all members agree",
			household: models.HouseholdInfo{AllMembersAgree: "Yes, we all agree"},
			expected:  90,
		},
		{
			name:      "members object",
			household: models.HouseholdInfo{AllMembersAgree: "No, absolutely not"},
			expected:  30,
		},
		{
			name:      "affirmative answer containing a no-like word still agrees",
			household: models.HouseholdInfo{AllMembersAgree: "Yes, we know him well and all agree"},
			expected:  90,
		},
		{
			name:      "affirmative answer mentioning a dissenter still agrees",
			household: models.HouseholdInfo{AllMembersAgree: "Yes, but one member disagrees"},
			expected:  90,
		},
		{
			name:      "allergies with details",
			household: models.HouseholdInfo{HasAllergies: true, AllergyDetails: "Mild, managed with medication"},
			expected:  60,
		},
		{
			name:      "allergies without details",
			household: models.HouseholdInfo{HasAllergies: true},
			expected:  50,
		},
		{
			name:      "single person with emergency contact",
			household: models.HouseholdInfo{HouseholdSize: 1},
			applicant: models.ApplicantInfo{EmergencyContactPhone: "010-0000-0000"},
			expected:  75,
		},
		{
			name:      "single person without emergency contact",
			household: models.HouseholdInfo{HouseholdSize: 1},
			expected:  70,
		},
		{
			name:      "multi-person household",
			household: models.HouseholdInfo{HouseholdSize: 2},
			expected:  80,
		},
		{
			name:      "detailed members description",
			household: models.HouseholdInfo{MembersDescription: strings.Repeat("a", 101)},
			expected:  80,
		},
		{
			name: "objection combined with unexplained allergies",
			household: models.HouseholdInfo{
				AllMembersAgree: "No, my partner does not want a dog",
				HasAllergies:    true,
			},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &models.Application{
				ID:            "app-1",
				ApplicantInfo: tt.applicant,
				HouseholdInfo: tt.household,
			}
			assert.Equal(t, tt.expected, scoreHousehold(app, dog))
		})
	}
}

// ==========================
// Clamp and Weights
// ==========================

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-5))
	assert.Equal(t, 100.0, clampScore(140))
	assert.Equal(t, 62.5, clampScore(62.5))
}

func TestDimensionWeightsSumToOne(t *testing.T) {
	sum := weightExperience + weightHousing + weightLifestyle + weightHousehold + weightMotivation
	assert.Equal(t, 1.0, sum)
}

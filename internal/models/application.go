// internal/models/application.go
package models

// Application statuses eligible for ranking.
const (
	StatusPending     = "Pending"
	StatusUnderReview = "Under_Review"
	StatusApproved    = "Approved"
	StatusRejected    = "Rejected"
	StatusOnHold      = "On-Hold"
)

// Application types.
const (
	ApplicationTypeAdoption = "Adoption"
	ApplicationTypeFoster   = "Foster"
)

// Application is an adoption/foster application document as stored in the
// applications index. Field names follow the index mapping.
type Application struct {
	ID              string          `json:"id"`
	ApplicantInfo   ApplicantInfo   `json:"applicant_info"`
	HouseholdInfo   HouseholdInfo   `json:"household_info"`
	HousingInfo     HousingInfo     `json:"housing_info"`
	PetExperience   PetExperience   `json:"pet_experience"`
	LongFormAnswers LongFormAnswers `json:"long_form_answers"`
	ApplicationMeta ApplicationMeta `json:"application_meta"`
}

type ApplicantInfo struct {
	Name                         string `json:"name"`
	Phone                        string `json:"phone"`
	Email                        string `json:"email"`
	Gender                       string `json:"gender,omitempty"`
	Age                          int    `json:"age,omitempty"`
	HomeAddressFullText          string `json:"home_address_full_text,omitempty"`
	Occupation                   string `json:"occupation,omitempty"`
	MaritalStatus                string `json:"marital_status,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
}

type HouseholdInfo struct {
	HouseholdSize      int    `json:"household_size,omitempty"`
	MembersDescription string `json:"members_description,omitempty"`
	AllMembersAgree    string `json:"all_members_agree,omitempty"`
	HasAllergies       bool   `json:"has_allergies,omitempty"`
	AllergyDetails     string `json:"allergy_details,omitempty"`
}

type HousingInfo struct {
	Type                      string   `json:"type,omitempty"`
	OwnershipStatus           string   `json:"ownership_status,omitempty"`
	SizeSqm                   int      `json:"size_sqm,omitempty"`
	LandlordPermissionGranted string   `json:"landlord_permission_granted,omitempty"`
	PhotoURLs                 []string `json:"photo_urls,omitempty"`
	// Nil means the question was left unanswered, which is distinct from "no yard".
	HasYardOrBalcony *bool `json:"has_yard_or_balcony,omitempty"`
}

type PetExperience struct {
	HasCurrentOrPastPets       bool   `json:"has_current_or_past_pets,omitempty"`
	PetHistoryDetails          string `json:"pet_history_details,omitempty"`
	NewPetIntroductionPlan     string `json:"new_pet_introduction_plan,omitempty"`
	EverSurrenderedPet         bool   `json:"ever_surrendered_pet,omitempty"`
	SurrenderReason            string `json:"surrender_reason,omitempty"`
	VolunteerExperienceDetails string `json:"volunteer_experience_details,omitempty"`
}

type LongFormAnswers struct {
	MotivationForThisAnimal   string `json:"motivation_for_this_animal,omitempty"`
	GeneralAdoptionMotivation string `json:"general_adoption_motivation,omitempty"`
	BehavioralIssuePlan       string `json:"behavioral_issue_plan,omitempty"`
	LifeChangesPlan           string `json:"life_changes_plan,omitempty"`
	OpinionOnOffLeash         string `json:"opinion_on_off_leash,omitempty"`
	OpinionOnNeutering        string `json:"opinion_on_neutering,omitempty"`
}

type ApplicationMeta struct {
	Status               string `json:"status,omitempty"`
	Type                 string `json:"type,omitempty"`
	AnimalNameAppliedFor string `json:"animal_name_applied_for,omitempty"`
	AnimalIDAppliedFor   string `json:"animal_id_applied_for,omitempty"`
	Source               string `json:"source,omitempty"`
	IsKaraDonor          bool   `json:"is_kara_donor,omitempty"`
	Language             string `json:"language,omitempty"`
	SubmittedAt          string `json:"submitted_at,omitempty"`
	UpdatedAt            string `json:"updated_at,omitempty"`
}

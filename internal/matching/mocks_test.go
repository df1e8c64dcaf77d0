// internal/matching/mocks_test.go
package matching

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/models"
)

// ==========================
// Collaborator Mocks
// ==========================

type mockStore struct {
	applications map[string]*models.Application
	dogs         map[string]*models.DogProfile
	candidates   []*models.Application
	listErr      error
}

func (m *mockStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	if app, ok := m.applications[id]; ok {
		return app, nil
	}
	return nil, errors.NewApplicationNotFoundError(id)
}

func (m *mockStore) GetDog(ctx context.Context, id string) (*models.DogProfile, error) {
	if dog, ok := m.dogs[id]; ok {
		return dog, nil
	}
	return nil, errors.NewDogNotFoundError(id)
}

func (m *mockStore) ListCandidateApplications(ctx context.Context, max int) ([]*models.Application, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.candidates) > max {
		return m.candidates[:max], nil
	}
	return m.candidates, nil
}

// mockSearcher answers motivation queries (DocID set) and outcome-side
// queries (outcome filter set) independently.
type mockSearcher struct {
	motivationHits []SimilarityHit
	motivationErr  error
	successHits    []SimilarityHit
	successErr     error
	failureHits    []SimilarityHit
	failureErr     error

	mu      sync.Mutex
	queries []SimilarityQuery
}

func (m *mockSearcher) Search(ctx context.Context, q SimilarityQuery) ([]SimilarityHit, error) {
	m.mu.Lock()
	m.queries = append(m.queries, q)
	m.mu.Unlock()

	if q.DocID != "" {
		return m.motivationHits, m.motivationErr
	}
	switch q.Filters["outcome"] {
	case models.OutcomeSuccess:
		return m.successHits, m.successErr
	case models.OutcomeReturned:
		return m.failureHits, m.failureErr
	}
	return nil, fmt.Errorf("unexpected query: %+v", q)
}

type mockClassifier struct {
	prediction *ClassifierPrediction
	err        error
	calls      int
}

func (m *mockClassifier) Predict(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*ClassifierPrediction, error) {
	m.calls++
	return m.prediction, m.err
}

type mockPredictionLog struct {
	logged []*models.PredictionResult
	err    error
}

func (m *mockPredictionLog) Log(ctx context.Context, p *models.PredictionResult) error {
	m.logged = append(m.logged, p)
	return m.err
}

// ==========================
// Fixture Builders
// ==========================

// neutralSearcher always errors, so motivation degrades to a neutral 50 and
// dimension arithmetic stays easy to verify.
func neutralSearcher() *mockSearcher {
	return &mockSearcher{
		motivationErr: fmt.Errorf("search unavailable"),
		successErr:    fmt.Errorf("search unavailable"),
		failureErr:    fmt.Errorf("search unavailable"),
	}
}

func boolPtr(b bool) *bool { return &b }

// solidApplication is an experienced adopter in an owned detached house with
// an agreeing multi-person household.
func solidApplication(id string) *models.Application {
	return &models.Application{
		ID: id,
		ApplicantInfo: models.ApplicantInfo{
			Name:                  "Test Applicant",
			MaritalStatus:         "Married",
			EmergencyContactPhone: "010-1234-5678",
		},
		HouseholdInfo: models.HouseholdInfo{
			HouseholdSize:      3,
			MembersDescription: "Two adults working from home and one teenager, all of whom have lived with dogs before and share walking duties between them.",
			AllMembersAgree:    "Yes, everyone agrees",
		},
		HousingInfo: models.HousingInfo{
			Type:             "Detached House",
			OwnershipStatus:  "Owned",
			SizeSqm:          120,
			HasYardOrBalcony: boolPtr(true),
		},
		PetExperience: models.PetExperience{
			HasCurrentOrPastPets:       true,
			PetHistoryDetails:          "Raised two retrievers from puppyhood",
			VolunteerExperienceDetails: "Weekend shelter volunteer for three years",
		},
		ApplicationMeta: models.ApplicationMeta{
			Status: models.StatusPending,
			Type:   models.ApplicationTypeAdoption,
		},
	}
}

func mediumDog(id string) *models.DogProfile {
	return &models.DogProfile{
		ID:       id,
		Name:     "Bori",
		Breed:    "Jindo Mix",
		Age:      3,
		WeightKg: 18,
		Sex:      "F",
	}
}

func newTestEngine(t testing.TB, store *mockStore, searcher *mockSearcher, classifier *mockClassifier, predictionLog *mockPredictionLog) *Engine {
	// A nil mock must become a nil interface, not a typed nil.
	var log PredictionLogger
	if predictionLog != nil {
		log = predictionLog
	}
	return NewEngine(store, searcher, classifier, log, logger.NewTestLogger(t), Options{
		SearchTimeout: 100 * time.Millisecond,
	})
}

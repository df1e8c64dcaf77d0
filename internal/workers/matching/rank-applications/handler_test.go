// internal/workers/matching/rank-applications/handler_test.go
package rankapplications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/models"
)

// ==========================
// Mocks
// ==========================

type mockEngine struct {
	ranked []models.RankedApplication
	err    error

	gotDogID string
	gotLimit int
}

func (m *mockEngine) RankApplicationsForDog(ctx context.Context, dogID string, limit int) ([]models.RankedApplication, error) {
	m.gotDogID = dogID
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.ranked, nil
}

func newTestHandler(t *testing.T, engine RankingEngine) *Handler {
	return NewHandler(LoadConfig(), engine, logger.NewTestLogger(t))
}

func rankedFixture(ids ...string) []models.RankedApplication {
	ranked := make([]models.RankedApplication, 0, len(ids))
	for i, id := range ids {
		ranked = append(ranked, models.RankedApplication{
			Application: &models.Application{ID: id},
			Compatibility: &models.CompatibilityResult{
				ApplicationID: id,
				OverallScore:  float64(90 - i*10),
			},
		})
	}
	return ranked
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute(t *testing.T) {
	t.Run("returns the ranking with its count", func(t *testing.T) {
		engine := &mockEngine{ranked: rankedFixture("app-1", "app-2", "app-3")}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{DogID: "dog-1", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, "dog-1", output.DogID)
		assert.Equal(t, 3, output.Count)
		require.Len(t, output.RankedApplications, 3)
		assert.Equal(t, "app-1", output.RankedApplications[0].Application.ID)

		assert.Equal(t, "dog-1", engine.gotDogID)
		assert.Equal(t, 5, engine.gotLimit)
	})

	t.Run("an absent limit falls back to the configured default", func(t *testing.T) {
		engine := &mockEngine{ranked: rankedFixture()}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{DogID: "dog-1"})
		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, LoadConfig().DefaultLimit, engine.gotLimit)
	})

	t.Run("explicit out of range limits reach the engine", func(t *testing.T) {
		// Range enforcement lives in one place. The worker must not mask it.
		engine := &mockEngine{err: errors.NewInvalidRankLimitError(150)}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{DogID: "dog-1", Limit: 150})
		assert.Nil(t, output)
		require.Error(t, err)
		assert.Equal(t, 150, engine.gotLimit)
		assert.Contains(t, err.Error(), "INVALID_RANK_LIMIT")
	})

	t.Run("missing dog id is rejected before the engine", func(t *testing.T) {
		engine := &mockEngine{}
		handler := newTestHandler(t, engine)

		output, err := handler.Execute(context.Background(), &Input{})
		assert.Nil(t, output)
		require.Error(t, err)
		assert.Empty(t, engine.gotDogID)
	})

	t.Run("engine errors pass through untouched", func(t *testing.T) {
		notFound := errors.NewDogNotFoundError("missing")
		handler := newTestHandler(t, &mockEngine{err: notFound})

		output, err := handler.Execute(context.Background(), &Input{DogID: "missing"})
		assert.Nil(t, output)
		assert.True(t, errors.IsNotFound(err))
	})
}

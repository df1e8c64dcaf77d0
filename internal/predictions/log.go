// internal/predictions/log.go
package predictions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adoption-workers/internal/common/database"
	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/models"
)

const insertPredictionSQL = `
	INSERT INTO predictions_log (
		id, predicted_outcome, confidence, source,
		adopter_experience_level, dog_difficulty_level, match_score,
		recommendation, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Log persists predictions to Postgres so outcomes can later be compared
// against what the engine said.
type Log struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewLog(db *database.PostgresClient, log logger.Logger) *Log {
	return &Log{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "predictions"}),
	}
}

// Log writes one prediction row. The retained evidence cases are not stored,
// only the feature triple and the verdict.
func (l *Log) Log(ctx context.Context, prediction *models.PredictionResult) error {
	id := uuid.New().String()

	_, err := l.db.Exec(ctx, insertPredictionSQL,
		id,
		prediction.PredictedOutcome,
		prediction.Confidence,
		prediction.Source,
		prediction.AdopterExperience,
		prediction.DogDifficulty,
		prediction.MatchScore,
		prediction.Recommendation,
		time.Now().UTC(),
	)
	if err != nil {
		return errors.NewPredictionLogFailedError(err)
	}

	l.logger.Debug("Prediction recorded", map[string]interface{}{
		"predictionId": id,
		"outcome":      prediction.PredictedOutcome,
		"source":       prediction.Source,
	})

	return nil
}

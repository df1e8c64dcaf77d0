// internal/workers/matching/predict-outcome/handler.go
package predictoutcome

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/common/metrics"
	"adoption-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const TaskType = "predict-outcome"

// inputSchema rejects unusable feature triples before they reach the engine.
const inputSchema = `{
	"type": "object",
	"properties": {
		"adopterExperienceLevel": {"type": "string", "enum": ["beginner", "intermediate", "expert"]},
		"dogDifficultyLevel": {"type": "string", "enum": ["easy", "moderate", "challenging"]},
		"matchScore": {"type": "number", "minimum": 0, "maximum": 100}
	},
	"required": ["adopterExperienceLevel", "dogDifficultyLevel", "matchScore"]
}`

// PredictionEngine predicts an adoption outcome for a feature triple.
type PredictionEngine interface {
	PredictOutcome(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*models.PredictionResult, error)
}

type Handler struct {
	config       *Config
	engine       PredictionEngine
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	schema       *gojsonschema.Schema
}

func NewHandler(config *Config, engine PredictionEngine, log logger.Logger) *Handler {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(inputSchema))
	if err != nil {
		panic(fmt.Sprintf("predict-outcome: invalid input schema: %v", err))
	}

	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		logger:       l,
		errorHandler: errors.NewErrorHandler(l),
		schema:       schema,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()
	start := time.Now()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := h.validateInput(input); err != nil {
		return nil, err
	}

	prediction, err := h.engine.PredictOutcome(ctx, input.AdopterExperienceLevel, input.DogDifficultyLevel, input.MatchScore)
	if err != nil {
		return nil, err
	}

	h.logger.Info("outcome predicted", map[string]interface{}{
		"predictedOutcome": prediction.PredictedOutcome,
		"confidence":       prediction.Confidence,
		"source":           prediction.Source,
	})

	return &Output{Prediction: prediction}, nil
}

func (h *Handler) validateInput(input *Input) error {
	result, err := h.schema.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return errors.NewInvalidPredictionInputError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return errors.NewInvalidPredictionInputError(strings.Join(details, "; "))
	}
	return nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func errorCode(err error) string {
	var stdErr *errors.StandardError
	if goerrors.As(err, &stdErr) {
		return string(stdErr.Code)
	}
	return "INTERNAL_ERROR"
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

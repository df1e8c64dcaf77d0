// internal/classifier/client.go
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adoption-workers/internal/common/errors"
	httpclient "adoption-workers/internal/common/http"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/matching"
)

// Options configures the trained outcome model endpoint.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the trained adoption outcome model over HTTP. Any failure is
// reported as unavailable so callers can fall back to similarity voting.
type Client struct {
	http   *httpclient.Client
	logger logger.Logger
	opts   Options
}

func NewClient(log logger.Logger, opts Options) *Client {
	return &Client{
		http:   httpclient.NewClient(opts.Timeout),
		logger: log.WithFields(map[string]interface{}{"component": "classifier"}),
		opts:   opts,
	}
}

type predictRequest struct {
	Model    string          `json:"model,omitempty"`
	Features predictFeatures `json:"features"`
}

type predictFeatures struct {
	AdopterExperienceLevel string  `json:"adopter_experience_level"`
	DogDifficultyLevel     string  `json:"dog_difficulty_level"`
	MatchScoreAtAdoption   float64 `json:"match_score_at_adoption"`
}

type predictResponse struct {
	PredictedSuccess bool    `json:"predicted_success"`
	Probability      float64 `json:"probability"`
}

// Predict asks the trained model for an outcome given the feature triple.
func (c *Client) Predict(ctx context.Context, adopterExperience, dogDifficulty string, matchScore float64) (*matching.ClassifierPrediction, error) {
	if c.opts.BaseURL == "" {
		return nil, errors.NewClassifierUnavailableError(fmt.Errorf("no endpoint configured"))
	}

	payload, err := json.Marshal(predictRequest{
		Model: c.opts.Model,
		Features: predictFeatures{
			AdopterExperienceLevel: adopterExperience,
			DogDifficultyLevel:     dogDifficulty,
			MatchScoreAtAdoption:   matchScore,
		},
	})
	if err != nil {
		return nil, errors.NewClassifierUnavailableError(err)
	}

	url := c.opts.BaseURL + "/predict"
	headers := map[string]string{}
	if c.opts.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.opts.APIKey
	}

	resp, err := c.http.PostJSON(ctx, url, headers, payload)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewClassifierTimeoutError(url)
		}
		return nil, errors.NewClassifierUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewClassifierUnavailableError(fmt.Errorf("endpoint returned status %d", resp.StatusCode))
	}

	var body predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.NewClassifierUnavailableError(err)
	}
	if body.Probability < 0 || body.Probability > 1 {
		return nil, errors.NewClassifierUnavailableError(fmt.Errorf("probability %v out of range", body.Probability))
	}

	c.logger.Debug("Classifier prediction received", map[string]interface{}{
		"predictedSuccess": body.PredictedSuccess,
		"probability":      body.Probability,
	})

	return &matching.ClassifierPrediction{
		Success:     body.PredictedSuccess,
		Probability: body.Probability,
	}, nil
}

// internal/classifier/client_test.go
package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoption-workers/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(logger.NewTestLogger(t), Options{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "adoption-outcome-v2",
		Timeout: time.Second,
	})
}

// ==========================
// Predict
// ==========================

func TestClient_Predict(t *testing.T) {
	t.Run("sends the feature triple and parses the answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "adoption-outcome-v2", body["model"])

			features, ok := body["features"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "expert", features["adopter_experience_level"])
			assert.Equal(t, "easy", features["dog_difficulty_level"])
			assert.Equal(t, 82.5, features["match_score_at_adoption"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"predicted_success": true,
				"probability":       0.92,
			})
		})

		prediction, err := client.Predict(context.Background(), "expert", "easy", 82.5)
		require.NoError(t, err)
		assert.True(t, prediction.Success)
		assert.Equal(t, 0.92, prediction.Probability)
	})

	t.Run("propagates a failure prediction", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"predicted_success": false,
				"probability":       0.88,
			})
		})

		prediction, err := client.Predict(context.Background(), "beginner", "challenging", 41.0)
		require.NoError(t, err)
		assert.False(t, prediction.Success)
		assert.Equal(t, 0.88, prediction.Probability)
	})
}

// ==========================
// Failure Modes
// ==========================

func TestClient_Predict_Failures(t *testing.T) {
	t.Run("server error maps to unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		prediction, err := client.Predict(context.Background(), "expert", "easy", 80)
		assert.Nil(t, prediction)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLASSIFIER_UNAVAILABLE")
	})

	t.Run("malformed body maps to unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		prediction, err := client.Predict(context.Background(), "expert", "easy", 80)
		assert.Nil(t, prediction)
		require.Error(t, err)
	})

	t.Run("out of range probability is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"predicted_success": true,
				"probability":       1.7,
			})
		})

		prediction, err := client.Predict(context.Background(), "expert", "easy", 80)
		assert.Nil(t, prediction)
		require.Error(t, err)
	})

	t.Run("context timeout maps to classifier timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		prediction, err := client.Predict(ctx, "expert", "easy", 80)
		assert.Nil(t, prediction)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLASSIFIER_TIMEOUT")
	})

	t.Run("missing endpoint is rejected without a request", func(t *testing.T) {
		client := NewClient(logger.NewNoOpLogger(), Options{})

		prediction, err := client.Predict(context.Background(), "expert", "easy", 80)
		assert.Nil(t, prediction)
		require.Error(t, err)
	})
}

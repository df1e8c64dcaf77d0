// internal/records/store.go
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/common/metrics"
	"adoption-workers/internal/models"
)

// StoreOptions configures index names and caching.
type StoreOptions struct {
	ApplicationsIndex string
	DogsIndex         string
	DogCacheTTL       time.Duration
}

// Store reads application and dog documents from Elasticsearch. Dog profiles
// are cached in Redis since rankings hit the same dog once per candidate.
type Store struct {
	es     *elasticsearch.Client
	redis  *redis.Client
	logger logger.Logger
	opts   StoreOptions
}

func NewStore(es *elasticsearch.Client, redisClient *redis.Client, log logger.Logger, opts StoreOptions) *Store {
	if opts.ApplicationsIndex == "" {
		opts.ApplicationsIndex = "applications"
	}
	if opts.DogsIndex == "" {
		opts.DogsIndex = "dogs"
	}
	if opts.DogCacheTTL <= 0 {
		opts.DogCacheTTL = 10 * time.Minute
	}

	return &Store{
		es:     es,
		redis:  redisClient,
		logger: log.WithFields(map[string]interface{}{"component": "records"}),
		opts:   opts,
	}
}

type getResponse struct {
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

// GetApplication fetches one application document by id.
func (s *Store) GetApplication(ctx context.Context, applicationID string) (*models.Application, error) {
	source, err := s.getDocument(ctx, s.opts.ApplicationsIndex, applicationID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.NewApplicationNotFoundError(applicationID)
	}

	var app models.Application
	if err := json.Unmarshal(source, &app); err != nil {
		return nil, errors.NewSearchQueryFailedError(s.opts.ApplicationsIndex, err)
	}
	app.ID = applicationID
	return &app, nil
}

// GetDog fetches one dog profile, consulting the Redis cache first.
func (s *Store) GetDog(ctx context.Context, dogID string) (*models.DogProfile, error) {
	cacheKey := "dog:profile:" + dogID
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var dog models.DogProfile
			if err := json.Unmarshal([]byte(val), &dog); err == nil {
				metrics.DogProfileCacheHits.WithLabelValues("hit").Inc()
				return &dog, nil
			}
		}
		metrics.DogProfileCacheHits.WithLabelValues("miss").Inc()
	}

	source, err := s.getDocument(ctx, s.opts.DogsIndex, dogID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.NewDogNotFoundError(dogID)
	}

	var dog models.DogProfile
	if err := json.Unmarshal(source, &dog); err != nil {
		return nil, errors.NewSearchQueryFailedError(s.opts.DogsIndex, err)
	}
	dog.ID = dogID

	if s.redis != nil {
		if data, err := json.Marshal(&dog); err == nil {
			s.redis.Set(ctx, cacheKey, data, s.opts.DogCacheTTL)
		}
	}

	return &dog, nil
}

// ListCandidateApplications returns up to max applications with status
// Pending or Under_Review, in index order.
func (s *Store) ListCandidateApplications(ctx context.Context, max int) ([]*models.Application, error) {
	if max <= 0 || max > 100 {
		max = 100
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{"match_all": map[string]interface{}{}},
				},
				"filter": []interface{}{
					map[string]interface{}{
						"terms": map[string]interface{}{
							"application_meta.status": []string{models.StatusPending, models.StatusUnderReview},
						},
					},
				},
			},
		},
	}

	body, _ := json.Marshal(queryBody)
	from := 0
	req := esapi.SearchRequest{
		Index: []string{s.opts.ApplicationsIndex},
		Body:  strings.NewReader(string(body)),
		From:  &from,
		Size:  &max,
	}

	res, err := req.Do(ctx, s.es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError(s.opts.ApplicationsIndex)
		}
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, errors.NewIndexNotFoundError(s.opts.ApplicationsIndex)
		}
		return nil, errors.NewSearchQueryFailedError(s.opts.ApplicationsIndex, fmt.Errorf("search failed: %s", res.String()))
	}

	var r struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.NewSearchQueryFailedError(s.opts.ApplicationsIndex, err)
	}

	candidates := make([]*models.Application, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		var app models.Application
		if err := json.Unmarshal(hit.Source, &app); err != nil {
			s.logger.Warn("Skipping undecodable application document", map[string]interface{}{
				"documentId": hit.ID,
				"error":      err.Error(),
			})
			continue
		}
		app.ID = hit.ID
		candidates = append(candidates, &app)
	}

	return candidates, nil
}

// getDocument runs a GET by id and returns the raw source, nil when missing.
func (s *Store) getDocument(ctx context.Context, index, documentID string) (json.RawMessage, error) {
	req := esapi.GetRequest{
		Index:      index,
		DocumentID: documentID,
	}

	res, err := req.Do(ctx, s.es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError(index)
		}
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, nil
	}
	if res.IsError() {
		return nil, errors.NewSearchQueryFailedError(index, fmt.Errorf("get failed: %s", res.String()))
	}

	var doc getResponse
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, errors.NewSearchQueryFailedError(index, err)
	}
	if !doc.Found {
		return nil, nil
	}
	return doc.Source, nil
}

// internal/search/searcher.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/logger"
	"adoption-workers/internal/matching"
)

// Searcher runs semantic queries against Elasticsearch indices whose text
// fields carry inference mappings. Scores come back on ES's cosine scale,
// roughly 0 to 2.
type Searcher struct {
	es     *elasticsearch.Client
	logger logger.Logger
}

func NewSearcher(es *elasticsearch.Client, log logger.Logger) *Searcher {
	return &Searcher{
		es:     es,
		logger: log.WithFields(map[string]interface{}{"component": "search"}),
	}
}

// Search executes one semantic query and returns the scored hits in rank
// order. A DocID narrows the search to that single document, term filters
// narrow by exact field values.
func (s *Searcher) Search(ctx context.Context, q matching.SimilarityQuery) ([]matching.SimilarityHit, error) {
	if q.Index == "" || q.Field == "" || q.QueryText == "" {
		return nil, errors.NewSearchQueryFailedError(q.Index, fmt.Errorf("index, field and query text are required"))
	}

	size := q.TopK
	if size <= 0 {
		size = 10
	}

	filters := make([]interface{}, 0, len(q.Filters)+1)
	if q.DocID != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"_id": q.DocID},
		})
	}
	for field, value := range q.Filters {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{field: value},
		})
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"semantic": map[string]interface{}{
							"field": q.Field,
							"query": q.QueryText,
						},
					},
				},
				"filter": filters,
			},
		},
	}

	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, errors.NewSearchQueryFailedError(q.Index, err)
	}

	req := esapi.SearchRequest{
		Index: []string{q.Index},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError(q.Index)
		}
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, errors.NewIndexNotFoundError(q.Index)
		}
		return nil, errors.NewSearchQueryFailedError(q.Index, fmt.Errorf("search failed: %s", res.String()))
	}

	var r struct {
		Hits struct {
			Hits []struct {
				ID     string                 `json:"_id"`
				Score  float64                `json:"_score"`
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.NewSearchQueryFailedError(q.Index, err)
	}

	hits := make([]matching.SimilarityHit, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		hits = append(hits, matching.SimilarityHit{
			ID:     hit.ID,
			Score:  hit.Score,
			Source: hit.Source,
		})
	}

	s.logger.Debug("Semantic search completed", map[string]interface{}{
		"index":    q.Index,
		"field":    q.Field,
		"hitCount": len(hits),
	})

	return hits, nil
}

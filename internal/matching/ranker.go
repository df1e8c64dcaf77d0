// internal/matching/ranker.go
package matching

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"adoption-workers/internal/common/errors"
	"adoption-workers/internal/common/metrics"
	"adoption-workers/internal/models"
)

// RankApplicationsForDog scores every pending or under-review application
// against the given dog and returns the top limit results ordered by overall
// score descending. Equal scores keep their fetch order. A failure scoring
// one candidate skips that candidate without aborting the batch.
func (e *Engine) RankApplicationsForDog(ctx context.Context, dogID string, limit int) ([]models.RankedApplication, error) {
	if limit < 1 || limit > 100 {
		return nil, errors.NewInvalidRankLimitError(limit)
	}

	dog, err := e.store.GetDog(ctx, dogID)
	if err != nil {
		return nil, err
	}

	candidates, err := e.store.ListCandidateApplications(ctx, e.opts.MaxCandidates)
	if err != nil {
		return nil, err
	}

	// Slots are indexed by fetch position so the stable sort below can use
	// fetch order as the tie-break.
	results := make([]*models.CompatibilityResult, len(candidates))

	type job struct {
		idx int
		app *models.Application
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	workers := e.opts.RankConcurrency
	if workers > len(candidates) {
		workers = len(candidates)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if result := e.scoreCandidate(ctx, j.app, dog); result != nil {
					results[j.idx] = result
				}
			}
		}()
	}

	// Cancellation stops dispatching new candidates; in-flight scoring calls
	// run to completion.
dispatch:
	for i, app := range candidates {
		select {
		case jobs <- job{idx: i, app: app}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := make([]models.RankedApplication, 0, len(candidates))
	for i, result := range results {
		if result == nil {
			continue
		}
		ranked = append(ranked, models.RankedApplication{
			Application:   candidates[i],
			Compatibility: result,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Compatibility.OverallScore > ranked[b].Compatibility.OverallScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// scoreCandidate scores one candidate, converting any failure (including a
// panic from a malformed record) into a nil result.
func (e *Engine) scoreCandidate(ctx context.Context, app *models.Application, dog *models.DogProfile) (result *models.CompatibilityResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Skipping candidate after scoring panic", map[string]interface{}{
				"dogId": dog.ID,
				"panic": fmt.Sprintf("%v", r),
			})
			metrics.CandidatesSkipped.WithLabelValues(dog.ID).Inc()
			result = nil
		}
	}()

	if app == nil || app.ID == "" {
		e.logger.Error("Skipping unreadable candidate record", map[string]interface{}{
			"dogId": dog.ID,
		})
		metrics.CandidatesSkipped.WithLabelValues(dog.ID).Inc()
		return nil
	}

	result = e.scorePair(ctx, app, dog)
	metrics.CandidatesScored.WithLabelValues(dog.ID).Inc()
	return result
}

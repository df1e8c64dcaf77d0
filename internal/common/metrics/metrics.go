// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	CandidatesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_candidates_scored_total",
			Help: "Total number of candidate applications scored during ranking",
		},
		[]string{"dog_id"},
	)

	CandidatesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_candidates_skipped_total",
			Help: "Total number of candidate applications skipped due to scoring errors",
		},
		[]string{"dog_id"},
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outcome_predictions_total",
			Help: "Total number of outcome predictions by source",
		},
		[]string{"source"},
	)

	MotivationScoreDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "motivation_score_degraded_total",
			Help: "Total number of motivation scores that fell back to neutral after a search error",
		},
	)

	DogProfileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dog_profile_cache_requests_total",
			Help: "Dog profile cache lookups by result",
		},
		[]string{"result"},
	)
)

package runs

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RetentionJob prunes persisted runs older than the retention window. Runs
// daily via the scheduler.
type RetentionJob struct {
	repo          *Repository
	retentionDays int
	log           zerolog.Logger
}

// NewRetentionJob creates a retention job.
func NewRetentionJob(repo *Repository, retentionDays int, log zerolog.Logger) *RetentionJob {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &RetentionJob{
		repo:          repo,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "runs_retention").Logger(),
	}
}

// Name implements scheduler.Job.
func (j *RetentionJob) Name() string {
	return "runs_retention"
}

// Run deletes runs past the retention window.
func (j *RetentionJob) Run() error {
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("retention cleanup failed: %w", err)
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("Pruned old runs")
	}
	return nil
}

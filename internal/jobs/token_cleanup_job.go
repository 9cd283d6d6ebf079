package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TokenPurger deletes tokens that expired at now.
type TokenPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenCleanupJob purges expired auth tokens. The Redis store expires keys on
// its own; the pass there only sweeps keys whose TTL was lost.
type TokenCleanupJob struct {
	*scheduled
	tokens TokenPurger
	now    func() time.Time
}

func NewTokenCleanupJob(tokens TokenPurger, schedule string, logger *zap.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		scheduled: newScheduled("token_cleanup_job", schedule, logger),
		tokens:    tokens,
		now:       time.Now,
	}
}

// Start schedules Run.
func (j *TokenCleanupJob) Start() error {
	return j.start(func(ctx context.Context) {
		_, _ = j.Run(ctx)
	})
}

// Run performs one cleanup pass and reports how many tokens were removed.
func (j *TokenCleanupJob) Run(ctx context.Context) (int64, error) {
	removed, err := j.tokens.DeleteExpired(ctx, j.now())
	if err != nil {
		j.logger.Error("token cleanup failed", zap.Error(err))
		return 0, err
	}

	if removed > 0 {
		j.logger.Info("expired tokens removed", zap.Int64("count", removed))
	}
	return removed, nil
}

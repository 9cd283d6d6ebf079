package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// runTimeout bounds a single job pass.
const runTimeout = 30 * time.Second

// cronLogger feeds robfig/cron's internal logging into zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// scheduled is the cron plumbing shared by every job: one cron instance with
// seconds-precision specs, panic recovery and no overlapping runs.
type scheduled struct {
	name     string
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func newScheduled(name, schedule string, logger *zap.Logger) *scheduled {
	logger = logger.With(zap.String("component", name))
	cl := cronLogger{logger: logger.Sugar()}

	return &scheduled{
		name:     name,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Name identifies the job in logs and errors.
func (s *scheduled) Name() string {
	return s.name
}

func (s *scheduled) start(run func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("job started", zap.String("schedule", s.schedule))
	return nil
}

// Stop stops scheduling and waits for a running pass to finish.
func (s *scheduled) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("job stopped")
}

package jobs

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// probeTimeout bounds each dependency check.
const probeTimeout = 2 * time.Second

// Probe checks one dependency, e.g. sql.DB.PingContext.
type Probe func(ctx context.Context) error

// HealthStatusSetter is the write side of grpc/health.Server.
type HealthStatusSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// HealthProbeJob checks the storage dependencies and publishes the result as
// the serving status of service (and of the overall "" service).
type HealthProbeJob struct {
	*scheduled
	service string
	probes  map[string]Probe
	health  HealthStatusSetter

	mu   sync.Mutex
	last healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthProbeJob(
	service string,
	probes map[string]Probe,
	health HealthStatusSetter,
	schedule string,
	logger *zap.Logger,
) *HealthProbeJob {
	return &HealthProbeJob{
		scheduled: newScheduled("health_probe_job", schedule, logger),
		service:   service,
		probes:    probes,
		health:    health,
		last:      healthpb.HealthCheckResponse_UNKNOWN,
	}
}

// Start runs one probe immediately, so the status is known before the first
// tick, and then schedules Run.
func (j *HealthProbeJob) Start() error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout*time.Duration(len(j.probes)+1))
	_ = j.Run(ctx)
	cancel()

	return j.start(func(ctx context.Context) {
		_ = j.Run(ctx)
	})
}

// Run checks every dependency and publishes SERVING only when all pass.
// Status changes are logged; a steady state is not.
func (j *HealthProbeJob) Run(ctx context.Context) error {
	names := make([]string, 0, len(j.probes))
	for name := range j.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	var failures []error
	for _, name := range names {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := j.probes[name](probeCtx)
		cancel()
		if err != nil {
			j.logger.Warn("dependency probe failed", zap.String("dependency", name), zap.Error(err))
			failures = append(failures, err)
		}
	}

	status := healthpb.HealthCheckResponse_SERVING
	if len(failures) > 0 {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	j.health.SetServingStatus("", status)
	j.health.SetServingStatus(j.service, status)

	j.mu.Lock()
	changed := j.last != status
	j.last = status
	j.mu.Unlock()

	if changed {
		j.logger.Info("serving status changed", zap.Stringer("status", status))
	}
	return errors.Join(failures...)
}

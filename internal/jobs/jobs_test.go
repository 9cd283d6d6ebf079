package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type MockTokenPurger struct{ mock.Mock }

func (m *MockTokenPurger) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockOverdueReader struct{ mock.Mock }

func (m *MockOverdueReader) Handle(ctx context.Context, now time.Time) ([]queries.OverdueShipmentView, error) {
	args := m.Called(ctx, now)
	views, _ := args.Get(0).([]queries.OverdueShipmentView)
	return views, args.Error(1)
}

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j fakeJob) Name() string { return j.name }

func (j fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.events = append(*j.events, "start "+j.name)
	return nil
}

func (j fakeJob) Stop() { *j.events = append(*j.events, "stop "+j.name) }

func TestTokenCleanupJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("reports removed tokens", func(t *testing.T) {
		purger := new(MockTokenPurger)
		purger.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()
		core, logs := observer.New(zapcore.InfoLevel)

		removed, err := jobs.NewTokenCleanupJob(purger, "@every 1m", zap.New(core)).Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		require.Equal(t, 1, logs.FilterMessage("expired tokens removed").Len())
		assert.Equal(t, "token_cleanup_job", logs.All()[0].ContextMap()["component"])
		purger.AssertExpectations(t)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		purger := new(MockTokenPurger)
		purger.On("DeleteExpired", ctx, mock.Anything).Return(int64(0), errors.New("connection refused")).Once()

		_, err := jobs.NewTokenCleanupJob(purger, "@every 1m", zap.NewNop()).Run(ctx)

		require.Error(t, err)
		purger.AssertExpectations(t)
	})
}

func TestOverdueShipmentsReportJob_Run(t *testing.T) {
	ctx := context.Background()
	overdue := []queries.OverdueShipmentView{
		{
			ID:           kernel.NewUUID(),
			OrderID:      kernel.NewUUID(),
			DispatcherID: kernel.NewUUID(),
			DriverID:     kernel.NewUUID(),
			VehiclePlate: "AB123CD",
			ArrivalTime:  time.Now().Add(-2 * time.Hour),
		},
		{
			ID:           kernel.NewUUID(),
			OrderID:      kernel.NewUUID(),
			DispatcherID: kernel.NewUUID(),
			DriverID:     kernel.NewUUID(),
			VehiclePlate: "EF456GH",
			ArrivalTime:  time.Now().Add(-time.Minute),
		},
	}

	reader := new(MockOverdueReader)
	reader.On("Handle", ctx, mock.AnythingOfType("time.Time")).Return(overdue, nil).Once()
	core, logs := observer.New(zapcore.WarnLevel)

	count, err := jobs.NewOverdueShipmentsReportJob(reader, "@every 1m", zap.New(core)).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	entries := logs.FilterMessage("shipment overdue").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "AB123CD", entries[0].ContextMap()["vehicle"])
	assert.Equal(t, overdue[0].ID.String(), entries[0].ContextMap()["shipment_id"])
	reader.AssertExpectations(t)
}

func TestHealthProbeJob_Run(t *testing.T) {
	ctx := context.Background()
	hs := health.NewServer()
	healthy := true
	probes := map[string]jobs.Probe{
		"postgres": func(context.Context) error {
			if healthy {
				return nil
			}
			return errors.New("connection refused")
		},
		"redis": func(context.Context) error { return nil },
	}
	job := jobs.NewHealthProbeJob("logistics", probes, hs, "@every 1m", zap.NewNop())

	status := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		resp, err := hs.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	require.NoError(t, job.Run(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status("logistics"))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(""))

	healthy = false
	require.Error(t, job.Run(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status("logistics"))

	healthy = true
	require.NoError(t, job.Run(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status("logistics"))
}

func TestJobManager(t *testing.T) {
	t.Run("starts in order and stops in reverse", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(
			fakeJob{name: "a", events: &events},
			fakeJob{name: "b", events: &events},
		)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(
			fakeJob{name: "a", events: &events},
			fakeJob{name: "b", events: &events, startErr: errors.New("boom")},
		)

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start b")
		assert.Equal(t, []string{"start a", "stop a"}, events)
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		job := jobs.NewTokenCleanupJob(new(MockTokenPurger), "every now and then", zap.NewNop())

		err := jobs.NewJobManager(job).StartAll()

		require.ErrorContains(t, err, "token_cleanup_job")
	})

	t.Run("real jobs start and stop", func(t *testing.T) {
		purger := new(MockTokenPurger)
		purger.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
		jm := jobs.NewJobManager(jobs.NewTokenCleanupJob(purger, "@every 1h", zap.NewNop()))

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}

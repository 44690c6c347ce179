package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/metrics"
	"github.com/MKhiriev/go-futures-backend/internal/mock"
	"github.com/MKhiriev/go-futures-backend/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	mu       sync.Mutex
	statuses []health.Status
}

func (p *recordingPublisher) SetServingStatus(status health.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, status)
}

func (p *recordingPublisher) last() (health.Status, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.statuses) == 0 {
		return "", 0
	}
	return p.statuses[len(p.statuses)-1], len(p.statuses)
}

func TestHealthProbeWorker_PublishesGaugesAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := mock.NewMockSampler(ctrl)
	sampler.EXPECT().Sample(gomock.Any()).Return(health.SystemSample{
		CPUPercent:      12.5,
		MemoryPercent:   30,
		MemoryUsedBytes: 2048,
		DiskPercent:     10,
	}, nil).MinTimes(1)

	monitor, err := health.NewMonitor(sampler)
	require.NoError(t, err)
	collector := metrics.NewCollector()
	publisher := &recordingPublisher{}

	ctx, cancel := context.WithCancel(context.Background())
	w := NewHealthProbeWorker(monitor, collector, time.Hour, logger.Nop(), publisher)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, n := publisher.last()
		return n > 0
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	status, _ := publisher.last()
	assert.Equal(t, health.StatusHealthy, status)

	cpu, ok := collector.Get(metrics.CPUUsage, nil)
	require.True(t, ok)
	assert.Equal(t, 12.5, cpu.Value)

	mem, ok := collector.Get(metrics.MemoryUsage, nil)
	require.True(t, ok)
	assert.Equal(t, 2048.0, mem.Value)
}

func TestHealthProbeWorker_SamplingErrorIsNotServing(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := mock.NewMockSampler(ctrl)
	sampler.EXPECT().Sample(gomock.Any()).Return(health.SystemSample{}, errors.New("no /proc")).AnyTimes()

	monitor, err := health.NewMonitor(sampler)
	require.NoError(t, err)
	collector := metrics.NewCollector()
	publisher := &recordingPublisher{}

	w := NewHealthProbeWorker(monitor, collector, time.Hour, logger.Nop(), publisher)
	w.probe(context.Background())

	status, n := publisher.last()
	assert.Equal(t, 1, n)
	assert.Equal(t, health.StatusError, status)
	_, ok := collector.Get(metrics.CPUUsage, nil)
	assert.False(t, ok, "no gauge is published without a sample")
}

func TestHealthProbeWorker_InvalidInterval(t *testing.T) {
	w := NewHealthProbeWorker(nil, nil, 0, logger.Nop())

	assert.ErrorIs(t, w.Run(context.Background()), ErrNonPositiveInterval)
}

func TestLimiterSweepWorker_SweepsIdleKeys(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	registry := ratelimit.NewRegistry(ratelimit.WithClock(clock))
	limiter, err := registry.For("/test", ratelimit.Policy{MaxRequests: 5, Window: time.Second})
	require.NoError(t, err)
	require.True(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.2"))

	mu.Lock()
	now = now.Add(2 * time.Second)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewLimiterSweepWorker(registry, 5*time.Millisecond, logger.Nop())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return limiter.Keys() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestLimiterSweepWorker_DefaultsToLongestWindow(t *testing.T) {
	w := NewLimiterSweepWorker(ratelimit.NewRegistry(), 0, logger.Nop())

	// an empty registry has no window to fall back to
	assert.ErrorIs(t, w.Run(context.Background()), ErrNonPositiveInterval)
}

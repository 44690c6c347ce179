package health

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
)

const (
	// HistoryCapacity is the number of snapshots kept, oldest dropped first.
	HistoryCapacity = 100

	recentChecks = 10

	degradedUsage  = 90.0
	unhealthyUsage = 95.0
	degradedRate   = 0.95
	unhealthyRate  = 0.90
	defaultEnvName = "development"
)

// Monitor owns the request tally and the snapshot history.
type Monitor struct {
	sampler   Sampler
	logger    *logger.Logger
	now       func() time.Time
	startedAt time.Time
	env       EnvironmentInfo

	mu      sync.Mutex
	tally   Tally
	history []Snapshot
	checks  int
}

// Option customizes a Monitor.
type Option func(*Monitor)

func WithLogger(l *logger.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithEnvironment sets the environment name and debug flag reported in
// snapshots.
func WithEnvironment(name string, debug bool) Option {
	return func(m *Monitor) {
		if name != "" {
			m.env.Environment = name
		}
		m.env.Debug = debug
	}
}

// NewMonitor creates a Monitor reading host usage from sampler. Uptime is
// measured from this call.
func NewMonitor(sampler Sampler, opts ...Option) (*Monitor, error) {
	if sampler == nil {
		return nil, ErrNilSampler
	}

	m := &Monitor{
		sampler: sampler,
		logger:  logger.Nop(),
		now:     time.Now,
		env: EnvironmentInfo{
			GoVersion:   runtime.Version(),
			Environment: defaultEnvName,
		},
		history: make([]Snapshot, 0, HistoryCapacity),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.startedAt = m.now()

	return m, nil
}

// CheckHealth samples the host, classifies the result and appends it to the
// history. A sampling failure yields a snapshot with StatusError.
func (m *Monitor) CheckHealth(ctx context.Context) Snapshot {
	sample, err := m.sampler.Sample(ctx)
	now := m.now()

	if err != nil {
		m.logger.Error().Err(err).Msg("health check failed")

		snapshot := Snapshot{
			Status:    StatusError,
			Timestamp: now.UTC(),
			Uptime:    FormatUptime(now.Sub(m.startedAt)),
			Error:     err.Error(),
		}
		m.store(snapshot)

		return snapshot
	}

	tally := m.Tally()
	rate := tally.SuccessRate()
	env := m.env

	snapshot := Snapshot{
		Status:    classify(sample, rate),
		Timestamp: now.UTC(),
		Uptime:    FormatUptime(now.Sub(m.startedAt)),
		System: &SystemStatus{
			CPUPercent:        sample.CPUPercent,
			MemoryPercent:     sample.MemoryPercent,
			MemoryAvailableGB: toGB(sample.MemoryAvailableBytes),
			DiskPercent:       sample.DiskPercent,
			DiskFreeGB:        toGB(sample.DiskFreeBytes),
			MemoryUsedBytes:   sample.MemoryUsedBytes,
		},
		Application: &ApplicationStatus{Tally: tally, SuccessRate: rate},
		Environment: &env,
	}
	m.store(snapshot)

	return snapshot
}

// classify applies the unhealthy thresholds first, then the degraded ones.
func classify(s SystemSample, rate float64) Status {
	switch {
	case s.CPUPercent > unhealthyUsage, s.MemoryPercent > unhealthyUsage,
		s.DiskPercent > unhealthyUsage, rate < unhealthyRate:
		return StatusUnhealthy
	case s.CPUPercent > degradedUsage, s.MemoryPercent > degradedUsage,
		s.DiskPercent > degradedUsage, rate < degradedRate:
		return StatusDegraded
	default:
		return StatusHealthy
	}
}

// DetailedHealth runs CheckHealth and adds the history summary, process
// and network details. Failing sub-probes are reported inline.
func (m *Monitor) DetailedHealth(ctx context.Context) DetailedSnapshot {
	detailed := DetailedSnapshot{
		Snapshot: m.CheckHealth(ctx),
		History:  m.SummarizeHistory(),
	}

	if info, err := m.sampler.Process(ctx); err != nil {
		m.logger.Error().Err(err).Msg("failed to get process info")
		detailed.Processes.Error = err.Error()
	} else {
		detailed.Processes.ProcessInfo = &info
	}

	if info, err := m.sampler.Network(ctx); err != nil {
		m.logger.Error().Err(err).Msg("failed to get network info")
		detailed.Network.Error = err.Error()
	} else {
		detailed.Network.NetworkInfo = &info
	}

	return detailed
}

// RecordOutcome adds one completed request to the tally.
func (m *Monitor) RecordOutcome(success bool, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tally.Total++
	if success {
		m.tally.Successful++
	} else {
		m.tally.Failed++
	}

	n := float64(m.tally.Total)
	m.tally.AverageResponseTime += (latency.Seconds() - m.tally.AverageResponseTime) / n
}

// Tally returns a copy of the request counters.
func (m *Monitor) Tally() Tally {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tally
}

// ResetTally zeroes the request counters. History is kept.
func (m *Monitor) ResetTally() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tally = Tally{}
}

// SummarizeHistory reports the status distribution of the last 10 checks.
// TotalChecks counts every check since creation, including evicted ones.
func (m *Monitor) SummarizeHistory() HistorySummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return HistorySummary{}
	}

	recent := m.history[max(0, len(m.history)-recentChecks):]

	summary := HistorySummary{
		RecentStatusDistribution: make(map[Status]int),
		TotalChecks:              m.checks,
		Last10Statuses:           make([]Status, 0, len(recent)),
	}
	for _, s := range recent {
		summary.RecentStatusDistribution[s.Status]++
		summary.Last10Statuses = append(summary.Last10Statuses, s.Status)
	}

	return summary
}

// Uptime is the time since the monitor was created.
func (m *Monitor) Uptime() time.Duration {
	return m.now().Sub(m.startedAt)
}

func (m *Monitor) store(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == HistoryCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:HistoryCapacity-1]
	}
	m.history = append(m.history, s)
	m.checks++
}

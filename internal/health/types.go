package health

import (
	"math"
	"time"
)

// Status is the overall verdict of a health check.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusError     Status = "error"
)

// Serving reports whether traffic should still be routed to the service.
func (s Status) Serving() bool {
	return s == StatusHealthy || s == StatusDegraded
}

// SystemSample is one reading of host resources. Percentages are 0..100.
type SystemSample struct {
	CPUPercent           float64
	MemoryPercent        float64
	MemoryAvailableBytes uint64
	MemoryUsedBytes      uint64
	DiskPercent          float64
	DiskFreeBytes        uint64
}

// ProcessInfo describes the running process.
type ProcessInfo struct {
	PID        int32   `json:"pid"`
	MemoryMB   float64 `json:"memory_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	NumThreads int32   `json:"num_threads"`
	OpenFiles  int     `json:"open_files"`
	Conns      int     `json:"connections"`
}

// NetworkInfo holds host-wide network counters.
type NetworkInfo struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	Conns       int    `json:"connections"`
}

// SystemStatus is the resource part of a Snapshot.
type SystemStatus struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryAvailableGB float64 `json:"memory_available_gb"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskFreeGB        float64 `json:"disk_free_gb"`

	// MemoryUsedBytes feeds the memory gauge and is not reported.
	MemoryUsedBytes uint64 `json:"-"`
}

// Tally counts completed requests. AverageResponseTime is in seconds.
type Tally struct {
	Total               int64   `json:"requests_total"`
	Successful          int64   `json:"requests_successful"`
	Failed              int64   `json:"requests_failed"`
	AverageResponseTime float64 `json:"average_response_time"`
}

// SuccessRate is Successful/Total, or 1 when nothing was served yet.
func (t Tally) SuccessRate() float64 {
	if t.Total == 0 {
		return 1
	}
	return float64(t.Successful) / float64(t.Total)
}

// ApplicationStatus is the request part of a Snapshot.
type ApplicationStatus struct {
	Tally
	SuccessRate float64 `json:"success_rate"`
}

// EnvironmentInfo describes the runtime the service runs in.
type EnvironmentInfo struct {
	GoVersion   string `json:"go_version"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug_mode"`
}

// Snapshot is the immutable result of one health check. Only Status,
// Timestamp, Uptime and Error are set on an error snapshot.
type Snapshot struct {
	Status      Status             `json:"status"`
	Timestamp   time.Time          `json:"timestamp"`
	Uptime      string             `json:"uptime"`
	System      *SystemStatus      `json:"system,omitempty"`
	Application *ApplicationStatus `json:"application,omitempty"`
	Environment *EnvironmentInfo   `json:"environment,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// HistorySummary describes the recent checks and how many ran in total.
// It is empty when no check ran yet.
type HistorySummary struct {
	RecentStatusDistribution map[Status]int `json:"recent_status_distribution,omitempty"`
	TotalChecks              int            `json:"total_checks,omitempty"`
	Last10Statuses           []Status       `json:"last_10_statuses,omitempty"`
}

// ProcessReport is ProcessInfo or the error that prevented reading it.
type ProcessReport struct {
	*ProcessInfo
	Error string `json:"error,omitempty"`
}

// NetworkReport is NetworkInfo or the error that prevented reading it.
type NetworkReport struct {
	*NetworkInfo
	Error string `json:"error,omitempty"`
}

// DetailedSnapshot extends a Snapshot with history, process and network
// details.
type DetailedSnapshot struct {
	Snapshot
	History   HistorySummary `json:"history"`
	Processes ProcessReport  `json:"processes"`
	Network   NetworkReport  `json:"network"`
}

const bytesPerGB = 1 << 30

func toGB(b uint64) float64 {
	return round2(float64(b) / bytesPerGB)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

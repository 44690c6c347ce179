package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m 0s"},
		{-time.Minute, "0m 0s"},
		{59*time.Second + 900*time.Millisecond, "0m 59s"},
		{12*time.Minute + 3*time.Second, "12m 3s"},
		{time.Hour, "1h 0m"},
		{5*time.Hour + 42*time.Minute + 10*time.Second, "5h 42m"},
		{24 * time.Hour, "1d 0h 0m"},
		{3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second, "3d 4h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.in))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusHealthy, classify(SystemSample{CPUPercent: 90, MemoryPercent: 90, DiskPercent: 90}, 0.95))
	assert.Equal(t, StatusDegraded, classify(SystemSample{}, 0.94))
	assert.Equal(t, StatusDegraded, classify(SystemSample{}, 0.90))
	assert.Equal(t, StatusUnhealthy, classify(SystemSample{}, 0.89))
	assert.Equal(t, StatusUnhealthy, classify(SystemSample{CPUPercent: 99}, 1))
}

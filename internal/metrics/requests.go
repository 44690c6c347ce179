package metrics

import (
	"strconv"
	"time"
)

// Families recorded by the convenience recorders.
const (
	HTTPRequestsTotal         = "http_requests_total"
	HTTPRequestDuration       = "http_request_duration_seconds"
	ActiveConnections         = "active_connections"
	FileUploadsTotal          = "file_uploads_total"
	FileUploadSize            = "file_upload_size_bytes"
	MemoryUsage               = "memory_usage_bytes"
	CPUUsage                  = "cpu_usage_percent"
	SecurityEventsTotal       = "security_events_total"
	ValidationDurationSeconds = "validation_duration_seconds"
)

func (c *Collector) describeStandardFamilies() {
	c.help[HTTPRequestsTotal] = "Total number of HTTP requests"
	c.help[HTTPRequestDuration] = "HTTP request duration in seconds"
	c.help[ActiveConnections] = "Number of in-flight HTTP requests"
	c.help[FileUploadsTotal] = "Total number of file uploads"
	c.help[FileUploadSize] = "Size of uploaded files in bytes"
	c.help[MemoryUsage] = "Memory used by the host in bytes"
	c.help[CPUUsage] = "Host CPU usage percentage"
	c.help[SecurityEventsTotal] = "Total number of security events"
	c.help[ValidationDurationSeconds] = "Input validation duration in seconds"
}

// RecordRequest counts a completed HTTP request and observes its duration.
func (c *Collector) RecordRequest(method, endpoint string, status int, duration time.Duration) {
	c.report(c.IncrementCounter(HTTPRequestsTotal, Labels{
		"method":   method,
		"endpoint": endpoint,
		"status":   strconv.Itoa(status),
	}, 1))
	c.report(c.RecordHistogram(HTTPRequestDuration, duration.Seconds(), Labels{
		"method":   method,
		"endpoint": endpoint,
	}))
}

// SetActiveConnections publishes the number of in-flight requests.
func (c *Collector) SetActiveConnections(n int) {
	c.report(c.SetGauge(ActiveConnections, float64(n), nil))
}

// RecordFileUpload counts an upload attempt and, when size is positive,
// observes its size.
func (c *Collector) RecordFileUpload(success bool, fileType string, size int64) {
	c.report(c.IncrementCounter(FileUploadsTotal, Labels{
		"success":   strconv.FormatBool(success),
		"file_type": fileType,
	}, 1))
	if size > 0 {
		c.report(c.RecordHistogram(FileUploadSize, float64(size), Labels{"file_type": fileType}))
	}
}

func (c *Collector) SetMemoryUsage(bytesUsed uint64) {
	c.report(c.SetGauge(MemoryUsage, float64(bytesUsed), nil))
}

func (c *Collector) SetCPUUsage(percent float64) {
	c.report(c.SetGauge(CPUUsage, percent, nil))
}

// IncrementSecurityEvent counts a security event such as a rate limit
// rejection or a validation failure.
func (c *Collector) IncrementSecurityEvent(eventType, riskLevel string) {
	c.report(c.IncrementCounter(SecurityEventsTotal, Labels{
		"event_type": eventType,
		"risk_level": riskLevel,
	}, 1))
}

func (c *Collector) RecordValidationDuration(validationType string, duration time.Duration) {
	c.report(c.RecordHistogram(ValidationDurationSeconds, duration.Seconds(), Labels{
		"validation_type": validationType,
	}))
}

func (c *Collector) report(err error) {
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to record metric")
	}
}

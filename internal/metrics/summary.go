package metrics

import "time"

// SummaryEntry is one series in a Summary.
type SummaryEntry struct {
	Value     float64   `json:"value"`
	Labels    Labels    `json:"labels"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary groups every series by kind, keyed by its Identity.
type Summary struct {
	TotalMetrics int                     `json:"total_metrics"`
	Counters     map[string]SummaryEntry `json:"counters"`
	Gauges       map[string]SummaryEntry `json:"gauges"`
	Histograms   map[string]SummaryEntry `json:"histograms"`
	Timestamp    time.Time               `json:"timestamp"`
}

// Summary returns a JSON-friendly view of the collector.
func (c *Collector) Summary() Summary {
	snapshot := c.snapshot()

	summary := Summary{
		TotalMetrics: len(snapshot),
		Counters:     make(map[string]SummaryEntry),
		Gauges:       make(map[string]SummaryEntry),
		Histograms:   make(map[string]SummaryEntry),
		Timestamp:    c.now().UTC(),
	}

	for _, s := range snapshot {
		entry := SummaryEntry{Value: s.Value, Labels: s.Labels, Timestamp: s.UpdatedAt.UTC()}

		switch s.Kind {
		case KindCounter:
			summary.Counters[s.Identity()] = entry
		case KindHistogram:
			summary.Histograms[s.Identity()] = entry
		default:
			summary.Gauges[s.Identity()] = entry
		}
	}

	return summary
}

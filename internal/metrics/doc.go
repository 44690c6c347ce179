// Package metrics is the process-wide store of counters, gauges and
// histograms recorded by the request governance layer, with a Prometheus
// text exporter.
//
// # Design
//
// A series is identified by its name and its sorted label set. The kind of
// every series is fixed when it is created, so export grouping never has to
// guess counters from gauges by name. Histograms use eight fixed upper
// bounds (0.1 … 60) and are stored as <name>_bucket{le=...}, <name>_sum and
// <name>_count series. There is no +Inf bucket: observations above 60 only
// move _sum and _count.
//
// Every read ([Collector.GetAll], [Collector.ExportText],
// [Collector.Summary]) works on copies taken under the lock, so readers never
// see a half-updated series and never block writers while rendering.
package metrics

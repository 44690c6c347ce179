package metrics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ContentType is the media type of ExportText output.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

type family struct {
	name   string
	kind   Kind
	series []Series
}

// ExportText renders every series in the Prometheus text exposition format.
//
// The output starts with <prefix>_app_info, continues with one HELP/TYPE
// pair per family sorted by name and ends with <prefix>_uptime_seconds.
// A series that cannot be rendered is skipped and logged.
func (c *Collector) ExportText() string {
	snapshot := c.snapshot()
	help := c.helpSnapshot()

	var b strings.Builder

	appInfo := c.prefix + "_app_info"
	writeHeader(&b, appInfo, "Application information", KindGauge)
	writeSample(&b, appInfo, Labels{"version": c.version}, 1)

	for _, f := range groupFamilies(snapshot) {
		if err := writeFamily(&b, f, help[f.name]); err != nil {
			c.logger.Error().Err(err).Str("family", f.name).Msg("failed to export metric family")
		}
	}

	uptime := c.prefix + "_uptime_seconds"
	writeHeader(&b, uptime, "Application uptime in seconds", KindGauge)
	writeSample(&b, uptime, nil, c.Uptime().Seconds())

	return b.String()
}

func groupFamilies(snapshot []Series) []family {
	byName := make(map[string]*family)
	for _, s := range snapshot {
		f, ok := byName[s.Family]
		if !ok {
			f = &family{name: s.Family, kind: s.Kind}
			byName[s.Family] = f
		}
		f.series = append(f.series, s)
	}

	families := make([]family, 0, len(byName))
	for _, f := range byName {
		families = append(families, *f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].name < families[j].name })

	for _, f := range families {
		if f.kind == KindHistogram {
			sortHistogram(f.name, f.series)
			continue
		}
		sort.Slice(f.series, func(i, j int) bool {
			return seriesKey(f.series[i].Name, f.series[i].Labels) < seriesKey(f.series[j].Name, f.series[j].Labels)
		})
	}

	return families
}

// sortHistogram orders series by base labels, then buckets by bound, sum
// and count.
func sortHistogram(name string, series []Series) {
	rank := func(s Series) int {
		switch s.Name {
		case name + bucketSuffix:
			return 0
		case name + sumSuffix:
			return 1
		default:
			return 2
		}
	}
	bound := func(s Series) float64 {
		v, err := strconv.ParseFloat(s.Labels[bucketLabel], 64)
		if err != nil {
			return math.Inf(1)
		}
		return v
	}

	sort.SliceStable(series, func(i, j int) bool {
		a, b := series[i], series[j]
		ka, kb := seriesKey("", a.Labels.without(bucketLabel)), seriesKey("", b.Labels.without(bucketLabel))
		if ka != kb {
			return ka < kb
		}
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra < rb
		}
		return bound(a) < bound(b)
	})
}

// writeFamily writes nothing when f mixes kinds.
func writeFamily(b *strings.Builder, f family, help string) error {
	for _, s := range f.series {
		if s.Kind != f.kind {
			return fmt.Errorf("%w: %s mixes %s and %s", ErrKindMismatch, f.name, f.kind, s.Kind)
		}
	}

	if help == "" {
		help = f.name
	}
	writeHeader(b, f.name, help, f.kind)

	for _, s := range f.series {
		writeSample(b, s.Name, s.Labels, s.Value)
	}

	return nil
}

func writeHeader(b *strings.Builder, name, help string, kind Kind) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteByte('\n')

	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(kind.String())
	b.WriteByte('\n')
}

func writeSample(b *strings.Builder, name string, labels Labels, value float64) {
	b.WriteString(name)
	b.WriteString(formatLabels(labels))
	b.WriteByte(' ')
	b.WriteString(formatValue(value))
	b.WriteByte('\n')
}

func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

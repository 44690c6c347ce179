package metrics

import (
	"sort"
	"strings"
	"time"
)

// Kind is the declared type of a series.
type Kind uint8

const (
	KindCounter Kind = iota + 1
	KindGauge
	KindHistogram
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	default:
		return "untyped"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Labels dimension a series. Equality is by content.
type Labels map[string]string

func (l Labels) clone() Labels {
	if len(l) == 0 {
		return Labels{}
	}
	c := make(Labels, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}

func (l Labels) with(key, value string) Labels {
	c := make(Labels, len(l)+1)
	for k, v := range l {
		c[k] = v
	}
	c[key] = value
	return c
}

func (l Labels) without(key string) Labels {
	c := make(Labels, len(l))
	for k, v := range l {
		if k != key {
			c[k] = v
		}
	}
	return c
}

func (l Labels) sortedKeys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Series is a point-in-time copy of one metric stream.
type Series struct {
	// Name is the exposed series name, e.g. http_request_duration_seconds_bucket.
	Name string `json:"name"`

	// Family is the name the series was recorded under; for histogram
	// series it is the name without the _bucket/_sum/_count suffix.
	Family string `json:"family"`

	Kind      Kind      `json:"kind"`
	Labels    Labels    `json:"labels"`
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"timestamp"`
}

func (s *Series) clone() Series {
	c := *s
	c.Labels = s.Labels.clone()
	return c
}

// Identity renders the series as name{k="v",...} with sorted, escaped labels.
func (s Series) Identity() string {
	return s.Name + formatLabels(s.Labels)
}

// seriesKey packs name and sorted labels into a map key. '\xff' cannot occur
// in valid UTF-8, so distinct label sets never collide.
func seriesKey(name string, labels Labels) string {
	var b strings.Builder
	b.WriteString(name)
	for _, k := range labels.sortedKeys() {
		b.WriteByte('\xff')
		b.WriteString(k)
		b.WriteByte('\xff')
		b.WriteString(labels[k])
	}
	return b.String()
}

// formatLabels renders {k="v",...} or an empty string for no labels.
func formatLabels(labels Labels) string {
	if len(labels) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range labels.sortedKeys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeLabelValue(labels[k]))
		b.WriteByte('"')
	}
	b.WriteByte('}')

	return b.String()
}

var labelValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabelValue(v string) string {
	return labelValueEscaper.Replace(v)
}

var helpEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

func escapeHelp(help string) string {
	return helpEscaper.Replace(help)
}

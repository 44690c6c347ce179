package metrics

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
)

const (
	defaultPrefix  = "rl_futures"
	defaultVersion = "0.1.0"

	bucketSuffix = "_bucket"
	sumSuffix    = "_sum"
	countSuffix  = "_count"
	bucketLabel  = "le"
)

// HistogramBuckets are the fixed upper bounds of every histogram.
var HistogramBuckets = [...]float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0}

// Collector stores every series of the process. The zero value is not
// usable; construct it with NewCollector and share the pointer.
type Collector struct {
	prefix    string
	version   string
	now       func() time.Time
	startedAt time.Time
	logger    *logger.Logger

	mu     sync.Mutex
	series map[string]*Series
	names  map[string]nameClaim
	help   map[string]string
}

// nameClaim records which family and kind own an exposed series name.
type nameClaim struct {
	family string
	kind   Kind
}

// Option customizes a Collector.
type Option func(*Collector)

// WithPrefix sets the namespace of the synthetic app_info and uptime gauges.
func WithPrefix(prefix string) Option {
	return func(c *Collector) { c.prefix = prefix }
}

// WithVersion sets the version label of the app_info gauge.
func WithVersion(version string) Option {
	return func(c *Collector) {
		if version != "" {
			c.version = version
		}
	}
}

// WithLogger sets the logger recording failures are reported to.
func WithLogger(l *logger.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// NewCollector creates an empty Collector. Uptime is measured from this call.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		prefix:  defaultPrefix,
		version: defaultVersion,
		now:     time.Now,
		logger:  logger.Nop(),
		series:  make(map[string]*Series),
		names:   make(map[string]nameClaim),
		help:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startedAt = c.now()

	c.describeStandardFamilies()

	return c
}

// Describe sets the HELP text exported for family.
func (c *Collector) Describe(family, help string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.help[family] = help
}

// IncrementCounter adds delta to the counter name{labels}, creating it at
// zero on first use. Counters never decrease.
func (c *Collector) IncrementCounter(name string, labels Labels, delta float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if delta < 0 {
		return fmt.Errorf("%w: %s by %v", ErrNegativeDelta, name, delta)
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.claim(name, KindCounter, name); err != nil {
		return err
	}

	s, err := c.getOrCreate(name, name, KindCounter, labels, now)
	if err != nil {
		return err
	}
	s.Value += delta
	s.UpdatedAt = now

	return nil
}

// SetGauge replaces the value of the gauge name{labels}. Last write wins.
func (c *Collector) SetGauge(name string, value float64, labels Labels) error {
	if name == "" {
		return ErrEmptyName
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.claim(name, KindGauge, name); err != nil {
		return err
	}

	s, err := c.getOrCreate(name, name, KindGauge, labels, now)
	if err != nil {
		return err
	}
	s.Value = value
	s.UpdatedAt = now

	return nil
}

// RecordHistogram observes value in the histogram name{labels}.
//
// Each bucket with value <= bound is incremented; _sum grows by value and
// _count by one. A value above the largest bound touches no bucket.
func (c *Collector) RecordHistogram(name string, value float64, labels Labels) error {
	if name == "" {
		return ErrEmptyName
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.claim(name, KindHistogram, name, name+bucketSuffix, name+sumSuffix, name+countSuffix); err != nil {
		return err
	}

	for _, bound := range HistogramBuckets {
		bucket, err := c.getOrCreate(name+bucketSuffix, name, KindHistogram, labels.with(bucketLabel, formatBound(bound)), now)
		if err != nil {
			return err
		}
		if value <= bound {
			bucket.Value++
			bucket.UpdatedAt = now
		}
	}

	sum, _ := c.getOrCreate(name+sumSuffix, name, KindHistogram, labels, now)
	sum.Value += value
	sum.UpdatedAt = now

	count, _ := c.getOrCreate(name+countSuffix, name, KindHistogram, labels, now)
	count.Value++
	count.UpdatedAt = now

	return nil
}

// Get returns a copy of the series name{labels}.
func (c *Collector) Get(name string, labels Labels) (Series, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.series[seriesKey(name, labels)]
	if !ok {
		return Series{}, false
	}
	return s.clone(), true
}

// GetAll returns a copy of every series keyed by its Identity.
func (c *Collector) GetAll() map[string]Series {
	snapshot := c.snapshot()

	all := make(map[string]Series, len(snapshot))
	for _, s := range snapshot {
		all[s.Identity()] = s
	}
	return all
}

// Reset drops every series and the kinds declared for them. Help texts and
// the uptime origin are kept.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.series = make(map[string]*Series)
	c.names = make(map[string]nameClaim)
}

// Uptime is the wall-clock time since the collector was created.
func (c *Collector) Uptime() time.Duration {
	return c.now().Sub(c.startedAt)
}

func (c *Collector) snapshot() []Series {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Series, 0, len(c.series))
	for _, s := range c.series {
		out = append(out, s.clone())
	}
	return out
}

func (c *Collector) helpSnapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string, len(c.help))
	for k, v := range c.help {
		out[k] = v
	}
	return out
}

// getOrCreate must be called with c.mu held.
func (c *Collector) getOrCreate(name, family string, kind Kind, labels Labels, now time.Time) (*Series, error) {
	key := seriesKey(name, labels)
	if s, ok := c.series[key]; ok {
		if s.Kind != kind {
			return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrKindMismatch, name, s.Kind, kind)
		}
		return s, nil
	}

	s := &Series{
		Name:      name,
		Family:    family,
		Kind:      kind,
		Labels:    labels.clone(),
		UpdatedAt: now,
	}
	c.series[key] = s

	return s, nil
}

// claim must be called with c.mu held. It binds every name to family and
// kind, whatever the labels, and fails without binding any of them when one
// already belongs to another family or kind.
func (c *Collector) claim(family string, kind Kind, names ...string) error {
	want := nameClaim{family: family, kind: kind}
	for _, name := range names {
		if got, ok := c.names[name]; ok && got != want {
			return fmt.Errorf("%w: %s belongs to %s %s, not %s %s",
				ErrKindMismatch, name, got.kind, got.family, kind, family)
		}
	}
	for _, name := range names {
		c.names[name] = want
	}
	return nil
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}

package circuit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/junctionbox/disjointset"
)

// Counting selects what advances the wire counter.
type Counting int

const (
	// CountMerges counts only pairs that join two circuits.
	CountMerges Counting = iota
	// CountAttempts counts every examined pair, including discarded cycles.
	CountAttempts
)

// String returns "merges" or "attempts".
func (c Counting) String() string {
	if c == CountAttempts {
		return "attempts"
	}
	return "merges"
}

// Ordering selects the candidate source.
type Ordering int

const (
	// OrderEager sorts every pair up front (candidates.Sort).
	OrderEager Ordering = iota
	// OrderLazy pops pairs from a min-heap (candidates.NewQueue).
	OrderLazy
)

// String returns "eager" or "lazy".
func (o Ordering) String() string {
	if o == OrderLazy {
		return "lazy"
	}
	return "eager"
}

// Hooks are optional observers invoked synchronously during construction.
type Hooks struct {
	OnMerge     func(Step)
	OnDiscard   func(Step)
	OnThreshold func(ThresholdCheckpoint)
	OnFinal     func(FinalCheckpoint)
}

// Options configures a Construction. Use DefaultOptions and Option helpers.
//
// Fields:
//
//	Threshold int                 — K; 0 disables the threshold checkpoint.
//	Counting  Counting            — what advances the wire counter.
//	Ordering  Ordering            — eager sort or lazy heap.
//	Tracker   disjointset.Factory — component tracker constructor.
//	Logger    *slog.Logger        — debug/info records of the run.
//	Hooks     Hooks               — step and checkpoint observers.
type Options struct {
	Threshold int
	Counting  Counting
	Ordering  Ordering
	Tracker   disjointset.Factory
	Logger    *slog.Logger
	Hooks     Hooks
}

// Option mutates Options. Constructors panic on meaningless values;
// construction itself never panics.
type Option func(*Options)

// DefaultOptions returns: no threshold, CountMerges, OrderEager,
// disjointset.ForestFactory, a logger that discards everything, no hooks.
func DefaultOptions() Options {
	return Options{
		Threshold: 0,
		Counting:  CountMerges,
		Ordering:  OrderEager,
		Tracker:   disjointset.ForestFactory,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithThreshold sets K. Panics if k < 0.
func WithThreshold(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("circuit: WithThreshold(%d)", k))
	}
	return func(o *Options) { o.Threshold = k }
}

// WithCounting selects the wire counting policy.
func WithCounting(c Counting) Option {
	if c != CountMerges && c != CountAttempts {
		panic(fmt.Sprintf("circuit: WithCounting(%d)", c))
	}
	return func(o *Options) { o.Counting = c }
}

// WithOrdering selects the candidate source.
func WithOrdering(ord Ordering) Option {
	if ord != OrderEager && ord != OrderLazy {
		panic(fmt.Sprintf("circuit: WithOrdering(%d)", ord))
	}
	return func(o *Options) { o.Ordering = ord }
}

// WithTracker sets the component tracker constructor. Panics on nil.
func WithTracker(f disjointset.Factory) Option {
	if f == nil {
		panic("circuit: WithTracker(nil)")
	}
	return func(o *Options) { o.Tracker = f }
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("circuit: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithHooks installs observers; nil callbacks are skipped.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

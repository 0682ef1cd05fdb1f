package circuit

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/junctionbox/candidates"
	"github.com/katalvlaran/junctionbox/disjointset"
	"github.com/katalvlaran/junctionbox/geom"
)

// minLargest is how many circuits the threshold checkpoint multiplies.
const minLargest = 3

// Construction is an in-progress minimum spanning tree over a point set.
// It is not safe for concurrent use.
type Construction struct {
	points  []geom.Point
	opts    Options
	log     *slog.Logger
	src     candidates.Source // nil for a single box
	tracker disjointset.Tracker

	state    State
	wires    int
	merges   int
	examined int
	tree     []candidates.Edge
	length   float64

	threshold *ThresholdCheckpoint
	final     *FinalCheckpoint
	err       error // first fatal error; the run is Failed once set
}

// New validates the input and prepares a Construction in state Running (or
// Complete for a single box, without ever building a candidate source).
//
// Steps:
//  1. Apply options over DefaultOptions.
//  2. len(points) == 0 → ErrEmptyInput.
//  3. Threshold K > 0 needs at least three circuits when it fires:
//     n < 3, or K > n−3 under CountMerges → ErrThreshold.
//  4. One tracker slot per point.
//  5. n == 1 → Complete. Otherwise build the eager or lazy candidate source;
//     a non-finite distance surfaces here as candidates.ErrIncomparable.
//
// Complexity: dominated by step 5, O(n² log n) eager or O(n²) lazy.
func New(points []geom.Point, opts ...Option) (*Construction, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Nothing to wire.
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// 3. Threshold reachability.
	if k := o.Threshold; k > 0 {
		if n < minLargest || (o.Counting == CountMerges && k > n-minLargest) {
			return nil, fmt.Errorf("threshold %d (%s) with %d boxes: %w", k, o.Counting, n, ErrThreshold)
		}
	}

	// 4. Singletons, one per box.
	c := &Construction{
		points:  points,
		opts:    o,
		log:     o.Logger,
		tracker: o.Tracker(n),
		state:   Running,
		tree:    make([]candidates.Edge, 0, n-1),
	}

	// 5. A single box is already one circuit.
	if n == 1 {
		c.state = Complete
		c.log.Debug("single junction box, nothing to wire")
		return c, nil
	}

	var err error
	switch o.Ordering {
	case OrderLazy:
		c.src, err = candidates.NewQueue(points)
	default:
		c.src, err = candidates.Sort(points)
	}
	if err != nil {
		return nil, err
	}
	c.log.Debug("candidates ordered",
		slog.Int("boxes", n),
		slog.Int("pairs", c.src.Len()),
		slog.String("ordering", o.Ordering.String()),
		slog.String("counting", o.Counting.String()),
		slog.Int("threshold", o.Threshold))

	return c, nil
}

// State reports Running or Complete.
func (c *Construction) State() State { return c.state }

// Wires is the current wire counter under the configured Counting.
func (c *Construction) Wires() int { return c.wires }

// Components is the current number of circuits.
func (c *Construction) Components() int { return c.tracker.Count() }

// Circuits lists the current circuits as point indices, largest first.
func (c *Construction) Circuits() [][]int { return c.tracker.Sets() }

// Step examines the next shortest candidate.
//
// The first error moves the construction to Failed; every later Step and Run
// returns that same error.
//
// Steps:
//  1. Pop the next edge; none left while Running → ErrExhausted.
//  2. Find both endpoints; equal representatives → discard (cycle).
//  3. Otherwise merge, append to the tree and accumulate its length.
//  4. Advance the wire counter (merges only, or every attempt).
//  5. Threshold checkpoint when the counter has just become K.
//  6. Final checkpoint when one circuit remains → Complete.
//
// Errors: ErrFinished, ErrExhausted, ErrTooFewComponents, disjointset.ErrUnknownElement.
func (c *Construction) Step() (Step, error) {
	if c.err != nil {
		return Step{}, c.err
	}
	if c.state == Complete {
		return Step{}, ErrFinished
	}
	st, err := c.step()
	if err != nil {
		return Step{}, c.fail(err)
	}
	return st, nil
}

// Err returns the error that failed the construction, or nil.
func (c *Construction) Err() error { return c.err }

func (c *Construction) fail(err error) error {
	c.err = err
	c.state = Failed
	c.log.Error("construction failed",
		slog.Any("err", err),
		slog.Int("wires", c.wires),
		slog.Int("examined", c.examined))
	return err
}

func (c *Construction) step() (Step, error) {
	// 1. Next shortest pair.
	e, ok := c.src.Next()
	if !ok {
		return Step{}, fmt.Errorf("%d circuits left after %d candidates: %w",
			c.tracker.Count(), c.examined, ErrExhausted)
	}
	c.examined++

	// 2. Circuit membership.
	ra, err := c.tracker.Find(e.I)
	if err != nil {
		return Step{}, err
	}
	rb, err := c.tracker.Find(e.J)
	if err != nil {
		return Step{}, err
	}

	// 3. Merge distinct circuits.
	merged := false
	if ra != rb {
		if merged, err = c.tracker.Merge(ra, rb); err != nil {
			return Step{}, err
		}
	}
	if merged {
		c.merges++
		c.tree = append(c.tree, e)
		c.length += e.Dist
	}

	// 4. Wire counter.
	counted := merged || c.opts.Counting == CountAttempts
	if counted {
		c.wires++
	}

	st := Step{
		Edge:       e,
		Merged:     merged,
		Wires:      c.wires,
		Examined:   c.examined,
		Components: c.tracker.Count(),
	}
	if merged {
		c.log.Debug("wire laid",
			slog.Int("i", e.I), slog.Int("j", e.J),
			slog.Float64("dist", e.Dist),
			slog.Int("wires", st.Wires),
			slog.Int("circuits", st.Components))
		if c.opts.Hooks.OnMerge != nil {
			c.opts.Hooks.OnMerge(st)
		}
	} else if c.opts.Hooks.OnDiscard != nil {
		c.opts.Hooks.OnDiscard(st)
	}

	// 5. Threshold checkpoint, at most once.
	if counted && c.threshold == nil && c.opts.Threshold > 0 && c.wires == c.opts.Threshold {
		if err := c.captureThreshold(); err != nil {
			return Step{}, err
		}
	}

	// 6. Final checkpoint.
	if merged && st.Components == 1 {
		c.captureFinal(e)
	}

	return st, nil
}

func (c *Construction) captureThreshold() error {
	sizes := c.tracker.Sizes()
	if len(sizes) < minLargest {
		return fmt.Errorf("%d circuits after %d wires: %w", len(sizes), c.wires, ErrTooFewComponents)
	}

	cp := ThresholdCheckpoint{
		Wires:      c.wires,
		Components: len(sizes),
		Product:    1,
	}
	for k := 0; k < minLargest; k++ {
		cp.Sizes[k] = sizes[k]
		cp.Product *= sizes[k]
	}
	c.threshold = &cp

	c.log.Info("threshold checkpoint",
		slog.Int("wires", cp.Wires),
		slog.Any("largest", cp.Sizes),
		slog.Int("product", cp.Product))
	if c.opts.Hooks.OnThreshold != nil {
		c.opts.Hooks.OnThreshold(cp)
	}
	return nil
}

func (c *Construction) captureFinal(e candidates.Edge) {
	a, b := c.points[e.I], c.points[e.J]
	cp := FinalCheckpoint{
		Edge:     e,
		A:        a,
		B:        b,
		XProduct: saturateInt64(a.X * b.X),
	}
	c.final = &cp
	c.state = Complete

	c.log.Info("final checkpoint",
		slog.String("a", a.String()),
		slog.String("b", b.String()),
		slog.Int64("x_product", cp.XProduct),
		slog.Int("merges", c.merges),
		slog.Int("examined", c.examined))
	if c.opts.Hooks.OnFinal != nil {
		c.opts.Hooks.OnFinal(cp)
	}
}

// saturateInt64 truncates f toward zero, clamping to the int64 range.
// NaN maps to 0.
func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Run steps until Complete and returns the Result.
//
// Errors: any Step error, or ErrCheckpointMissed when a threshold was set
// but the counter never reached it. Both leave the construction Failed.
func (c *Construction) Run() (*Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	for c.state == Running {
		if _, err := c.Step(); err != nil {
			return nil, err
		}
	}
	if c.opts.Threshold > 0 && c.threshold == nil {
		return nil, c.fail(fmt.Errorf("threshold %d, %d wires at completion: %w",
			c.opts.Threshold, c.wires, ErrCheckpointMissed))
	}
	return c.Result(), nil
}

// Result snapshots the current state. Checkpoints not yet reached are nil.
// After a failure the snapshot has State Failed and must not be read as an
// answer.
func (c *Construction) Result() *Result {
	r := &Result{
		Points:     c.points,
		State:      c.state,
		Tree:       append([]candidates.Edge(nil), c.tree...),
		Length:     c.length,
		Wires:      c.wires,
		Merges:     c.merges,
		Examined:   c.examined,
		Components: c.tracker.Count(),
	}
	if c.threshold != nil {
		cp := *c.threshold
		r.Threshold = &cp
	}
	if c.final != nil {
		cp := *c.final
		r.Final = &cp
	}
	return r
}

// Build is New followed by Run.
func Build(points []geom.Point, opts ...Option) (*Result, error) {
	c, err := New(points, opts...)
	if err != nil {
		return nil, err
	}
	return c.Run()
}

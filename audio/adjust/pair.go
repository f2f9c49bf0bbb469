package adjust

import (
	"math"
	"sync"
	"sync/atomic"
)

// Pair is a frequency/tempo adjustment published as one record.
type Pair struct {
	Frequency float64
	Tempo     float64
}

// Identity is the pair that leaves playback unchanged.
var Identity = Pair{Frequency: 1, Tempo: 1}

// Rate returns the effective playback speed, Frequency*Tempo.
func (p Pair) Rate() float64 { return p.Frequency * p.Tempo }

func (p Pair) sameBits(q Pair) bool {
	return math.Float64bits(p.Frequency) == math.Float64bits(q.Frequency) &&
		math.Float64bits(p.Tempo) == math.Float64bits(q.Tempo)
}

// PairCell publishes a Pair atomically. A reader never observes the
// frequency of one Store paired with the tempo of another.
type PairCell struct {
	current atomic.Pointer[Pair]

	writeMu   sync.Mutex
	listeners listeners[Pair]
}

// NewPairCell returns a cell holding p.
func NewPairCell(p Pair) *PairCell {
	c := &PairCell{}
	c.current.Store(&p)
	return c
}

// Load returns the most recently stored pair, or Identity if none.
func (c *PairCell) Load() Pair {
	if p := c.current.Load(); p != nil {
		return *p
	}
	return Identity
}

// Store publishes p, then notifies every subscriber in registration
// order before returning. Storing the pair already held is a no-op.
// Concurrent Stores are serialized, so notifications arrive in
// publication order. Subscribers must not call Store on the same cell.
func (c *PairCell) Store(p Pair) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if cur := c.current.Load(); cur != nil && cur.sameBits(p) {
		return
	}
	c.current.Store(&p)
	c.listeners.notify(p)
}

// Subscribe registers fn for every future Store.
func (c *PairCell) Subscribe(fn func(Pair)) (cancel func()) {
	return c.listeners.add(fn)
}

// Subscribers returns the number of registered callbacks.
func (c *PairCell) Subscribers() int {
	return c.listeners.len()
}

// Frequency returns a live Source reading the frequency half of the cell.
func (c *PairCell) Frequency() Source { return cellSource{cell: c, prop: Frequency} }

// Tempo returns a live Source reading the tempo half of the cell.
func (c *PairCell) Tempo() Source { return cellSource{cell: c, prop: Tempo} }

// Linked is implemented by sources backed by a PairCell, letting an
// aggregator read both halves from one snapshot.
type Linked interface {
	Source
	Cell() *PairCell
	Property() Property
}

type cellSource struct {
	cell *PairCell
	prop Property
}

var (
	_ Linked     = cellSource{}
	_ Observable = cellSource{}
)

func (s cellSource) Value() float64 {
	return s.pick(s.cell.Load())
}

func (s cellSource) Cell() *PairCell { return s.cell }

func (s cellSource) Property() Property { return s.prop }

func (s cellSource) Subscribe(fn func(float64)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return s.cell.Subscribe(func(p Pair) { fn(s.pick(p)) })
}

func (s cellSource) pick(p Pair) float64 {
	if s.prop == Tempo {
		return p.Tempo
	}
	return p.Frequency
}

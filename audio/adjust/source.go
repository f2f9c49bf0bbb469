package adjust

import (
	"math"
	"sync"
	"sync/atomic"
)

// Source supplies the current value of one adjustment.
type Source interface {
	Value() float64
}

// Observable is a Source that reports changes. Subscribe returns a
// function that removes the subscription.
type Observable interface {
	Source
	Subscribe(fn func(float64)) (cancel func())
}

// Constant is a Source that never changes.
type Constant float64

// Value returns c.
func (c Constant) Value() float64 { return float64(c) }

// Bindable is an observable number safe for concurrent use.
// Reads are lock-free; writes are serialized and notify subscribers
// synchronously before Set returns. Writing the value already held is
// a no-op and notifies nobody.
type Bindable struct {
	bits atomic.Uint64

	writeMu   sync.Mutex
	listeners listeners[float64]
}

var _ Observable = (*Bindable)(nil)

// NewBindable returns a Bindable holding v.
func NewBindable(v float64) *Bindable {
	b := &Bindable{}
	b.bits.Store(math.Float64bits(v))
	return b
}

// Value returns the current value.
func (b *Bindable) Value() float64 {
	return math.Float64frombits(b.bits.Load())
}

// Set stores v and notifies subscribers when it differs from the current value.
// Subscribers must not call Set on the same Bindable.
func (b *Bindable) Set(v float64) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	bits := math.Float64bits(v)
	if b.bits.Load() == bits {
		return
	}
	b.bits.Store(bits)
	b.listeners.notify(v)
}

// Subscribe registers fn for future changes.
func (b *Bindable) Subscribe(fn func(float64)) (cancel func()) {
	return b.listeners.add(fn)
}

// BindValueChanged registers fn and, when runOnceImmediately is set,
// calls it with the current value before returning.
func (b *Bindable) BindValueChanged(fn func(float64), runOnceImmediately bool) (cancel func()) {
	cancel = b.Subscribe(fn)
	if runOnceImmediately && fn != nil {
		fn(b.Value())
	}
	return cancel
}

package adjust

import (
	"sync"

	"github.com/cwbudde/algo-mods/dsp/core"
)

// Adjustable is the capability a playback sink offers to mods: accept
// named real-valued adjustments that update live.
type Adjustable interface {
	AddAdjustment(p Property, s Source)
	RemoveAdjustment(p Property, s Source)
}

type binding struct {
	src    Source
	cancel func()
}

// Adjustments is the reference Adjustable. It keeps every registered
// source and aggregates them on demand: Volume, Frequency and Tempo
// multiply, Balance adds and is clamped to [-1, 1].
//
// The zero value is ready to use.
type Adjustments struct {
	mu       sync.RWMutex
	bindings map[Property][]binding

	changed listeners[Property]
}

var _ Adjustable = (*Adjustments)(nil)

// NewAdjustments returns an empty set of adjustments.
func NewAdjustments() *Adjustments {
	return &Adjustments{}
}

// AddAdjustment registers s for p. Sources are compared with ==, so
// registering the same source twice for the same property is a no-op. Observable sources are followed, so
// OnChange callbacks fire whenever they update.
func (a *Adjustments) AddAdjustment(p Property, s Source) {
	if s == nil {
		return
	}

	a.mu.Lock()
	for _, b := range a.bindings[p] {
		if b.src == s {
			a.mu.Unlock()
			return
		}
	}

	b := binding{src: s, cancel: func() {}}
	if obs, ok := s.(Observable); ok {
		b.cancel = obs.Subscribe(func(float64) { a.changed.notify(p) })
	}

	if a.bindings == nil {
		a.bindings = make(map[Property][]binding)
	}
	a.bindings[p] = append(a.bindings[p], b)
	a.mu.Unlock()

	a.changed.notify(p)
}

// RemoveAdjustment unregisters s from p. Unknown sources are ignored.
func (a *Adjustments) RemoveAdjustment(p Property, s Source) {
	a.mu.Lock()
	list := a.bindings[p]
	removed := false
	for i, b := range list {
		if b.src == s {
			b.cancel()
			a.bindings[p] = append(list[:i:i], list[i+1:]...)
			removed = true
			break
		}
	}
	a.mu.Unlock()

	if removed {
		a.changed.notify(p)
	}
}

// RemoveAll unregisters every source for every property.
func (a *Adjustments) RemoveAll() {
	a.mu.Lock()
	props := make([]Property, 0, len(a.bindings))
	for p, list := range a.bindings {
		for _, b := range list {
			b.cancel()
		}
		props = append(props, p)
	}
	a.bindings = nil
	a.mu.Unlock()

	for _, p := range props {
		a.changed.notify(p)
	}
}

// Count returns the number of sources registered for p.
func (a *Adjustments) Count(p Property) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.bindings[p])
}

// OnChange registers fn to run whenever a source for any property is
// added, removed or updated.
func (a *Adjustments) OnChange(fn func(Property)) (cancel func()) {
	return a.changed.add(fn)
}

// Aggregate combines the current values of every source for p.
func (a *Adjustments) Aggregate(p Property) float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	v := p.identity()
	for _, b := range a.bindings[p] {
		if p == Balance {
			v += b.src.Value()
		} else {
			v *= b.src.Value()
		}
	}

	if p == Balance {
		return core.Clamp(v, -1, 1)
	}
	return v
}

// Rates returns the aggregate frequency and tempo. Sources backed by the
// same PairCell are read from a single snapshot of that cell, so a
// concurrent Store can never split a pair.
func (a *Adjustments) Rates() Pair {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshots := make(map[*PairCell]Pair)
	read := func(b binding) float64 {
		linked, ok := b.src.(Linked)
		if !ok {
			return b.src.Value()
		}
		cell := linked.Cell()
		pair, seen := snapshots[cell]
		if !seen {
			pair = cell.Load()
			snapshots[cell] = pair
		}
		if linked.Property() == Tempo {
			return pair.Tempo
		}
		return pair.Frequency
	}

	out := Identity
	for _, b := range a.bindings[Frequency] {
		out.Frequency *= read(b)
	}
	for _, b := range a.bindings[Tempo] {
		out.Tempo *= read(b)
	}
	return out
}

// Rate returns the effective playback speed, aggregate frequency times
// aggregate tempo.
func (a *Adjustments) Rate() float64 {
	return a.Rates().Rate()
}

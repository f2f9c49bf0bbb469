package adjust

import "sync"

type listener[T any] struct {
	id uint64
	fn func(T)
}

// listeners is a registration-ordered callback list. Callbacks run
// synchronously on the notifying goroutine, outside the list lock, so a
// callback may subscribe or cancel without deadlocking.
type listeners[T any] struct {
	mu     sync.Mutex
	nextID uint64
	list   []listener[T]
}

func (l *listeners[T]) add(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.list = append(l.list, listener[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listeners[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, ln := range l.list {
		if ln.id == id {
			l.list = append(l.list[:i:i], l.list[i+1:]...)
			return
		}
	}
}

func (l *listeners[T]) notify(v T) {
	l.mu.Lock()
	snapshot := make([]listener[T], len(l.list))
	copy(snapshot, l.list)
	l.mu.Unlock()

	for _, ln := range snapshot {
		ln.fn(v)
	}
}

func (l *listeners[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.list)
}

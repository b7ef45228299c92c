package rbmap

// Op is the kind of a structural change to a map.
type Op uint8

// Structural changes reported to observers.
const (
	OpInsert Op = iota + 1 // a key has been inserted
	OpErase                // a key has been erased
	OpClear                // all keys have been removed
	OpSwap                 // the contents have been exchanged with another map
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpErase:
		return "erase"
	case OpClear:
		return "clear"
	case OpSwap:
		return "swap"
	}
	return "unknown"
}

// Change describes a structural change to a map. Key is the zero value for
// OpClear and OpSwap. Value updates are not structural changes.
type Change[K any] struct {
	Op  Op
	Key K
}

// Observer is notified after each structural change of a map, when the map is
// consistent again. Observers must not modify the map they observe.
type Observer[K any] interface {
	Notify(Change[K])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[K any] func(Change[K])

// Notify calls f(c).
func (f ObserverFunc[K]) Notify(c Change[K]) {
	f(c)
}

// SetObserver installs o as the observer of m, replacing any previous one.
// A nil observer switches notifications off.
func (m *Map[K, V]) SetObserver(o Observer[K]) {
	m.observer = o
}

func (m *Map[K, V]) notify(op Op, key K) {
	if m.observer == nil {
		return
	}
	m.observer.Notify(Change[K]{Op: op, Key: key})
}

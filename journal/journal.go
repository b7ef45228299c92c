/*
Package journal broadcasts structural changes of ordered maps to subscribers.

A Journal is installed as the observer of an rbmap.Map. Every insertion or
erasure of a key is published to all current subscribers, each receiving
the changes in the order they happened:

	j := journal.New[string](ctx)
	m.SetObserver(j)
	changes, _ := j.Subscribe(ctx, 64)
	go func() {
		for c := range changes {
			fmt.Println(c.Op, c.Key)
		}
	}()

The map itself stays single-threaded: the journal hands immutable change
records to a broadcaster running in its own goroutine. Publishing blocks
while a subscriber's buffer is full, so subscribers should either keep up or
choose a generous capacity.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package journal

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbmap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbmap'
func tracer() tracing.Trace {
	return tracing.Select("rbmap")
}

// ErrClosed is returned when subscribing to a closed journal.
var ErrClosed = errors.New("journal: closed")

// Journal publishes map changes to subscribers. It implements
// rbmap.Observer.
type Journal[K any] struct {
	cast      *caster.Caster // broadcaster for change records
	closeOnce sync.Once
}

// New creates a journal. Cancelling ctx closes the journal.
func New[K any](ctx context.Context) *Journal[K] {
	return &Journal[K]{
		cast: caster.New(ctx),
	}
}

// Notify publishes c to all subscribers. Changes published after the journal
// has been closed are dropped.
func (j *Journal[K]) Notify(c rbmap.Change[K]) {
	if !j.cast.Pub(c) {
		tracer().Debugf("journal: dropped %s change for closed journal", c.Op)
	}
}

// Subscribe returns a channel receiving all changes published from now on.
// The channel is closed when ctx is done or the journal is closed. capacity
// is the buffer size of the subscription. Subscribing to a closed journal
// fails with ErrClosed.
func (j *Journal[K]) Subscribe(ctx context.Context, capacity uint) (<-chan rbmap.Change[K], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-j.cast.Done():
		return nil, ErrClosed
	default:
	}
	ch, _ := j.cast.Sub(ctx, capacity)
	out := make(chan rbmap.Change[K], capacity)
	go forward(ctx, ch, out)
	return out, nil
}

// forward copies changes from ch to out until ch is closed or ctx is done.
// ch belongs to the caster, which closes it itself after noticing the
// cancellation; until then it is drained, so publishing never blocks on a
// cancelled subscription.
func forward[K any](ctx context.Context, ch <-chan interface{}, out chan<- rbmap.Change[K]) {
	defer drain(ch)
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			c, ok := msg.(rbmap.Change[K])
			if !ok {
				tracer().Errorf("journal: unexpected message of type %T", msg)
				continue
			}
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}
}

func drain(ch <-chan interface{}) {
	for range ch {
	}
}

// Close closes the journal and all subscriptions. Closing a closed journal is
// a no-op.
func (j *Journal[K]) Close() {
	j.closeOnce.Do(func() {
		j.cast.Close()
	})
}

// Tally counts the changes received from ch per kind of change, until ch is
// closed.
func Tally[K any](ch <-chan rbmap.Change[K]) map[rbmap.Op]int {
	counts := make(map[rbmap.Op]int)
	for c := range ch {
		counts[c.Op]++
	}
	return counts
}

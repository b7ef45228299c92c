package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/rbmap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func receive(t *testing.T, ch <-chan rbmap.Change[string], n int) []rbmap.Change[string] {
	t.Helper()
	var out []rbmap.Change[string]
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatalf("subscription closed after %d changes", len(out))
			}
			out = append(out, c)
		case <-timeout:
			t.Fatalf("timeout after %d of %d changes", len(out), n)
		}
	}
	return out
}

func TestJournalPublishesMapChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbmap")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j := New[string](ctx)
	defer j.Close()
	sub, err := j.Subscribe(ctx, 16)
	if err != nil {
		t.Fatal(err)
	}
	m := rbmap.New[string, int]()
	m.SetObserver(j)
	m.Insert("b", 1)
	m.Insert("a", 2)
	m.Insert("a", 3)
	m.Erase("b")
	m.Clear()
	changes := receive(t, sub, 4)
	want := []rbmap.Change[string]{
		{Op: rbmap.OpInsert, Key: "b"},
		{Op: rbmap.OpInsert, Key: "a"},
		{Op: rbmap.OpErase, Key: "b"},
		{Op: rbmap.OpClear},
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change #%d: expected %v, have %v", i, want[i], changes[i])
		}
	}
}

func TestEverySubscriberSeesAllChanges(t *testing.T) {
	ctx := context.Background()
	j := New[string](ctx)
	s1, _ := j.Subscribe(ctx, 8)
	s2, _ := j.Subscribe(ctx, 8)
	j.Notify(rbmap.Change[string]{Op: rbmap.OpInsert, Key: "x"})
	j.Notify(rbmap.Change[string]{Op: rbmap.OpErase, Key: "x"})
	for _, s := range []<-chan rbmap.Change[string]{s1, s2} {
		changes := receive(t, s, 2)
		if changes[0].Op != rbmap.OpInsert || changes[1].Op != rbmap.OpErase {
			t.Errorf("unexpected changes %v", changes)
		}
	}
	j.Close()
}

func TestTallyCountsUntilClose(t *testing.T) {
	ctx := context.Background()
	j := New[int](ctx)
	sub, err := j.Subscribe(ctx, 64)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan map[rbmap.Op]int)
	go func() {
		done <- Tally(sub)
	}()
	m := rbmap.New[int, int]()
	m.SetObserver(j)
	for k := range 10 {
		m.Insert(k, k)
	}
	m.Erase(3)
	m.Erase(4)
	j.Close()
	select {
	case counts := <-done:
		// changes still in flight when closing may be dropped
		if counts[rbmap.OpInsert] > 10 || counts[rbmap.OpErase] > 2 {
			t.Errorf("unexpected counts %v", counts)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("subscription not closed by Close")
	}
}

func TestSubscribeAfterCloseFails(t *testing.T) {
	j := New[string](context.Background())
	j.Close()
	if _, err := j.Subscribe(context.Background(), 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, have %v", err)
	}
	// must not block or panic
	j.Notify(rbmap.Change[string]{Op: rbmap.OpInsert, Key: "late"})
}

func TestCancelledSubscriptionIsClosed(t *testing.T) {
	j := New[string](context.Background())
	defer j.Close()
	ctx, cancel := context.WithCancel(context.Background())
	sub, err := j.Subscribe(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-sub:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("subscription not closed after cancel")
		}
	}
}

func TestCancelWhilePublishing(t *testing.T) {
	j := New[int](context.Background())
	defer j.Close()
	for i := range 50 {
		ctx, cancel := context.WithCancel(context.Background())
		sub, err := j.Subscribe(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		j.Notify(rbmap.Change[int]{Op: rbmap.OpInsert, Key: i})
		j.Notify(rbmap.Change[int]{Op: rbmap.OpInsert, Key: i})
		cancel()
		j.Notify(rbmap.Change[int]{Op: rbmap.OpErase, Key: i})
		j.Notify(rbmap.Change[int]{Op: rbmap.OpErase, Key: i})
		timeout := time.After(5 * time.Second)
	wait:
		for {
			select {
			case _, ok := <-sub:
				if !ok {
					break wait
				}
			case <-timeout:
				t.Fatalf("round %d: subscription not closed after cancel", i)
			}
		}
	}
	// publishing to the remaining (cancelled) subscriptions must not block
	done := make(chan struct{})
	go func() {
		for k := range 100 {
			j.Notify(rbmap.Change[int]{Op: rbmap.OpInsert, Key: k})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("publishing blocked after cancelled subscriptions")
	}
}

package observe

import "sync"

// Publisher is anything a Tracker can subscribe to. *Subject and every struct pointer
// embedding Subject implement it.
type Publisher interface {
	Subscribe(fn func()) Subscription
}

// Tracker stands in for a render pass: objects read while rendering are tracked, and a
// change to any of them schedules a refresh.
//
// Objects are tracked by identity, so tracking the same pointer twice subscribes once.
type Tracker struct {
	mu        sync.Mutex
	subs      map[Publisher]Subscription
	refreshes int
	onRefresh func()
}

// NewTracker returns a tracker calling onRefresh (which may be nil) after each change
// of a tracked object.
func NewTracker(onRefresh func()) *Tracker {
	return &Tracker{subs: make(map[Publisher]Subscription), onRefresh: onRefresh}
}

// Track subscribes to p unless it is already tracked, and returns p.
func Track[P Publisher](t *Tracker, p P) P {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.subs[p]; !ok {
		t.subs[p] = p.Subscribe(t.refresh)
	}
	return p
}

func (t *Tracker) refresh() {
	t.mu.Lock()
	t.refreshes++
	fn := t.onRefresh
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Refreshes returns how many change notifications the tracker received.
func (t *Tracker) Refreshes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refreshes
}

// Tracked returns the number of distinct objects being tracked.
func (t *Tracker) Tracked() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Stop cancels every subscription.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for p, sub := range t.subs {
		sub.Cancel()
		delete(t.subs, p)
	}
}

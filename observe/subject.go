// Package observe is a minimal change-notification mechanism for objects handed out by
// the di package. Embed Subject in a struct and its pointer satisfies di.Observable.
//
//	type Settings struct {
//		observe.Subject
//		Theme string
//	}
//
// Notifications are synchronous and carry no payload; subscribers re-read whatever
// they care about.
package observe

import (
	"sync"

	"github.com/google/uuid"
)

// Subject keeps a set of subscribers and calls them on ObjectChanged.
// The zero value is ready to use. A Subject must not be copied after first use.
type Subject struct {
	mu   sync.Mutex
	subs map[uuid.UUID]func()
}

// Subscription identifies one Subscribe call.
type Subscription struct {
	ID uuid.UUID
	s  *Subject
}

// Subscribe registers fn to run after every change.
func (s *Subject) Subscribe(fn func()) Subscription {
	id := uuid.New()
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[uuid.UUID]func())
	}
	s.subs[id] = fn
	s.mu.Unlock()
	return Subscription{ID: id, s: s}
}

// Cancel removes the subscription. Cancelling twice is a no-op.
func (sub Subscription) Cancel() {
	if sub.s == nil {
		return
	}
	sub.s.mu.Lock()
	delete(sub.s.subs, sub.ID)
	sub.s.mu.Unlock()
}

// Subscribers returns the number of live subscriptions.
func (s *Subject) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// ObjectChanged notifies every subscriber. Subscribers run outside the lock and may
// subscribe or cancel.
func (s *Subject) ObjectChanged() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/envdi/observe"
)

type document struct {
	observe.Subject
	Title string
}

//
// -----------------------------------------------------------------------------
// Subject
// -----------------------------------------------------------------------------

// TestSubject_ZeroValueNotifiesNobody verifies ObjectChanged is safe with no subscribers.
func TestSubject_ZeroValueNotifiesNobody(t *testing.T) {
	t.Parallel()

	var s observe.Subject
	assert.NotPanics(t, s.ObjectChanged)
	assert.Equal(t, 0, s.Subscribers())
}

// TestSubject_SubscribeAndCancel verifies notifications reach live subscribers only.
func TestSubject_SubscribeAndCancel(t *testing.T) {
	t.Parallel()

	doc := &document{}
	var a, b int
	subA := doc.Subscribe(func() { a++ })
	subB := doc.Subscribe(func() { b++ })
	require.NotEqual(t, subA.ID, subB.ID)
	assert.Equal(t, 2, doc.Subscribers())

	doc.ObjectChanged()
	subA.Cancel()
	subA.Cancel()
	doc.ObjectChanged()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, doc.Subscribers())
}

// TestSubject_SubscriberMayCancelItself verifies callbacks run outside the lock.
func TestSubject_SubscriberMayCancelItself(t *testing.T) {
	t.Parallel()

	doc := &document{}
	calls := 0
	var sub observe.Subscription
	sub = doc.Subscribe(func() {
		calls++
		sub.Cancel()
	})

	doc.ObjectChanged()
	doc.ObjectChanged()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, doc.Subscribers())
}

// TestSubscription_ZeroValueCancel verifies the zero Subscription is inert.
func TestSubscription_ZeroValueCancel(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, observe.Subscription{}.Cancel)
}

//
// -----------------------------------------------------------------------------
// Tracker
// -----------------------------------------------------------------------------

// TestTracker_TracksByIdentity verifies repeated tracking subscribes once per object.
func TestTracker_TracksByIdentity(t *testing.T) {
	t.Parallel()

	refreshed := 0
	tr := observe.NewTracker(func() { refreshed++ })

	doc := &document{Title: "a"}
	other := &document{Title: "b"}

	assert.Same(t, doc, observe.Track(tr, doc))
	observe.Track(tr, doc)
	observe.Track(tr, other)
	assert.Equal(t, 2, tr.Tracked())
	assert.Equal(t, 1, doc.Subscribers())

	doc.ObjectChanged()
	other.ObjectChanged()
	assert.Equal(t, 2, refreshed)
	assert.Equal(t, 2, tr.Refreshes())
}

// TestTracker_Stop verifies Stop cancels every subscription.
func TestTracker_Stop(t *testing.T) {
	t.Parallel()

	tr := observe.NewTracker(nil)
	doc := observe.Track(tr, &document{})

	doc.ObjectChanged()
	tr.Stop()
	doc.ObjectChanged()

	assert.Equal(t, 1, tr.Refreshes())
	assert.Equal(t, 0, tr.Tracked())
	assert.Equal(t, 0, doc.Subscribers())
}

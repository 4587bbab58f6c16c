package broadcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub[int](Capacity)
	a := hub.Subscribe(nil)
	b := hub.Subscribe(nil)
	defer a.Unsubscribe()
	defer b.Unsubscribe()

	hub.Publish(42)

	assert.Equal(t, 42, <-a.C)
	assert.Equal(t, 42, <-b.C)
}

func TestHub_LateJoinerMissesEarlierPublishes(t *testing.T) {
	hub := NewHub[int](Capacity)
	hub.Publish(1)

	sub := hub.Subscribe(nil)
	defer sub.Unsubscribe()

	select {
	case v := <-sub.C:
		t.Fatalf("expected no replay, got %d", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHub_SlowSubscriberLagsWithoutBlockingOthers(t *testing.T) {
	hub := NewHub[int](Capacity)

	var lagCalls int
	slow := hub.Subscribe(func() { lagCalls++ })
	defer slow.Unsubscribe()
	fast := hub.Subscribe(nil)
	defer fast.Unsubscribe()

	for i := 0; i < Capacity+5; i++ {
		hub.Publish(i)
	}

	require.Greater(t, slow.Lagged(), int64(0))
	assert.Equal(t, int(slow.Lagged()), lagCalls)

	// The fast subscriber's channel should be full, holding the most recent
	// Capacity values, and publishing never blocked on the slow one.
	assert.Len(t, fast.C, Capacity)
}

func TestHub_SlowSubscriberSkipsForwardToNewestValue(t *testing.T) {
	hub := NewHub[int](2)

	sub := hub.Subscribe(nil)
	defer sub.Unsubscribe()

	for i := 1; i <= 5; i++ {
		hub.Publish(i)
	}

	// Capacity is 2 and nothing has been read yet, so the channel should
	// hold the two most recent values, not the two oldest.
	require.Greater(t, sub.Lagged(), int64(0))
	assert.Equal(t, 4, <-sub.C)
	assert.Equal(t, 5, <-sub.C)
}

func TestHub_UnsubscribeIsIdempotentAndClosesChannel(t *testing.T) {
	hub := NewHub[int](Capacity)
	sub := hub.Subscribe(nil)

	sub.Unsubscribe()
	sub.Unsubscribe()

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, hub.Count())
}

func TestHub_CountTracksActiveSubscribers(t *testing.T) {
	hub := NewHub[int](Capacity)
	assert.Equal(t, 0, hub.Count())

	a := hub.Subscribe(nil)
	assert.Equal(t, 1, hub.Count())

	b := hub.Subscribe(nil)
	assert.Equal(t, 2, hub.Count())

	a.Unsubscribe()
	assert.Equal(t, 1, hub.Count())

	b.Unsubscribe()
	assert.Equal(t, 0, hub.Count())
}

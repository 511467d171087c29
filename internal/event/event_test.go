package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, WaveStarted)
	d.Subscribe(b, WaveStarted, GameOver)

	d.Dispatch(Event{Type: WaveStarted, Tick: 3, Data: 2})
	d.Dispatch(Event{Type: BossSpawned})

	want := []Event{{Type: WaveStarted, Tick: 3, Data: 2}}
	assert.Equal(t, want, a.got)
	assert.Equal(t, want, b.got)
	assert.Equal(t, 2, d.Count(WaveStarted))
	assert.Equal(t, 1, d.Count(GameOver))
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, PlayerHit, LaserFired)
	d.Subscribe(b, PlayerHit)
	d.Unsubscribe(a)

	d.Dispatch(Event{Type: PlayerHit, Data: 4})
	d.Dispatch(Event{Type: LaserFired})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 0, d.Count(LaserFired))
}

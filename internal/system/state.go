// internal/system/state.go
package system

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// StateSystem фиксирует конец партии. Поражение проверяется последним
// и перекрывает победу, полученную на том же кадре.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update() {
	if s.world.Player.Health.Dead() {
		s.world.Phase = component.Lost
	}
	if s.world.Phase.Terminal() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Tick: s.world.Tick, Data: s.world.Phase})
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.world.Phase
}

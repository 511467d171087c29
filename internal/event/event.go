// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Data зависит от типа (см. types.go).
type Event struct {
	Type EventType
	Tick uint64 // кадр, на котором произошло событие
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Dispatch вызывает подписчиков
// в порядке подписки в той же горутине, что и игровой цикл.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на перечисленные типы событий.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe снимает listener со всех типов. Listener должен быть сравнимым
// (указатель на структуру), иначе сравнение интерфейсов паникует.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for t, ls := range d.listeners {
		kept := ls[:0]
		for _, l := range ls {
			if l != listener {
				kept = append(kept, l)
			}
		}
		d.listeners[t] = kept
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Count возвращает число подписчиков на тип события.
func (d *Dispatcher) Count(t EventType) int {
	return len(d.listeners[t])
}

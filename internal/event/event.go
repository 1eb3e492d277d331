// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события. Game — имя мини-игры, которая его отправила.
type Event struct {
	Type EventType
	Game string
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

// OnEvent вызывает саму функцию
func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher — диспетчер событий. Вызывается только из потока кадров,
// поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает функцию отписки.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.unsubscribe(eventType, id) }
}

// SubscribeAll — подписка сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

func (d *Dispatcher) unsubscribe(eventType EventType, id int) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер молча ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}

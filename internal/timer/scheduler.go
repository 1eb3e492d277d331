// Package timer заменяет колбэки setTimeout записями об отложенных событиях,
// которые проверяются каждый кадр по симулированным часам партии.
package timer

import "sort"

// Kind — тип отложенного события
type Kind string

const (
	ShakeEnd   Kind = "shake_end"   // конец тряски экрана
	BannerEnd  Kind = "banner_end"  // убрать баннер «Поехали!»
	ComboDecay Kind = "combo_decay" // комбо сгорает без новых поимок
)

// Handle — идентификатор записи для отмены
type Handle uint64

// Event — отложенное событие
type Event struct {
	Handle  Handle
	Kind    Kind
	At      float64 // момент срабатывания по часам партии
	Payload interface{}
}

// Scheduler хранит записи отсортированными по времени, при равенстве — по порядку добавления.
type Scheduler struct {
	next    Handle
	pending []Event
}

// NewScheduler создает пустой планировщик
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After планирует событие kind через delay секунд от now
func (s *Scheduler) After(now, delay float64, kind Kind, payload interface{}) Handle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	ev := Event{Handle: s.next, Kind: kind, At: now + delay, Payload: payload}
	i := sort.Search(len(s.pending), func(i int) bool { return s.pending[i].At > ev.At })
	s.pending = append(s.pending, Event{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = ev
	return ev.Handle
}

// Due извлекает все события с At <= now в порядке срабатывания
func (s *Scheduler) Due(now float64) []Event {
	n := 0
	for n < len(s.pending) && s.pending[n].At <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	copy(due, s.pending[:n])
	s.pending = append(s.pending[:0], s.pending[n:]...)
	return due
}

// Cancel отменяет запись. Повторная отмена безопасна.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, ev := range s.pending {
		if ev.Handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelKind отменяет все записи данного типа
func (s *Scheduler) CancelKind(kind Kind) int {
	kept := s.pending[:0]
	removed := 0
	for _, ev := range s.pending {
		if ev.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	s.pending = kept
	return removed
}

// Active — есть ли еще не сработавшая запись этого типа
func (s *Scheduler) Active(kind Kind, now float64) bool {
	_, ok := s.Remaining(kind, now)
	return ok
}

// Remaining — сколько секунд осталось до ближайшей записи этого типа
func (s *Scheduler) Remaining(kind Kind, now float64) (float64, bool) {
	for _, ev := range s.pending {
		if ev.Kind == kind && ev.At > now {
			return ev.At - now, true
		}
	}
	return 0, false
}

// Clear отменяет всё
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}

// Len — число ожидающих записей
func (s *Scheduler) Len() int {
	return len(s.pending)
}

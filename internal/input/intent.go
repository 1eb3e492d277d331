// Package input превращает события клавиатуры и указателя в снимок намерений,
// который конвейер кадра читает один раз за кадр.
package input

// Intent — битовый флаг намерения
type Intent uint16

const (
	MoveLeft Intent = 1 << iota
	MoveRight
	Jump
	PauseToggle
	Reset
	Start
	Pointer // нажатие мыши/касание, координаты в PointerX/PointerY
	Back    // выход в меню
)

// Intents — снимок намерений за один кадр
type Intents struct {
	Flags    Intent
	PointerX float64
	PointerY float64
}

// Has проверяет флаг
func (i Intents) Has(f Intent) bool {
	return i.Flags&f != 0
}

// Set выставляет флаг
func (i *Intents) Set(f Intent) {
	i.Flags |= f
}

// Clear снимает флаг
func (i *Intents) Clear(f Intent) {
	i.Flags &^= f
}

// Press возвращает снимок с указателем в точке (x, y)
func Press(x, y float64) Intents {
	return Intents{Flags: Pointer, PointerX: x, PointerY: y}
}

// Source — источник намерений, опрашивается раз в кадр
type Source interface {
	Sample() Intents
}

// Script — заранее заданная последовательность снимков (тесты, реплеи).
// После конца последовательности возвращает пустые снимки.
type Script struct {
	Frames []Intents
	pos    int
}

// NewScript создает сценарий из снимков
func NewScript(frames ...Intents) *Script {
	return &Script{Frames: frames}
}

// Sample возвращает следующий снимок
func (s *Script) Sample() Intents {
	if s.pos >= len(s.Frames) {
		return Intents{}
	}
	in := s.Frames[s.pos]
	s.pos++
	return in
}

// Done — сценарий исчерпан
func (s *Script) Done() bool {
	return s.pos >= len(s.Frames)
}

package input

import (
	"github.com/gdamore/tcell/v2"
)

// holdFrames — сколько кадров держится движение после нажатия стрелки.
// Терминал не присылает отпускание клавиш, только автоповтор.
const holdFrames = 6

// TerminalSource складывает события tcell в снимок намерений.
// Push вызывается из горутины опроса терминала через канал, Sample — из цикла кадров.
type TerminalSource struct {
	events    chan tcell.Event
	leftHold  int
	rightHold int
	cellW     float64 // пикселей на ячейку по X, для пересчета мыши
	cellH     float64
	mouseDown bool
}

// NewTerminalSource создает источник. cellW/cellH — масштаб ячейки в пикселях поля.
func NewTerminalSource(cellW, cellH float64) *TerminalSource {
	return &TerminalSource{
		events: make(chan tcell.Event, 100),
		cellW:  cellW,
		cellH:  cellH,
	}
}

// SetCellSize меняет масштаб ячейки после изменения размера терминала
func (s *TerminalSource) SetCellSize(cellW, cellH float64) {
	s.cellW, s.cellH = cellW, cellH
}

// Push передает событие терминала. Не блокирует: при переполнении событие теряется.
func (s *TerminalSource) Push(ev tcell.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// Sample забирает накопленные события и возвращает снимок
func (s *TerminalSource) Sample() Intents {
	var in Intents
	for {
		select {
		case ev := <-s.events:
			s.apply(ev, &in)
			continue
		default:
		}
		break
	}

	if s.leftHold > 0 {
		in.Set(MoveLeft)
		s.leftHold--
	}
	if s.rightHold > 0 {
		in.Set(MoveRight)
		s.rightHold--
	}
	return in
}

func (s *TerminalSource) apply(ev tcell.Event, in *Intents) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			s.leftHold, s.rightHold = holdFrames, 0
		case tcell.KeyRight:
			s.rightHold, s.leftHold = holdFrames, 0
		case tcell.KeyUp:
			in.Set(Jump)
		case tcell.KeyEnter:
			in.Set(Start)
		case tcell.KeyEscape:
			in.Set(Back)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'A':
				s.leftHold, s.rightHold = holdFrames, 0
			case 'd', 'D':
				s.rightHold, s.leftHold = holdFrames, 0
			case ' ', 'w', 'W':
				in.Set(Jump)
			case 'p', 'P':
				in.Set(PauseToggle)
			case 'r', 'R':
				in.Set(Reset)
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !s.mouseDown {
			x, y := ev.Position()
			in.Set(Pointer)
			in.PointerX = (float64(x) + 0.5) * s.cellW
			in.PointerY = (float64(y) + 0.5) * s.cellH
		}
		s.mouseDown = down
	}
}

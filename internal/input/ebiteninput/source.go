// Package ebiteninput — источник намерений для окна ebiten.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-honey-arcade/internal/input"
)

// Source читает клавиатуру, мышь и касания через ebiten.
// Движение — по удержанию, остальное — по нажатию.
type Source struct {
	touchIDs []ebiten.TouchID
}

// New создает источник для окна ebiten
func New() *Source {
	return &Source{}
}

// Sample опрашивает состояние ввода текущего тика
func (s *Source) Sample() input.Intents {
	var in input.Intents
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(input.MoveLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(input.MoveRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.Set(input.Jump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(input.PauseToggle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(input.Back)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(input.Reset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(input.Start)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Set(input.Pointer)
		in.PointerX, in.PointerY = float64(x), float64(y)
	}
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		in.Set(input.Pointer)
		in.PointerX, in.PointerY = float64(x), float64(y)
	}
	return in
}

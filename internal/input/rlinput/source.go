// Package rlinput — источник намерений для окна raylib.
package rlinput

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-honey-arcade/internal/input"
)

// Source читает клавиатуру и мышь через raylib
type Source struct{}

// New создает источник
func New() *Source {
	return &Source{}
}

// Sample опрашивает ввод. Движение — по удержанию, остальное — по нажатию.
func (s *Source) Sample() input.Intents {
	var in input.Intents
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		in.Set(input.MoveLeft)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		in.Set(input.MoveRight)
	}
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeyUp) {
		in.Set(input.Jump)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		in.Set(input.PauseToggle)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		in.Set(input.Back)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		in.Set(input.Reset)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		in.Set(input.Start)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		in.Set(input.Pointer)
		in.PointerX, in.PointerY = float64(pos.X), float64(pos.Y)
	}
	return in
}

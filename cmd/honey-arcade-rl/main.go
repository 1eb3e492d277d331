// cmd/honey-arcade-rl/main.go
package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input/rlinput"
	"go-honey-arcade/internal/session"
	"go-honey-arcade/pkg/render/rlsurface"
)

func main() {
	flags := session.RegisterFlags(flag.CommandLine)
	flag.Parse()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Медовая аркада")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)
	rl.SetExitKey(rl.KeyNull)

	surface := rlsurface.New(config.ScreenWidth, config.ScreenHeight)
	defer surface.Close()

	s, err := session.Open(flags, surface)
	if err != nil {
		log.Printf("Failed to start: %v", err)
		return
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("Failed to close session: %v", err)
		}
	}()

	source := rlinput.New()
	lastUpdateTime := time.Now()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() && !s.Done() {
		now := time.Now()
		deltaTime := app.ClampDelta(now.Sub(lastUpdateTime).Seconds())
		lastUpdateTime = now

		s.Step(source.Sample(), deltaTime)

		rl.BeginDrawing()
		s.Draw(surface)
		rl.EndDrawing()
	}
}

// cmd/honey-term/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/session"
	"go-honey-arcade/pkg/render/termsurface"
)

func main() {
	flags := session.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "honey-term.log", "log file; the terminal itself is the screen")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	surface := termsurface.New(screen, config.ScreenWidth, config.ScreenHeight)
	s, err := session.Open(flags, surface)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("Failed to close session: %v", err)
		}
	}()

	source := input.NewTerminalSource(surface.CellSize())
	driver := app.NewDriver(config.TargetFPS)
	resized := make(chan struct{}, 1)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					driver.Stop()
					return
				}
			case *tcell.EventResize:
				select {
				case resized <- struct{}{}:
				default:
				}
				continue
			}
			source.Push(ev)
		}
	}()

	err = driver.Run(context.Background(), func(dt float64) {
		select {
		case <-resized:
			screen.Sync()
			surface.Resize()
			source.SetCellSize(surface.CellSize())
		default:
		}
		s.Step(source.Sample(), dt)
		if s.Done() {
			driver.Stop()
			return
		}
		s.Draw(surface)
		surface.Show()
	})
	if err != nil {
		log.Printf("Loop stopped: %v", err)
	}
}

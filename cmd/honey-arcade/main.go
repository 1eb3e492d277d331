// cmd/honey-arcade/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input/ebiteninput"
	"go-honey-arcade/internal/session"
	"go-honey-arcade/pkg/render/ebitensurface"
)

type AppGame struct {
	session        *session.Session
	surface        *ebitensurface.Surface
	input          *ebiteninput.Source
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := app.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	a.session.Step(a.input.Sample(), deltaTime)
	if a.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	a.session.Draw(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flags := session.RegisterFlags(flag.CommandLine)
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	surface, err := ebitensurface.New(config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	s, err := session.Open(flags, surface)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("Failed to close session: %v", err)
		}
	}()

	game := &AppGame{
		session:        s,
		surface:        surface,
		input:          ebiteninput.New(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Медовая аркада")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game stopped: %v", err)
	}
}

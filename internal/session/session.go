// Package session собирает приложение из флагов: настройки, определения,
// хранилище рекордов, звук, машину состояний, запись и воспроизведение реплеев.
// Все фронтенды (ebiten, raylib, терминал) пользуются одной сборкой.
package session

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/audio"
	"go-honey-arcade/internal/audio/speakerout"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/defs"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/replay"
	"go-honey-arcade/internal/state"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/pkg/render"
)

const GameMenu = "menu"

// Flags — общие флаги командной строки
type Flags struct {
	Game   string
	Tuning string
	Defs   string
	Store  string
	Seed   int64
	Mute   bool
	Record string
	Replay string
}

// RegisterFlags описывает флаги в fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Game, "game", GameMenu, "honey | defense | menu")
	fs.StringVar(&f.Tuning, "tuning", "", "YAML file with tuning overrides")
	fs.StringVar(&f.Defs, "defs", "", "YAML file with item/hazard/tower definitions")
	fs.StringVar(&f.Store, "store", "gdata", "best score storage: gdata | sqlite:PATH | memory")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed, 0 = from clock")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound")
	fs.StringVar(&f.Record, "record", "", "write a replay of the session to this file")
	fs.StringVar(&f.Replay, "replay", "", "play back a replay file instead of live input")
	return f
}

// Session — собранное приложение
type Session struct {
	Machine    *state.StateMachine
	Dispatcher *event.Dispatcher

	store      storage.Store
	speaker    *speakerout.Output
	recorder   *replay.Recorder
	recordPath string
	player     *replay.Player
}

// Open собирает сессию. surf может быть nil: тогда игры отключены
// и запрос конкретной игры возвращает app.ErrNoSurface.
func Open(f *Flags, surf render.Surface) (*Session, error) {
	tuning := config.DefaultTuning()
	if f.Tuning != "" {
		t, err := config.LoadTuning(f.Tuning)
		if err != nil {
			return nil, err
		}
		tuning = t
	}
	lib := defs.Default()
	if f.Defs != "" {
		l, err := defs.Load(f.Defs)
		if err != nil {
			return nil, err
		}
		lib = l
	}
	if err := lib.CheckTuning(tuning); err != nil {
		return nil, err
	}

	s := &Session{
		Machine:    state.NewStateMachine(),
		Dispatcher: event.NewDispatcher(),
	}
	store, err := storage.Open(f.Store, config.StorageAppName)
	if err != nil {
		log.Printf("[Storage] best scores disabled: %v", err)
	} else {
		s.store = store
	}
	if !f.Mute {
		s.openAudio()
	}

	launcher := &state.Launcher{
		Surface: surf,
		Options: app.Options{
			Tuning:     tuning,
			Defs:       lib,
			Store:      s.store,
			Dispatcher: s.Dispatcher,
			Seed:       f.Seed,
		},
	}

	game := f.Game
	if f.Replay != "" {
		r, err := replay.Load(f.Replay)
		if err != nil {
			s.Close()
			return nil, err
		}
		game = r.Game
		launcher.Options.Seed = r.Seed
		s.player = replay.NewPlayer(r)
		log.Printf("[Replay] playing %s: %d frames, seed %d", r.Game, len(r.Frames), r.Seed)
	}

	if game == GameMenu {
		if f.Record != "" {
			log.Printf("[Replay] recording needs -game honey|defense, ignored")
		}
		s.Machine.SetState(state.NewMenuState(s.Machine, launcher))
		return s, nil
	}

	frame, err := launcher.New(game)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("start %s: %w", game, err)
	}
	var back func() state.State
	if f.Record == "" && s.player == nil {
		back = func() state.State { return state.NewMenuState(s.Machine, launcher) }
	}
	play := state.NewPlayState(s.Machine, frame, back)
	if f.Record != "" {
		s.recorder = replay.NewRecorder(frame.Name(), frame.Seed())
		s.recordPath = f.Record
		play.Recorder = s.recorder
	}
	s.Machine.SetState(play)
	return s, nil
}

func (s *Session) openAudio() {
	out, err := speakerout.Open(audio.SampleRate)
	if err != nil {
		log.Printf("[Audio] sound disabled: %v", err)
		return
	}
	s.speaker = out
	audio.NewCuePlayer(out).Attach(s.Dispatcher)
}

// Step продвигает приложение на один кадр. При воспроизведении
// реплея живой ввод и шаг времени заменяются записанными.
func (s *Session) Step(in input.Intents, dt float64) {
	if s.player != nil {
		var ok bool
		dt, in, ok = s.player.Next()
		if !ok {
			s.Machine.Quit()
			return
		}
	}
	s.Machine.Update(in, dt)
}

// Draw рисует текущее состояние
func (s *Session) Draw(surf render.Surface) {
	s.Machine.Draw(surf)
}

// Done — приложение пора закрывать
func (s *Session) Done() bool {
	return s.Machine.Done()
}

// Close сохраняет запись и освобождает звук и хранилище
func (s *Session) Close() error {
	var errs []error
	if s.recorder != nil {
		if err := s.recorder.Replay().Save(s.recordPath); err != nil {
			errs = append(errs, err)
		} else {
			log.Printf("[Replay] saved %d frames to %s", len(s.recorder.Replay().Frames), s.recordPath)
		}
		s.recorder = nil
	}
	if s.speaker != nil {
		s.speaker.Close()
		s.speaker = nil
	}
	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.store = nil
	return errors.Join(errs...)
}

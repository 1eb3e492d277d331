// Package replay записывает и воспроизводит партии: сид генератора
// и снимки намерений по кадрам. Симуляция детерминирована, поэтому
// этого достаточно, чтобы повторить партию до последнего очка.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"go-honey-arcade/internal/input"
)

// Version — версия формата файла
const Version = 1

// ErrBadReplay — файл прочитан, но это не реплей или версия не та
var ErrBadReplay = errors.New("bad replay")

// Frame — один кадр: шаг времени и намерения
type Frame struct {
	Dt    float64 `msgpack:"dt"`
	Flags uint16  `msgpack:"f"`
	X     float64 `msgpack:"x,omitempty"`
	Y     float64 `msgpack:"y,omitempty"`
}

// Replay — запись партии
type Replay struct {
	Version int     `msgpack:"v"`
	Game    string  `msgpack:"game"`
	Seed    int64   `msgpack:"seed"`
	Frames  []Frame `msgpack:"frames"`
}

// Recorder копит кадры партии
type Recorder struct {
	rep Replay
}

// NewRecorder начинает запись игры game с сидом seed
func NewRecorder(game string, seed int64) *Recorder {
	return &Recorder{rep: Replay{Version: Version, Game: game, Seed: seed}}
}

// Add добавляет кадр
func (r *Recorder) Add(dt float64, in input.Intents) {
	f := Frame{Dt: dt, Flags: uint16(in.Flags)}
	if in.Has(input.Pointer) {
		f.X, f.Y = in.PointerX, in.PointerY
	}
	r.rep.Frames = append(r.rep.Frames, f)
}

// Replay возвращает накопленную запись
func (r *Recorder) Replay() *Replay {
	return &r.rep
}

// Encode пишет запись в w
func (r *Replay) Encode(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save пишет запись в файл
func (r *Replay) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode читает запись из rd
func Decode(rd io.Reader) (*Replay, error) {
	var r Replay
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadReplay, r.Version, Version)
	}
	return &r, nil
}

// Load читает запись из файла
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Player отдает кадры записи по одному
type Player struct {
	rep *Replay
	pos int
}

// NewPlayer создает проигрыватель записи
func NewPlayer(r *Replay) *Player {
	return &Player{rep: r}
}

// Next возвращает следующий кадр. ok=false — запись кончилась.
func (p *Player) Next() (dt float64, in input.Intents, ok bool) {
	if p.pos >= len(p.rep.Frames) {
		return 0, input.Intents{}, false
	}
	f := p.rep.Frames[p.pos]
	p.pos++
	in = input.Intents{Flags: input.Intent(f.Flags), PointerX: f.X, PointerY: f.Y}
	return f.Dt, in, true
}

// Done — все кадры отданы
func (p *Player) Done() bool {
	return p.pos >= len(p.rep.Frames)
}

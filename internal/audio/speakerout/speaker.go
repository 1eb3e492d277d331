// Package speakerout выводит сигналы на звуковое устройство через beep/speaker.
package speakerout

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output — микшер, подключенный к динамику
type Output struct {
	mixer *beep.Mixer
}

// Open инициализирует динамик. Ошибка означает, что звука не будет.
func Open(rate beep.SampleRate) (*Output, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	o := &Output{mixer: &beep.Mixer{}}
	speaker.Play(o.mixer)
	return o, nil
}

// Play добавляет сигнал в микшер
func (o *Output) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close останавливает вывод
func (o *Output) Close() {
	speaker.Clear()
	speaker.Close()
}

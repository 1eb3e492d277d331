// internal/app/driver.go
package app

import (
	"context"
	"sync"
	"time"

	"go-honey-arcade/internal/config"
)

// Driver — цикл кадров на тикере для фронтендов без собственного цикла (терминал).
type Driver struct {
	period time.Duration
	stop   chan struct{}
	once   sync.Once
	now    func() time.Time
}

// NewDriver создает цикл с частотой fps кадров в секунду
func NewDriver(fps int) *Driver {
	if fps <= 0 {
		fps = config.TargetFPS
	}
	return &Driver{
		period: time.Second / time.Duration(fps),
		stop:   make(chan struct{}),
		now:    time.Now,
	}
}

// Run вызывает step на каждом тике с прошедшим временем в секундах,
// ограниченным MaxDeltaTime. Возвращается после Stop или отмены ctx.
func (d *Driver) Run(ctx context.Context, step func(dt float64)) error {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()
	last := d.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stop:
			return nil
		case <-ticker.C:
			now := d.now()
			dt := ClampDelta(now.Sub(last).Seconds())
			last = now
			step(dt)
		}
	}
}

// Stop останавливает цикл. Повторный вызов ничего не делает.
func (d *Driver) Stop() {
	d.once.Do(func() { close(d.stop) })
}

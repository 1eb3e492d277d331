// internal/app/pipeline.go
package app

// stage — один шаг конвейера кадра
type stage struct {
	name string
	run  func(dt float64)
}

// pipeline выполняет шаги строго по порядку: появление, физика,
// столкновения, очки. Отрисовка идет отдельно в Draw, поэтому новая
// сущность видна со следующего кадра, а съеденная не рисуется вовсе.
type pipeline struct {
	stages []stage
	trace  func(name string)
}

func newPipeline(spawn, physics, collide, score func(dt float64)) *pipeline {
	return &pipeline{stages: []stage{
		{"spawn", spawn},
		{"physics", physics},
		{"collide", collide},
		{"score", score},
	}}
}

// Run выполняет один кадр
func (p *pipeline) Run(dt float64) {
	for _, s := range p.stages {
		if p.trace != nil {
			p.trace(s.name)
		}
		s.run(dt)
	}
}

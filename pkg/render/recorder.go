package render

import (
	"image/color"
	"strings"

	"go-honey-arcade/pkg/geom"
)

// Op — вид записанной команды
type Op string

const (
	OpClear        Op = "clear"
	OpFillRect     Op = "fill_rect"
	OpStrokeRect   Op = "stroke_rect"
	OpFillCircle   Op = "fill_circle"
	OpStrokeCircle Op = "stroke_circle"
	OpStrokeLine   Op = "stroke_line"
	OpFillPolygon  Op = "fill_polygon"
	OpText         Op = "text"
)

// Command — одна команда рисования
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64 // для кругов W — радиус
	Points []geom.Point
	Text   string
	Color  color.RGBA
}

// Recorder — поверхность, которая ничего не рисует, а запоминает команды
type Recorder struct {
	W, H     int
	Commands []Command
}

// NewRecorder создает записывающую поверхность размера w×h
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, X: cx, Y: cy, W: rad, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, _ float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeCircle, X: cx, Y: cy, W: rad, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, _ float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeLine, X: x0, Y: y0, W: x1, H: y1, Color: c})
}

func (r *Recorder) FillPolygon(points []geom.Point, c color.RGBA) {
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	r.Commands = append(r.Commands, Command{Op: OpFillPolygon, Points: cp, Color: c})
}

func (r *Recorder) Text(s string, x, y, size float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Op: OpText, X: x, Y: y, W: size, Text: s, Color: c})
}

// Reset забывает записанные команды
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count — сколько команд данного вида записано
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// HasText — выводилась ли строка, содержащая sub
func (r *Recorder) HasText(sub string) bool {
	for _, c := range r.Commands {
		if c.Op == OpText && strings.Contains(c.Text, sub) {
			return true
		}
	}
	return false
}

// CirclesAt — команды кругов с центром в (x, y) с точностью eps
func (r *Recorder) CirclesAt(x, y, eps float64) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op != OpFillCircle && c.Op != OpStrokeCircle {
			continue
		}
		if geom.Dist(c.X, c.Y, x, y) <= eps {
			n++
		}
	}
	return n
}

package termsurface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-honey-arcade/pkg/geom"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func newSim(t *testing.T) (tcell.SimulationScreen, *Surface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)
	return screen, New(screen, 800, 600)
}

func TestCellMapping(t *testing.T) {
	_, s := newSim(t)
	cw, ch := s.CellSize()
	if cw != 10 || ch != 20 {
		t.Fatalf("cell size %vx%v, want 10x20", cw, ch)
	}
	s.Clear(blue)
	s.FillRect(100, 100, 50, 40, red)
	if _, _, bg := s.Cell(12, 5); bg != red {
		t.Errorf("cell inside rect has bg %v", bg)
	}
	if _, _, bg := s.Cell(20, 5); bg != blue {
		t.Errorf("cell outside rect has bg %v", bg)
	}
}

func TestSmallCircleStaysVisible(t *testing.T) {
	_, s := newSim(t)
	s.Clear(blue)
	s.FillCircle(405, 305, 3, red)
	if _, _, bg := s.Cell(40, 15); bg != red {
		t.Error("tiny circle vanished")
	}
}

func TestPolygonAndText(t *testing.T) {
	_, s := newSim(t)
	s.Clear(blue)
	s.FillPolygon([]geom.Point{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 0, Y: 200}}, red)
	if _, _, bg := s.Cell(1, 1); bg != red {
		t.Error("polygon interior not filled")
	}
	if _, _, bg := s.Cell(15, 8); bg != blue {
		t.Error("polygon exterior filled")
	}
	s.Text("Счет", 10, 580, 18, red)
	if r, fg, _ := s.Cell(2, 29); r != 'ч' || fg != red {
		t.Errorf("text cell = %q %v", r, fg)
	}
	s.Text("offscreen", 5000, 5000, 18, red)
}

func TestShowWritesScreen(t *testing.T) {
	screen, s := newSim(t)
	s.Clear(blue)
	s.StrokeLine(0, 10, 790, 10, 1, red)
	s.Show()
	r, _, style, _ := screen.GetContent(40, 0)
	if r != strokeRune {
		t.Errorf("screen rune %q, want stroke", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground %v", fg)
	}
}

// Package ebitensurface рисует примитивы render.Surface на *ebiten.Image.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"go-honey-arcade/pkg/geom"
)

// Surface — обертка над кадром ebiten. Изображение привязывается заново
// в каждом Draw, шрифт и буферы вершин переиспользуются.
type Surface struct {
	dst      *ebiten.Image
	w, h     int
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	fillImg  *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	drawOpts text.DrawOptions
}

// New создает поверхность размера w×h со встроенным шрифтом Go Regular
func New(w, h int) (*Surface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Surface{
		w:       w,
		h:       h,
		source:  source,
		faces:   make(map[float64]*text.GoTextFace),
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
	}, nil
}

// Bind задает изображение, на которое рисуется текущий кадр
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) Clear(c color.RGBA) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// FillPolygon заливает выпуклый или звездчатый контур через DrawTriangles
func (s *Surface) FillPolygon(points []geom.Point, c color.RGBA) {
	if s.dst == nil || len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	for i := range s.vs {
		s.vs[i].SrcX = 0
		s.vs[i].SrcY = 0
		s.vs[i].ColorR = float32(c.R) / 255
		s.vs[i].ColorG = float32(c.G) / 255
		s.vs[i].ColorB = float32(c.B) / 255
		s.vs[i].ColorA = float32(c.A) / 255
	}
	s.dst.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size}
	s.faces[size] = f
	return f
}

func (s *Surface) Text(str string, x, y, size float64, c color.RGBA) {
	if s.dst == nil || str == "" {
		return
	}
	s.drawOpts.GeoM.Reset()
	s.drawOpts.GeoM.Translate(x, y)
	s.drawOpts.ColorScale.Reset()
	s.drawOpts.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face(size), &s.drawOpts)
}

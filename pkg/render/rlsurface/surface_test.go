package rlsurface

import (
	"testing"

	"go-honey-arcade/pkg/geom"
)

func TestCrossOrientation(t *testing.T) {
	top := geom.Point{X: 0, Y: 0}
	left := geom.Point{X: -60, Y: 70}
	right := geom.Point{X: 60, Y: 70}
	if cross(top, left, right) >= 0 {
		t.Error("top, bottom-left, bottom-right is counter-clockwise on screen")
	}
	if cross(top, right, left) <= 0 {
		t.Error("reversed order should be clockwise")
	}
}

func TestFontCharsCoverCyrillic(t *testing.T) {
	has := map[rune]bool{}
	for _, r := range fontChars() {
		has[r] = true
	}
	for _, r := range "Счет: 10 — Рекорд" {
		if !has[r] {
			t.Errorf("font misses %q", r)
		}
	}
}

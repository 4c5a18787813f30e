package clip

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestComparePoints(t *testing.T) {
	var tts = []struct {
		a, b Point
		cmp  int
	}{
		{Point{0.0, 0.0}, Point{0.0, 0.0}, 0},
		{Point{0.0, 0.0}, Point{1.0, 0.0}, -1},
		{Point{1.0, 0.0}, Point{0.0, 0.0}, 1},
		{Point{1.0, 0.0}, Point{1.0, 1.0}, -1},
		{Point{1.0, 1.0}, Point{1.0, 0.0}, 1},
		{Point{1.0, 1.0}, Point{1.0 + 1e-8, 1.0 - 1e-8}, 0},
		{Point{2.0, 5.0}, Point{2.0, 5.0 + 2.0*Epsilon}, -1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, comparePoints(tt.a, tt.b), tt.cmp)
		})
	}
}

func TestCollinear(t *testing.T) {
	var tts = []struct {
		a, b, c   Point
		collinear bool
	}{
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 2.0}, true},
		{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 2.5}, false},
		{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{0.0, 5.0}, true},  // vertical
		{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{1.0, 5.0}, false}, // one vertical
		{Point{3.0, 4.0}, Point{3.0, 4.0}, Point{9.0, 1.0}, true},  // coincident points
		{Point{0.0, 0.0}, Point{4.0, 0.0}, Point{8.0, 0.0}, true},  // horizontal
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, collinear(tt.a, tt.b, tt.c), tt.collinear)
		})
	}
}

func TestAboveOrOnLine(t *testing.T) {
	// y grows downwards, so smaller y is above
	var tts = []struct {
		p, a, b Point
		above   bool
	}{
		{Point{1.0, 0.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, true},
		{Point{1.0, 2.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, false},
		{Point{1.0, 1.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, true}, // on the line
		{Point{1.0, 1.0}, Point{0.0, 0.0}, Point{2.0, 2.0}, true}, // on a diagonal
		{Point{1.0, 0.5}, Point{0.0, 0.0}, Point{2.0, 2.0}, true},
		{Point{1.0, 1.5}, Point{0.0, 0.0}, Point{2.0, 2.0}, false},
		{Point{2.0, 3.0}, Point{1.0, 0.0}, Point{1.0, 5.0}, true}, // right of vertical
		{Point{0.0, 3.0}, Point{1.0, 0.0}, Point{1.0, 5.0}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, aboveOrOnLine(tt.p, tt.a, tt.b), tt.above)
		})
	}
}

func TestPointBetween(t *testing.T) {
	var tts = []struct {
		p, a, b Point
		between bool
	}{
		{Point{1.0, 0.0}, Point{0.0, 0.0}, Point{2.0, 0.0}, true},
		{Point{3.0, 0.0}, Point{0.0, 0.0}, Point{2.0, 0.0}, false},
		{Point{0.0, 0.0}, Point{0.0, 0.0}, Point{2.0, 0.0}, true}, // endpoints included
		{Point{0.0, 1.0}, Point{0.0, 0.0}, Point{0.0, 2.0}, true}, // vertical
		{Point{0.0, 3.0}, Point{0.0, 0.0}, Point{0.0, 2.0}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, pointBetween(tt.p, tt.a, tt.b), tt.between)
		})
	}
}

func TestLineIntersection(t *testing.T) {
	var tts = []struct {
		a1, a2, b1, b2 Point
		p              Point
		res            intersectResult
	}{
		{Point{0.0, 0.0}, Point{2.0, 2.0}, Point{0.0, 2.0}, Point{2.0, 0.0}, Point{1.0, 1.0}, intersectCrossing},
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, -1.0}, Point{1.0, 1.0}, Point{1.0, 0.0}, intersectCrossing},
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, Point{}, intersectNone},       // parallel
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, 0.0}, Point{3.0, 0.0}, Point{}, intersectCoincident}, // same carrier
		{Point{0.0, 0.0}, Point{1.0, 0.0}, Point{2.0, -1.0}, Point{2.0, 1.0}, Point{}, intersectNone},      // crossing beyond segment
		{Point{0.0, 0.0}, Point{0.0, 2.0}, Point{-1.0, 1.0}, Point{1.0, 1.0}, Point{0.0, 1.0}, intersectCrossing}, // vertical
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, res := lineIntersection(tt.a1, tt.a2, tt.b1, tt.b2)
			test.T(t, res, tt.res)
			if res == intersectCrossing {
				test.Float(t, p.X, tt.p.X)
				test.Float(t, p.Y, tt.p.Y)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	test.Float(t, Point{1.0, 2.0}.Dot(Point{3.0, 4.0}), 11.0)
	test.Float(t, Point{1.0, 2.0}.PerpDot(Point{3.0, 4.0}), -2.0)
	p := Point{0.0, 0.0}.Interpolate(Point{4.0, 2.0}, 0.5)
	test.Float(t, p.X, 2.0)
	test.Float(t, p.Y, 1.0)
	test.T(t, Point{1.0, 1.0}.Equals(Point{1.0, 1.0 + 1e-8}), true)
	test.T(t, Point{1.0, 1.0}.Equals(Point{1.0, 1.1}), false)
}

package clip

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathParse(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"M2 2L7 2L8 6L3 6z", "M2 2L7 2L8 6L3 6z"},
		{"M2,2 L7,2 8,6 3,6 z", "M2 2L7 2L8 6L3 6z"},           // implicit LineTo
		{"m2 2l5 0l1 4l-5 0z", "M2 2L7 2L8 6L3 6z"},            // relative
		{"M0 0H4V4H0z", "M0 0L4 0L4 4L0 4z"},                   // horizontal and vertical
		{"M0 0h4v4h-4z", "M0 0L4 0L4 4L0 4z"},
		{"M0 0L1 0M5 5L6 5z", "M0 0L1 0M5 5L6 5z"},             // two subpaths
		{"M.5 -.5L1e1 2E-1", "M0.5 -0.5L10 0.2"},               // number forms
		{"  M 0 0 L 1 1 z  ", "M0 0L1 1z"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.String(t, p.String(), tt.res)
		})
	}
}

func TestPathParseError(t *testing.T) {
	var tts = []string{
		"M0 0C1 1 2 2 3 3",  // curves not supported
		"M0 0A5 5 0 0 1 10 0",
		"M0 0L1",            // missing coordinate
		"X0 0",              // unknown command
		"0 0L1 1",           // number before any command
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseSVGPath(tt)
			test.That(t, err != nil, "expected parse error for", tt)
		})
	}
}

func TestPathCloseSubpaths(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1M5 5L6 5L6 6z")
	p.CloseSubpaths()
	test.String(t, p.String(), "M0 0L1 0L1 1zM5 5L6 5L6 6z")
	test.T(t, p.Closed(), true)

	q := MustParseSVGPath("M0 0L1 0")
	test.T(t, q.Closed(), false)
	q.CloseSubpaths()
	test.String(t, q.String(), "M0 0L1 0z")
}

func TestPathLines(t *testing.T) {
	p := MustParseSVGPath("M0 0L4 0L4 4z")
	lines := p.Lines()
	test.T(t, len(lines), 3)
	test.T(t, lines[0], Line{Point{0.0, 0.0}, Point{4.0, 0.0}})
	test.T(t, lines[1], Line{Point{4.0, 0.0}, Point{4.0, 4.0}})
	test.T(t, lines[2], Line{Point{4.0, 4.0}, Point{0.0, 0.0}})
}

func TestPathCoords(t *testing.T) {
	p := MustParseSVGPath("M0 0L4 0L4 4z")
	coords := p.Coords()
	test.T(t, len(coords), 4)
	test.T(t, coords[0], coords[3])
}

func TestPathArea(t *testing.T) {
	var tts = []struct {
		p    string
		area float64
	}{
		{"M0 0L1 0L1 1L0 1z", 1.0},
		{"M0 1L1 1L1 0L0 0z", -1.0},  // opposite orientation
		{"M0 0L1 0L1 1L0 1", 1.0},    // implicit closure
		{"M0 0L4 0L4 4L0 4z", 16.0},
		{"M2 2L7 2L8 6L3 6z", 20.0},  // parallelogram
		{"M0 0L2 0L2 2L0 2zM4 0L6 0L6 2L4 2z", 8.0}, // two subpaths
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, MustParseSVGPath(tt.p).Area(), tt.area)
		})
	}
}

func TestPathSubpaths(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1zM5 5L6 5L6 6z")
	subpaths := p.Subpaths()
	test.T(t, len(subpaths), 2)
	test.String(t, subpaths[0].String(), "M0 0L1 0L1 1z")
	test.String(t, subpaths[1].String(), "M5 5L6 5L6 6z")
}

func TestPathAppend(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1z")
	q := MustParseSVGPath("M5 5L6 5L6 6z")
	r := p.Append(q)
	test.String(t, r.String(), "M0 0L1 0L1 1zM5 5L6 5L6 6z")
	test.T(t, r.Empty(), false)
	test.T(t, (&Path{}).Empty(), true)
}

package clip

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which two coordinates are considered equal.
// Every comparison in this package is made with this tolerance; the sweep
// relies on equivalence of points, not exact equality.
var Epsilon = 1e-4

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// interval is true when f is in [lower,upper] with tolerance Epsilon on both ends.
func interval(f, lower, upper float64) bool {
	return lower-Epsilon <= f && f <= upper+Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// comparePoints gives a strict total order over points with tolerance Epsilon,
// comparing x before y. It canonicalizes segment direction and schedules the
// sweep, so both must agree on it.
func comparePoints(a, b Point) int {
	if equal(a.X, b.X) {
		if equal(a.Y, b.Y) {
			return 0
		}
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X < b.X {
		return -1
	}
	return 1
}

func lineSlope(a, b Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

// collinear returns true if a, b, c lie on one line with tolerance Epsilon.
// Vertical runs are compared on x to keep infinite slopes out of the subtraction.
func collinear(a, b, c Point) bool {
	if a.Equals(b) || b.Equals(c) || a.Equals(c) {
		return true
	}
	abVertical := equal(a.X, b.X)
	bcVertical := equal(b.X, c.X)
	if abVertical || bcVertical {
		return abVertical && bcVertical
	}
	return equal(lineSlope(a, b), lineSlope(b, c))
}

// aboveOrOnLine returns true if p lies above or on the carrier line of a-b,
// where above means a smaller y at the same x. Vertical lines get their own
// branch: above means a larger x, matching the point order which sorts a
// vertical segment's smaller y first.
func aboveOrOnLine(p, a, b Point) bool {
	if equal(a.X, b.X) {
		return equal(p.X, a.X) || a.X < p.X
	}
	y := (p.X-a.X)*lineSlope(a, b) + a.Y
	return p.Y <= y || equal(p.Y, y)
}

// pointBetween returns true if p lies between a and b. All three points must be
// collinear and a < b in the point order.
func pointBetween(p, a, b Point) bool {
	if equal(a.X, b.X) {
		return a.Y <= p.Y && p.Y <= b.Y
	}
	return a.X <= p.X && p.X <= b.X
}

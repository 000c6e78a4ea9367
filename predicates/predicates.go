// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates provides the floating-point geometric tests shared by the
// planar and spherical triangulators.
//
// Every predicate is evaluated in float64 and the sign of each determinant is
// taken as-is, without tolerance. Callers that hash or sort points use the same
// precision, so bucket decisions and flip decisions never disagree because of
// narrowing.
package predicates

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Cross returns the z component of (q-p) x (r-p). It is positive when p, q, r
// turn counter-clockwise with the y axis pointing up.
func Cross(p, q, r r2.Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Orient reports whether (qy-py)(rx-qx) - (qx-px)(ry-qy) is negative, that is
// whether p, q, r make a clockwise turn in y-down screen coordinates. With the
// y axis up, which is the convention of this module, the same triple turns
// counter-clockwise. Collinear triples report false.
func Orient(p, q, r r2.Point) bool {
	return (q.Y-p.Y)*(r.X-q.X)-(q.X-p.X)*(r.Y-q.Y) < 0
}

// InCircle reports whether p lies strictly inside the circumcircle of the
// counter-clockwise triangle a, b, c.
func InCircle(a, b, c, p r2.Point) bool {
	dx := a.X - p.X
	dy := a.Y - p.Y
	ex := b.X - p.X
	ey := b.Y - p.Y
	fx := c.X - p.X
	fy := c.Y - p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) > 0
}

// Circumradius returns the squared circumradius of the triangle a, b, c.
// Collinear points have no circumcircle and yield +Inf.
func Circumradius(a, b, c r2.Point) float64 {
	x, y := circumOffset(a, b, c)
	r := x*x + y*y
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.Inf(1)
	}
	return r
}

// Circumcenter returns the center of the circle through a, b and c.
// The result is not finite when the points are collinear.
func Circumcenter(a, b, c r2.Point) r2.Point {
	x, y := circumOffset(a, b, c)
	return r2.Point{X: a.X + x, Y: a.Y + y}
}

// circumOffset returns the circumcenter relative to a.
func circumOffset(a, b, c r2.Point) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	return (ey*bl - dy*cl) * d, (dx*cl - ex*bl) * d
}

// PseudoAngle maps the direction of d to [0, 1). It increases monotonically
// with the counter-clockwise angle of d, starting just after the negative x
// axis, and is much cheaper than math.Atan2. The zero vector maps to 0.
func PseudoAngle(d r2.Point) float64 {
	s := math.Abs(d.X) + math.Abs(d.Y)
	if s == 0 {
		return 0
	}
	p := d.X / s
	var a float64
	if d.Y > 0 {
		a = (3 - p) / 4
	} else {
		a = (1 + p) / 4
	}
	if a >= 1 {
		return 0
	}
	return a
}

// SphericalCircumcenter returns the unit vector equidistant from the unit
// vectors a, b and c, on the side from which a, b, c appear counter-clockwise.
func SphericalCircumcenter(a, b, c r3.Vector) r3.Vector {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

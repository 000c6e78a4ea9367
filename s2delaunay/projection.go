// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// projection maps the sphere minus the pole stereographically onto the plane
// through the origin orthogonal to the pole. Counter-clockwise order on the
// plane equals counter-clockwise order seen from outside the sphere.
type projection struct {
	pole r3.Vector
	u, v r3.Vector
}

func newProjection(pole r3.Vector) projection {
	axis := r3.Vector{X: 1}
	if math.Abs(pole.X) >= 0.9 {
		axis = r3.Vector{Y: 1}
	}
	u := axis.Cross(pole).Normalize()
	v := u.Cross(pole)
	return projection{pole: pole, u: u, v: v}
}

// project returns the planar coordinates of p. It reports false when p is
// within eps of the pole, where the projection diverges.
func (pr projection) project(p r3.Vector, eps float64) (r2.Point, bool) {
	d := 1 - pr.pole.Dot(p)
	if d <= eps {
		return r2.Point{}, false
	}
	q := pr.pole.Add(p.Sub(pr.pole).Mul(1 / d))
	return r2.Point{X: q.Dot(pr.u), Y: q.Dot(pr.v)}, true
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements an incremental planar Delaunay triangulation.
//
// Points are inserted in order of distance from the seed triangle's
// circumcenter while an advancing convex hull is tracked with a linked list
// and an angular hash. Lawson flips restore the Delaunay condition after each
// insertion. The result is stored as flat triangle and half-edge arrays.
//
// Triangles are counter-clockwise with the y axis pointing up.
package delaunay

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/voronoi/predicates"
	"github.com/golang/geo/r2"
)

// Triangulation is a Delaunay triangulation of Points.
type Triangulation struct {
	Points []r2.Point
	// Triangles holds three point indices per triangle, counter-clockwise.
	Triangles []int
	// Halfedges[e] is the half-edge opposite to e, or NoHalfEdge on the hull.
	Halfedges []HalfEdge
	// Hull lists the convex hull point indices counter-clockwise. For
	// collinear input it lists the distinct points in order along the line.
	Hull []int
}

// NewTriangulation computes the Delaunay triangulation of points.
//
// Fewer than three points or a non-finite coordinate yield ErrInvalidArgument.
// If every point lies on one line the result has no triangles and Hull holds
// the distinct points ordered along it. The points slice is retained, not
// copied, and must not be modified afterwards.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := defaultTriangulationOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidArgument, n)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: point %d has non-finite coordinates %v", ErrInvalidArgument, i, p)
		}
	}

	size := estimateBytes(n)
	if size < 0 {
		return nil, fmt.Errorf("%w: %d points exceed the addressable size", ErrOutOfMemory, n)
	}
	if opts.MemoryLimit > 0 && size > opts.MemoryLimit {
		return nil, fmt.Errorf("%w: %d points need about %d bytes, limit is %d",
			ErrOutOfMemory, n, size, opts.MemoryLimit)
	}

	tr := newTriangulator(points, opts.Eps)
	tr.triangulate()

	dt := &Triangulation{
		Points:    points,
		Triangles: tr.triangles,
		Halfedges: tr.halfedges,
		Hull:      tr.hull,
	}

	if len(dt.Triangles) == 0 {
		Logger().Debug("delaunay: collinear input", "points", n, "hull", len(dt.Hull))
	}
	Logger().Debug("delaunay: triangulated",
		"points", n,
		"triangles", dt.NumTriangles(),
		"hull", len(dt.Hull),
		"skipped", tr.skipped,
		"flips", tr.flips,
	)
	return dt, nil
}

// NumPoints returns the number of input points.
func (dt *Triangulation) NumPoints() int {
	return len(dt.Points)
}

// NumTriangles returns the number of triangles.
func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles) / 3
}

// Triangle returns the point indices of triangle t in counter-clockwise order.
func (dt *Triangulation) Triangle(t int) [3]int {
	if t < 0 || t >= dt.NumTriangles() {
		panic("Triangle: t out of range")
	}
	return [3]int{dt.Triangles[3*t], dt.Triangles[3*t+1], dt.Triangles[3*t+2]}
}

// TriangleVertices returns the corner coordinates of triangle t.
func (dt *Triangulation) TriangleVertices(t int) (r2.Point, r2.Point, r2.Point) {
	tri := dt.Triangle(t)
	return dt.Points[tri[0]], dt.Points[tri[1]], dt.Points[tri[2]]
}

// EdgesOfTriangle returns the three half-edges of triangle t.
func (dt *Triangulation) EdgesOfTriangle(t int) [3]HalfEdge {
	if t < 0 || t >= dt.NumTriangles() {
		panic("EdgesOfTriangle: t out of range")
	}
	e := HalfEdge(3 * t)
	return [3]HalfEdge{e, e + 1, e + 2}
}

// Edge returns the start and end point of half-edge e.
func (dt *Triangulation) Edge(e HalfEdge) (from, to int) {
	if e < 0 || int(e) >= len(dt.Triangles) {
		panic("Edge: e out of range")
	}
	return dt.Triangles[e], dt.Triangles[e.Next()]
}

// Circumcenter returns the circumcenter of triangle t.
func (dt *Triangulation) Circumcenter(t int) r2.Point {
	a, b, c := dt.TriangleVertices(t)
	return predicates.Circumcenter(a, b, c)
}

// TrianglesAdjacentToTriangle returns the triangles sharing an edge with t.
func (dt *Triangulation) TrianglesAdjacentToTriangle(t int) []int {
	adjacent := make([]int, 0, 3)
	for _, e := range dt.EdgesOfTriangle(t) {
		if o := dt.Halfedges[e]; o != NoHalfEdge {
			adjacent = append(adjacent, o.Triangle())
		}
	}
	return adjacent
}

// EdgesAroundPoint returns the half-edges ending at the destination of start,
// visited clockwise by repeatedly stepping to the opposite of the next
// half-edge. The walk stops when it returns to start or reaches the hull, so
// start should be a hull half-edge when the point lies on the hull.
func (dt *Triangulation) EdgesAroundPoint(start HalfEdge) []HalfEdge {
	var edges []HalfEdge
	e := start
	for {
		edges = append(edges, e)
		e = dt.Halfedges[e.Next()]
		if e == NoHalfEdge || e == start {
			break
		}
	}
	return edges
}

// Validate checks the structural invariants of dt: half-edge symmetry,
// counter-clockwise triangles, a convex counter-clockwise hull with one
// boundary half-edge per hull point, and triangle area summing to hull area.
// It is meant for tests and debugging.
func (dt *Triangulation) Validate() error {
	if len(dt.Triangles)%3 != 0 || len(dt.Triangles) != len(dt.Halfedges) {
		return errors.New("delaunay: triangles and halfedges have inconsistent lengths")
	}
	if len(dt.Triangles) == 0 {
		return nil
	}

	boundary := 0
	for e, o := range dt.Halfedges {
		if o == NoHalfEdge {
			boundary++
			continue
		}
		if int(o) >= len(dt.Halfedges) || dt.Halfedges[o] != HalfEdge(e) {
			return fmt.Errorf("delaunay: halfedge %d is not symmetric", e)
		}
		a, b := dt.Edge(HalfEdge(e))
		c, d := dt.Edge(o)
		if a != d || b != c {
			return fmt.Errorf("delaunay: halfedge %d and %d do not share endpoints", e, o)
		}
	}
	if boundary != len(dt.Hull) {
		return fmt.Errorf("delaunay: %d boundary halfedges, hull has %d points", boundary, len(dt.Hull))
	}

	var triArea float64
	for t := range dt.NumTriangles() {
		a, b, c := dt.TriangleVertices(t)
		cr := predicates.Cross(a, b, c)
		if cr < 0 {
			return fmt.Errorf("delaunay: triangle %d is clockwise", t)
		}
		triArea += cr / 2
	}

	n := len(dt.Hull)
	for k := range n {
		a := dt.Points[dt.Hull[k]]
		b := dt.Points[dt.Hull[(k+1)%n]]
		c := dt.Points[dt.Hull[(k+2)%n]]
		if predicates.Cross(a, b, c) < 0 {
			return fmt.Errorf("delaunay: hull turns clockwise at point %d", dt.Hull[(k+1)%n])
		}
	}
	hullArea := polygonArea(dt.Points, dt.Hull)
	if math.Abs(hullArea-triArea) > 1e-9*math.Max(1, hullArea) {
		return fmt.Errorf("delaunay: hull area %v disagrees with triangle area %v", hullArea, triArea)
	}
	return nil
}

// polygonArea returns the signed area of the polygon through points[idx...].
// The area is summed as a fan around the first point.
func polygonArea(points []r2.Point, idx []int) float64 {
	if len(idx) < 3 {
		return 0
	}
	var area float64
	o := points[idx[0]]
	for k := 1; k+1 < len(idx); k++ {
		area += predicates.Cross(o, points[idx[k]], points[idx[k+1]])
	}
	return area / 2
}

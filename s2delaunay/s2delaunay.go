// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2delaunay computes Delaunay triangulations of points on the unit
// sphere.
//
// The last vertex serves as the pole of a stereographic projection. All other
// vertices are projected onto a plane and triangulated there; projection
// preserves circles, so the planar Delaunay triangles stay Delaunay on the
// sphere. The hole left around the pole is closed with one triangle per
// planar hull edge.
package s2delaunay

import (
	"fmt"
	"math"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/2dChan/voronoi/predicates"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// Triangulation is a Delaunay triangulation of vertices on the unit sphere.
type Triangulation struct {
	Vertices s2.PointVector
	// NOTE: Triangles are CCW when looking from outside the sphere. The
	// first NumPlanarTriangles come from the planar triangulation, the rest
	// contain the pole.
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex(look out of sphere)
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int

	// Hull lists the vertices adjacent to the pole in CCW order around the
	// planar hull.
	Hull               []int
	Pole               int
	NumPlanarTriangles int
}

// IncidentTriangles returns the triangles around vertex vIdx in CCW order.
// Vertices dropped as duplicates have none.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the corners of triangle tIdx.
func (dt *Triangulation) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Circumcenter returns the center of the circumcircle of triangle tIdx on
// the side of the sphere the triangle faces.
func (dt *Triangulation) Circumcenter(tIdx int) s2.Point {
	a, b, c := dt.TriangleVertices(tIdx)
	return s2.Point{Vector: predicates.SphericalCircumcenter(a.Vector, b.Vector, c.Vector)}
}

// NewTriangulation computes the Delaunay triangulation of vertices, which
// must be at least four unit vectors. The last vertex becomes the pole and
// must not coincide with any other vertex.
//
// Invalid input yields an error wrapping delaunay.ErrInvalidArgument. If all
// vertices lie on one great circle through the pole the result is
// ErrDegenerateInput. Vertices within eps of an earlier one are dropped and
// left without incident triangles.
func NewTriangulation(vertices s2.PointVector, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil, fmt.Errorf("%w: need at least 4 vertices, got %d", delaunay.ErrInvalidArgument, numVertices)
	}
	for i, p := range vertices {
		if !isFinite(p) {
			return nil, fmt.Errorf("%w: vertex %d has non-finite coordinates %v", delaunay.ErrInvalidArgument, i, p)
		}
		if n := p.Norm(); math.Abs(n-1) > unitTolerance {
			return nil, fmt.Errorf("%w: vertex %d has norm %v, want 1", delaunay.ErrInvalidArgument, i, n)
		}
	}

	pole := numVertices - 1
	proj := newProjection(vertices[pole].Vector)
	planar := make([]r2.Point, pole)
	for i := range planar {
		p, ok := proj.project(vertices[i].Vector, opts.Eps)
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d coincides with the pole", delaunay.ErrInvalidArgument, i)
		}
		planar[i] = p
	}

	pt, err := delaunay.NewTriangulation(planar, delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, fmt.Errorf("s2delaunay: %w", err)
	}
	if pt.NumTriangles() == 0 {
		return nil, fmt.Errorf("%w: all vertices lie on a great circle through the pole", ErrDegenerateInput)
	}

	numPlanar := pt.NumTriangles()
	numHull := len(pt.Hull)
	numTriangles := numPlanar + numHull
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               make([][3]int, numTriangles),
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		Hull:                    pt.Hull,
		Pole:                    pole,
		NumPlanarTriangles:      numPlanar,
	}

	for t := range numPlanar {
		dt.Triangles[t] = pt.Triangle(t)
	}
	for k, a := range pt.Hull {
		b := pt.Hull[(k+1)%numHull]
		dt.Triangles[numPlanar+k] = [3]int{a, pole, b}
	}

	for _, tri := range dt.Triangles {
		for _, v := range tri {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, tri := range dt.Triangles {
		for _, v := range tri {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	dropped := 0
	for i := range numVertices {
		incidentTriangles := dt.IncidentTriangles(i)
		if len(incidentTriangles) == 0 {
			dropped++
			continue
		}
		sortIncidentTriangleIndicesCCW(i, incidentTriangles, dt.Triangles)
	}

	logger := delaunay.Logger()
	if dropped > 0 {
		logger.Warn("s2delaunay: dropped coincident vertices", "dropped", dropped)
	}
	logger.Debug("s2delaunay: triangulated",
		"vertices", numVertices,
		"triangles", numTriangles,
		"planar", numPlanar,
		"hull", numHull,
	)
	return dt, nil
}

func isFinite(p s2.Point) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// sortIncidentTriangleIndicesCCW orders the triangles around vIdx CCW. The
// triangle after t shares the edge from vIdx to PrevVertex(t, vIdx).
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i + 1; j < n; j++ {
			nxt := NextVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

// PrevVertex returns the corner preceding vIdx in the CCW triangle t.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the corner following vIdx in the CCW triangle t.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

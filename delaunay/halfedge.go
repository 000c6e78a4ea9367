// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// HalfEdge indexes Triangulation.Triangles and Triangulation.Halfedges.
// Half-edge e of triangle t = e/3 starts at Triangles[e] and ends at
// Triangles[e.Next()].
type HalfEdge int

// NoHalfEdge marks a half-edge without an opposite, i.e. a hull edge.
const NoHalfEdge HalfEdge = -1

// Next returns the following half-edge in the same triangle.
func (e HalfEdge) Next() HalfEdge {
	return e - e%3 + (e+1)%3
}

// Prev returns the preceding half-edge in the same triangle.
func (e HalfEdge) Prev() HalfEdge {
	return e - e%3 + (e+2)%3
}

// Triangle returns the index of the triangle owning e.
func (e HalfEdge) Triangle() int {
	return int(e) / 3
}

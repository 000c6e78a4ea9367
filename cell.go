// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell is a view of one cell of a Diagram. Its index is the index of its site
// in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// Closed reports whether the cell is bounded.
func (c Cell) Closed() bool {
	return c.d.Closed(c.idx)
}

// NumVertices returns the number of Voronoi vertices of the cell. An open
// cell has one vertex fewer than it has neighbors.
func (c Cell) NumVertices() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// VertexIndices returns the indices of the cell vertices in the Diagram's
// Circumcenters, sorted in counter-clockwise order.
func (c Cell) VertexIndices() []int {
	return c.d.CellVertices[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.d.Circumcenters[c.d.CellVertices[start+i]], nil
}

// Polygon returns the cell clipped to the Diagram's bounds.
func (c Cell) Polygon() []r2.Point {
	return c.d.ClippedPolygon(c.idx)
}

// Neighbors returns the indices of the neighboring sites in counter-clockwise
// order.
func (c Cell) Neighbors() []int {
	return c.d.Neighbors(c.idx)
}

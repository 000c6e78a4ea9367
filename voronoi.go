// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi implements planar Voronoi diagrams as the dual of a Delaunay
// triangulation.
//
// Every triangle contributes its circumcenter as a Voronoi vertex. Cells of
// sites on the convex hull are unbounded; they are reported as open vertex
// sequences and, for polygon output, clipped to a bounding rectangle.
package voronoi

import (
	"fmt"
	"slices"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/golang/geo/r2"
)

// Diagram is the Voronoi diagram of a set of sites.
type Diagram struct {
	Sites    []r2.Point
	Delaunay *delaunay.Triangulation

	// Circumcenters holds one Voronoi vertex per Delaunay triangle.
	Circumcenters []r2.Point
	// Inedges[i] is a half-edge ending at site i, or NoHalfEdge for sites
	// that were skipped as duplicates. For hull sites it is the incoming
	// hull half-edge.
	Inedges []delaunay.HalfEdge

	// NOTE: Sorted in CCW order per cell.
	CellVertices []int
	CellOffsets  []int

	// Bounds is the rectangle that cell polygons are clipped to.
	Bounds r2.Rect

	hullIndex []int
	opts      DiagramOptions
}

// New triangulates sites and builds their Voronoi diagram.
func New(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}

	dt, err := delaunay.NewTriangulation(sites, delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, err
	}

	d := &Diagram{opts: opts}
	d.build(dt)
	return d, nil
}

// FromTriangulation builds the Voronoi diagram of an existing triangulation.
// The triangulation is retained and must not be modified afterwards.
func FromTriangulation(dt *delaunay.Triangulation, setters ...DiagramOption) (*Diagram, error) {
	if dt == nil {
		return nil, fmt.Errorf("%w: nil triangulation", delaunay.ErrInvalidArgument)
	}
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}

	d := &Diagram{opts: opts}
	d.build(dt)
	return d, nil
}

func applyOptions(setters []DiagramOption) (DiagramOptions, error) {
	opts := defaultDiagramOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return DiagramOptions{}, err
		}
	}
	return opts, nil
}

func (d *Diagram) build(dt *delaunay.Triangulation) {
	n := dt.NumPoints()
	numTriangles := dt.NumTriangles()

	d.Sites = dt.Points
	d.Delaunay = dt
	d.Bounds = d.opts.Bounds
	if d.Bounds.IsEmpty() {
		d.Bounds = defaultBounds(dt.Points)
	}

	d.Circumcenters = make([]r2.Point, numTriangles)
	for t := range numTriangles {
		d.Circumcenters[t] = dt.Circumcenter(t)
	}

	d.Inedges = make([]delaunay.HalfEdge, n)
	for i := range d.Inedges {
		d.Inedges[i] = delaunay.NoHalfEdge
	}
	for e := range dt.Halfedges {
		he := delaunay.HalfEdge(e)
		p := dt.Triangles[he.Next()]
		if d.Inedges[p] == delaunay.NoHalfEdge || dt.Halfedges[e] == delaunay.NoHalfEdge {
			d.Inedges[p] = he
		}
	}

	d.hullIndex = make([]int, n)
	for i := range d.hullIndex {
		d.hullIndex[i] = -1
	}
	for k, i := range dt.Hull {
		d.hullIndex[i] = k
	}

	// Every triangle appears in the cells of its three corners.
	d.CellOffsets = make([]int, n+1)
	d.CellVertices = make([]int, 0, 3*numTriangles)
	for i := range n {
		start := len(d.CellVertices)
		if e0 := d.Inedges[i]; e0 != delaunay.NoHalfEdge {
			e := e0
			for {
				d.CellVertices = append(d.CellVertices, e.Triangle())
				e = dt.Halfedges[e.Next()]
				if e == delaunay.NoHalfEdge || e == e0 {
					break
				}
			}
		}
		// The walk turns clockwise around the site.
		slices.Reverse(d.CellVertices[start:])
		d.CellOffsets[i+1] = len(d.CellVertices)
	}

	delaunay.Logger().Debug("voronoi: diagram built",
		"cells", n,
		"vertices", numTriangles,
		"bounds", d.Bounds,
	)
}

// NumCells returns the number of cells, which equals the number of sites.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns a view of the cell of site i.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

// Closed reports whether the cell of site i is a bounded polygon. Hull sites,
// skipped duplicates and sites of collinear input have open cells.
func (d *Diagram) Closed(i int) bool {
	e := d.Inedges[i]
	return e != delaunay.NoHalfEdge && d.Delaunay.Halfedges[e] != delaunay.NoHalfEdge
}

// CellPolygon writes the Voronoi vertices of site i into buf in CCW order and
// returns how many were written. At most len(buf) vertices are written; a
// result equal to len(buf) may mean the cell was truncated. Sites without an
// incident interior edge yield 0. Open cells are not clipped.
func (d *Diagram) CellPolygon(i int, buf []r2.Point) int {
	cell := d.CellVertices[d.CellOffsets[i]:d.CellOffsets[i+1]]
	// A single triangle has both its edges at i on the hull.
	if len(cell) < 2 {
		return 0
	}
	n := min(len(cell), len(buf))
	for k := range n {
		buf[k] = d.Circumcenters[cell[k]]
	}
	return n
}

// Neighbors returns the sites sharing a Delaunay edge with site i, in CCW
// order around it.
func (d *Diagram) Neighbors(i int) []int {
	dt := d.Delaunay
	if dt.NumTriangles() == 0 {
		return d.lineNeighbors(i)
	}

	e0 := d.Inedges[i]
	if e0 == delaunay.NoHalfEdge {
		return nil
	}

	var neighbors []int
	e := e0
	for {
		neighbors = append(neighbors, dt.Triangles[e])
		out := e.Next()
		e = dt.Halfedges[out]
		if e == delaunay.NoHalfEdge {
			_, to := dt.Edge(out)
			neighbors = append(neighbors, to)
			break
		}
		if e == e0 {
			break
		}
	}
	slices.Reverse(neighbors)
	return neighbors
}

// lineNeighbors returns the neighbors of site i along the hull of collinear
// input.
func (d *Diagram) lineNeighbors(i int) []int {
	k := d.hullIndex[i]
	if k < 0 {
		return nil
	}
	hull := d.Delaunay.Hull
	neighbors := make([]int, 0, 2)
	if k > 0 {
		neighbors = append(neighbors, hull[k-1])
	}
	if k+1 < len(hull) {
		neighbors = append(neighbors, hull[k+1])
	}
	return neighbors
}

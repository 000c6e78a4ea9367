// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2voronoi implements Voronoi diagrams on the S2 sphere, built on
// Delaunay triangulation.
package s2voronoi

import (
	"fmt"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/2dChan/voronoi/s2delaunay"
	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-12
)

// DiagramOptions holds the settings of NewDiagram.
type DiagramOptions struct {
	Eps float64
}

// DiagramOption changes a DiagramOptions value.
type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance under which two sites are treated as
// coincident. It must lie in (0, 1).
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(eps > 0 && eps < 1) {
			return fmt.Errorf("%w: WithEps: eps must be in (0 1), got %v", delaunay.ErrInvalidArgument, eps)
		}
		o.Eps = eps
		return nil
	}
}

// Diagram is the Voronoi diagram of sites on the unit sphere.
type Diagram struct {
	Sites    s2.PointVector
	Vertices s2.PointVector
	// HullCircumcenters is the tail of Vertices made of the circumcenters of
	// the triangles around the last site. Entry k closes the cells of the
	// k-th and (k+1)-th sites of the projected hull.
	HullCircumcenters s2.PointVector

	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellVertices []int
	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellNeighbors []int
	CellOffsets   []int

	opts DiagramOptions
}

// NewDiagram computes the Voronoi diagram of sites, which must be at least
// four unit vectors. See s2delaunay.NewTriangulation for the input contract.
func NewDiagram(sites s2.PointVector, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	d := &Diagram{opts: opts}
	if err := d.build(sites); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Diagram) build(sites s2.PointVector) error {
	dt, err := s2delaunay.NewTriangulation(sites, s2delaunay.WithEps(d.opts.Eps))
	if err != nil {
		return err
	}

	numTriangles := len(dt.Triangles)
	numNeighbors := len(dt.IncidentTriangleIndices)
	d.Sites = dt.Vertices
	d.Vertices = make(s2.PointVector, numTriangles)
	d.HullCircumcenters = d.Vertices[dt.NumPlanarTriangles:]
	d.CellVertices = dt.IncidentTriangleIndices
	d.CellNeighbors = make([]int, numNeighbors)
	d.CellOffsets = dt.IncidentTriangleOffsets

	for i := range numTriangles {
		d.Vertices[i] = dt.Circumcenter(i)
	}

	for vIdx := range dt.Vertices {
		offset := dt.IncidentTriangleOffsets[vIdx]
		it := dt.IncidentTriangles(vIdx)
		for i, tIdx := range it {
			d.CellNeighbors[offset+i] = s2delaunay.NextVertex(dt.Triangles[tIdx], vIdx)
		}
	}

	delaunay.Logger().Debug("s2voronoi: diagram built",
		"cells", len(d.Sites),
		"vertices", numTriangles,
		"hull", len(d.HullCircumcenters),
	)
	return nil
}

// NumCells returns the number of cells, which equals the number of sites.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell of site i.
// It returns an error if the index is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

// Relax applies steps of Lloyd relaxation: every site moves to the centroid
// of its cell and the diagram is rebuilt. Sites without a cell stay put. The
// caller's sites are not modified.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", delaunay.ErrInvalidArgument, steps)
	}

	for step := range steps {
		sites := make(s2.PointVector, len(d.Sites))
		for i := range d.Sites {
			c := Cell{idx: i, d: d}
			sites[i] = c.Centroid()
		}
		if err := d.build(sites); err != nil {
			return fmt.Errorf("Relax: step %d: %w", step, err)
		}
	}
	return nil
}

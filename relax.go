// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/golang/geo/r2"
)

// Find returns the index of the site nearest to p. The search walks Delaunay
// neighbors greedily from site start; any start is accepted, a good one only
// makes the walk shorter.
func (d *Diagram) Find(p r2.Point, start int) int {
	i := d.findStart(start)
	dist := p.Sub(d.Sites[i]).Norm()
	for {
		next := i
		for _, j := range d.Neighbors(i) {
			if dj := p.Sub(d.Sites[j]).Norm(); dj < dist {
				next = j
				dist = dj
			}
		}
		if next == i {
			return i
		}
		i = next
	}
}

// findStart maps start to a site that takes part in the triangulation.
func (d *Diagram) findStart(start int) int {
	if start < 0 || start >= len(d.Sites) {
		start = 0
	}
	dt := d.Delaunay
	if dt.NumTriangles() == 0 {
		if d.hullIndex[start] < 0 {
			return dt.Hull[0]
		}
		return start
	}
	if d.Inedges[start] == delaunay.NoHalfEdge {
		return dt.Triangles[0]
	}
	return start
}

// Relax applies steps of Lloyd relaxation. Each step moves every site to the
// centroid of its clipped cell and rebuilds the diagram; the bounds stay
// fixed. Sites are copied before the first step, the caller's slice is not
// modified.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", delaunay.ErrInvalidArgument, steps)
	}

	opts := d.opts
	opts.Bounds = d.Bounds
	for step := range steps {
		sites := make([]r2.Point, len(d.Sites))
		moved := 0
		for i, site := range d.Sites {
			sites[i] = site
			poly := d.ClippedPolygon(i)
			if len(poly) < 3 {
				continue
			}
			sites[i] = polygonCentroid(poly)
			moved++
		}

		dt, err := delaunay.NewTriangulation(sites, delaunay.WithEps(opts.Eps))
		if err != nil {
			return fmt.Errorf("Relax: step %d: %w", step, err)
		}
		d.opts = opts
		d.build(dt)

		delaunay.Logger().Debug("voronoi: relaxed", "step", step, "moved", moved)
	}
	return nil
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"
	"math"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = 0x1p-52

	// boundsMargin is the fraction of the larger side of the sites' bounding
	// box added on every side when no bounds are given.
	boundsMargin = 0.1
)

// DiagramOptions configures a Diagram.
type DiagramOptions struct {
	// Eps is the per-axis tolerance under which consecutive sites are treated
	// as duplicates by the triangulator.
	Eps float64
	// Bounds is the clipping rectangle for cell polygons. An empty rectangle
	// selects the default derived from the sites.
	Bounds r2.Rect
}

// DiagramOption sets a field of DiagramOptions.
type DiagramOption func(*DiagramOptions) error

// WithEps sets the duplicate tolerance. It must be positive and finite.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(eps > 0) || math.IsInf(eps, 1) {
			return fmt.Errorf("%w: WithEps: eps must be positive, got %v", delaunay.ErrInvalidArgument, eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithBounds sets the rectangle that open cells are clipped to. It must not
// be empty.
func WithBounds(r r2.Rect) DiagramOption {
	return func(o *DiagramOptions) error {
		if r.IsEmpty() {
			return fmt.Errorf("%w: WithBounds: bounds must not be empty", delaunay.ErrInvalidArgument)
		}
		o.Bounds = r
		return nil
	}
}

func defaultDiagramOptions() DiagramOptions {
	return DiagramOptions{
		Eps:    defaultEps,
		Bounds: r2.EmptyRect(),
	}
}

// defaultBounds returns the bounding box of points expanded on every side by
// boundsMargin of its larger side, taken as at least 1.
func defaultBounds(points []r2.Point) r2.Rect {
	r := r2.RectFromPoints(points...)
	size := r.Size()
	side := max(size.X, size.Y, 1)
	return r.ExpandedByMargin(boundsMargin * side)
}

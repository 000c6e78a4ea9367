// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2delaunay

import (
	"fmt"

	"github.com/2dChan/voronoi/delaunay"
)

const (
	defaultEps = 1e-12

	// unitTolerance bounds how far the norm of an input vertex may stray
	// from 1.
	unitTolerance = 1e-6
)

// TriangulationOptions holds the settings of NewTriangulation.
type TriangulationOptions struct {
	// Eps is the tolerance under which two vertices, or a vertex and the
	// pole, are treated as coincident.
	Eps float64
}

// TriangulationOption changes a TriangulationOptions value.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the coincidence tolerance. It must lie in (0, 1).
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if !(eps > 0 && eps < 1) {
			return fmt.Errorf("%w: WithEps: eps must be in (0 1), got %v", delaunay.ErrInvalidArgument, eps)
		}
		o.Eps = eps
		return nil
	}
}

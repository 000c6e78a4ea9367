// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math"
)

const (
	// defaultEps is the per-axis distance under which two consecutive points
	// in insertion order are treated as duplicates.
	defaultEps = 0x1p-52
)

// TriangulationOptions holds the settings of NewTriangulation.
type TriangulationOptions struct {
	// Eps is the duplicate tolerance, applied per axis.
	Eps float64
	// MemoryLimit caps the estimated construction footprint in bytes.
	// Zero means no limit.
	MemoryLimit int64
}

// TriangulationOption changes a TriangulationOptions value. It returns an
// error when the value it carries is invalid.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the duplicate tolerance. eps must be positive and finite.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if !(eps > 0) || math.IsInf(eps, 1) {
			return fmt.Errorf("%w: WithEps: eps must be positive, got %v", ErrInvalidArgument, eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithMemoryLimit caps the number of bytes a construction may allocate.
// A construction whose estimate exceeds the limit fails with ErrOutOfMemory
// before allocating anything.
func WithMemoryLimit(bytes int64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if bytes < 0 {
			return fmt.Errorf("%w: WithMemoryLimit: limit must be non-negative, got %d", ErrInvalidArgument, bytes)
		}
		o.MemoryLimit = bytes
		return nil
	}
}

func defaultTriangulationOptions() TriangulationOptions {
	return TriangulationOptions{Eps: defaultEps}
}

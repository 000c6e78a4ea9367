// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "errors"

// Sentinel errors for the delaunay package. Construction errors wrap one of
// these, so callers can test them with errors.Is.
var (
	// ErrInvalidArgument is returned when the caller breaks the input contract:
	// fewer than three points, a non-finite coordinate or a bad option value.
	// Nothing is allocated before it is reported.
	ErrInvalidArgument = errors.New("delaunay: invalid argument")

	// ErrOutOfMemory is returned when the buffers needed for the input exceed
	// the configured memory limit or the addressable size.
	ErrOutOfMemory = errors.New("delaunay: out of memory")
)

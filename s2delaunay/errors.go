// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2delaunay

import "errors"

// ErrDegenerateInput is returned when the vertices do not span the sphere,
// which happens when every vertex lies on one great circle through the pole.
var ErrDegenerateInput = errors.New("s2delaunay: degenerate input")

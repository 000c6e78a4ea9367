// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

func TestQuicksort(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		distinct int
	}{
		{"single", 1, 1},
		{"insertion only", 15, 15},
		{"cutoff", insertionSortCutoff + 1, 100},
		{"many duplicates", 500, 3},
		{"random", 5000, 1 << 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:gosec
			random := rand.New(rand.NewSource(int64(tt.size)))
			dists := make([]float64, tt.size)
			ids := make([]int, tt.size)
			for i := range dists {
				dists[i] = float64(random.Intn(tt.distinct))
				ids[i] = i
			}

			quicksort(ids, dists, 0, len(ids)-1)

			if !slices.IsSortedFunc(ids, func(a, b int) int {
				switch {
				case dists[a] < dists[b]:
					return -1
				case dists[a] > dists[b]:
					return 1
				}
				return 0
			}) {
				t.Errorf("quicksort(...) ids not ordered by distance")
			}

			seen := slices.Clone(ids)
			slices.Sort(seen)
			for i, id := range seen {
				if id != i {
					t.Fatalf("quicksort(...) ids are not a permutation: %v", fmt.Sprint(seen[:min(len(seen), 10)]))
				}
			}
		})
	}
}

func TestQuicksort_Sorted(t *testing.T) {
	const n = 1000
	dists := make([]float64, n)
	ids := make([]int, n)
	for i := range n {
		dists[i] = float64(n - i)
		ids[i] = i
	}
	quicksort(ids, dists, 0, n-1)
	for i, id := range ids {
		if want := n - 1 - i; id != want {
			t.Fatalf("quicksort(reversed)[%d] = %d, want %d", i, id, want)
		}
	}
}

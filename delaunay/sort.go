// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// insertionSortCutoff is the partition size at or below which quicksort
// switches to insertion sort.
const insertionSortCutoff = 20

// quicksort orders ids[left:right+1] by dists[id], ascending. It uses a
// median-of-three pivot and recurses into the smaller partition only.
func quicksort(ids []int, dists []float64, left, right int) {
	for right-left > insertionSortCutoff {
		median := (left + right) >> 1
		i := left + 1
		j := right
		ids[median], ids[i] = ids[i], ids[median]
		if dists[ids[left]] > dists[ids[right]] {
			ids[left], ids[right] = ids[right], ids[left]
		}
		if dists[ids[i]] > dists[ids[right]] {
			ids[i], ids[right] = ids[right], ids[i]
		}
		if dists[ids[left]] > dists[ids[i]] {
			ids[left], ids[i] = ids[i], ids[left]
		}

		pivot := ids[i]
		pivotDist := dists[pivot]
		for {
			for i++; dists[ids[i]] < pivotDist; i++ {
			}
			for j--; dists[ids[j]] > pivotDist; j-- {
			}
			if j < i {
				break
			}
			ids[i], ids[j] = ids[j], ids[i]
		}
		ids[left+1] = ids[j]
		ids[j] = pivot

		if right-i+1 >= j-left {
			quicksort(ids, dists, left, j-1)
			left = i
		} else {
			quicksort(ids, dists, i, right)
			right = j - 1
		}
	}

	for i := left + 1; i <= right; i++ {
		id := ids[i]
		d := dists[id]
		j := i - 1
		for j >= left && dists[ids[j]] > d {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = id
	}
}

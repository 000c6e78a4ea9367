// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"

	"github.com/2dChan/voronoi/predicates"
	"github.com/golang/geo/r2"
)

// triangulator holds the state of one construction pass. The hull is a
// circular doubly linked list over point indices; hullNext[i] == i marks a
// point that has been removed from it.
type triangulator struct {
	points []r2.Point
	eps    float64

	ids    []int
	dists  []float64
	center r2.Point

	triangles    []int
	halfedges    []HalfEdge
	trianglesLen int

	hullStart int
	hullSize  int
	hullPrev  []int
	hullNext  []int
	hullTri   []HalfEdge
	hullHash  []int
	hull      []int

	edgeStack []HalfEdge

	skipped int
	flips   int
}

func newTriangulator(points []r2.Point, eps float64) *triangulator {
	n := len(points)
	maxTriangles := max(2*n-5, 0)
	hashSize := int(math.Ceil(math.Sqrt(float64(n))))

	return &triangulator{
		points:    points,
		eps:       eps,
		ids:       make([]int, n),
		dists:     make([]float64, n),
		triangles: make([]int, maxTriangles*3),
		halfedges: make([]HalfEdge, maxTriangles*3),
		hullPrev:  make([]int, n),
		hullNext:  make([]int, n),
		hullTri:   make([]HalfEdge, n),
		hullHash:  make([]int, hashSize),
		edgeStack: make([]HalfEdge, 0, 64),
	}
}

// estimateBytes returns the number of bytes newTriangulator allocates for n
// points, or -1 when the size does not fit in an int.
func estimateBytes(n int) int64 {
	const (
		wordSize = 8
		// ids, dists, hullPrev, hullNext, hullTri
		perPoint = 5 * wordSize
		// triangles and halfedges, three entries each
		perTriangle = 6 * wordSize
	)
	if n > (math.MaxInt-1)/(perPoint+2*perTriangle+wordSize) {
		return -1
	}
	hashSize := int64(math.Ceil(math.Sqrt(float64(n))))
	maxTriangles := int64(max(2*n-5, 0))
	return int64(n)*perPoint + maxTriangles*perTriangle + hashSize*wordSize
}

func (tr *triangulator) triangulate() {
	points := tr.points
	n := len(points)

	for i := range tr.ids {
		tr.ids[i] = i
	}

	// Seed point closest to the center of the bounding box.
	c := r2.RectFromPoints(points...).Center()
	i0 := 0
	minDist := math.Inf(1)
	for i, p := range points {
		if d := squaredDistance(p, c); d < minDist {
			i0 = i
			minDist = d
		}
	}
	p0 := points[i0]

	// Closest distinct point to the seed.
	i1 := -1
	minDist = math.Inf(1)
	for i, p := range points {
		if i == i0 {
			continue
		}
		if d := squaredDistance(p, p0); d > 0 && d < minDist {
			i1 = i
			minDist = d
		}
	}

	// Third point forming the smallest circumcircle with the first two.
	i2 := -1
	minRadius := math.Inf(1)
	if i1 >= 0 {
		p1 := points[i1]
		for i, p := range points {
			if i == i0 || i == i1 {
				continue
			}
			if r := predicates.Circumradius(p0, p1, p); r < minRadius {
				i2 = i
				minRadius = r
			}
		}
	}

	if i2 < 0 {
		tr.collinear()
		return
	}

	if !predicates.Orient(points[i0], points[i1], points[i2]) {
		i1, i2 = i2, i1
	}

	tr.center = predicates.Circumcenter(points[i0], points[i1], points[i2])
	for i, p := range points {
		tr.dists[i] = squaredDistance(p, tr.center)
	}
	quicksort(tr.ids, tr.dists, 0, n-1)

	tr.hullStart = i0
	tr.hullSize = 3

	tr.hullNext[i0], tr.hullPrev[i2] = i1, i1
	tr.hullNext[i1], tr.hullPrev[i0] = i2, i2
	tr.hullNext[i2], tr.hullPrev[i1] = i0, i0

	tr.hullTri[i0] = 0
	tr.hullTri[i1] = 1
	tr.hullTri[i2] = 2

	for i := range tr.hullHash {
		tr.hullHash[i] = -1
	}
	tr.hullHash[tr.hashKey(points[i0])] = i0
	tr.hullHash[tr.hashKey(points[i1])] = i1
	tr.hullHash[tr.hashKey(points[i2])] = i2

	tr.addTriangle(i0, i1, i2, NoHalfEdge, NoHalfEdge, NoHalfEdge)

	var prev r2.Point
	for k, i := range tr.ids {
		p := points[i]

		if k > 0 && math.Abs(p.X-prev.X) <= tr.eps && math.Abs(p.Y-prev.Y) <= tr.eps {
			tr.skipped++
			continue
		}
		prev = p

		if i == i0 || i == i1 || i == i2 {
			continue
		}

		if !tr.insert(i) {
			tr.skipped++
		}
	}

	tr.hull = make([]int, tr.hullSize)
	e := tr.hullStart
	for k := range tr.hull {
		tr.hull[k] = e
		e = tr.hullNext[e]
	}

	tr.triangles = tr.triangles[:tr.trianglesLen:tr.trianglesLen]
	tr.halfedges = tr.halfedges[:tr.trianglesLen:tr.trianglesLen]
}

// insert adds point i to the triangulation. It reports false when no hull
// edge is visible from i, which happens for near-duplicates.
func (tr *triangulator) insert(i int) bool {
	p := tr.points[i]

	// Find a live hull point near the angle of p, then step back one.
	start := 0
	key := tr.hashKey(p)
	for j := range tr.hullHash {
		start = tr.hullHash[(key+j)%len(tr.hullHash)]
		if start != -1 && start != tr.hullNext[start] {
			break
		}
	}
	start = tr.hullPrev[start]

	e := start
	for !tr.visible(p, e, tr.hullNext[e]) {
		e = tr.hullNext[e]
		if e == start {
			return false
		}
	}

	t := tr.addTriangle(e, i, tr.hullNext[e], NoHalfEdge, NoHalfEdge, tr.hullTri[e])
	tr.hullTri[i] = tr.legalize(t + 2)
	tr.hullTri[e] = t
	tr.hullSize++

	// Fan forward while the next hull edge stays visible.
	n := tr.hullNext[e]
	for q := tr.hullNext[n]; tr.visible(p, n, q); q = tr.hullNext[n] {
		t = tr.addTriangle(n, i, q, tr.hullTri[i], NoHalfEdge, tr.hullTri[n])
		tr.hullTri[i] = tr.legalize(t + 2)
		tr.hullNext[n] = n
		tr.hullSize--
		n = q
	}

	// Fan backward. Edges before start can only be visible when the first
	// examined edge was.
	if e == start {
		for q := tr.hullPrev[e]; tr.visible(p, q, e); q = tr.hullPrev[e] {
			t = tr.addTriangle(q, i, e, NoHalfEdge, tr.hullTri[e], tr.hullTri[q])
			tr.legalize(t + 2)
			tr.hullTri[q] = t
			tr.hullNext[e] = e
			tr.hullSize--
			e = q
		}
	}

	tr.hullStart = e
	tr.hullPrev[i] = e
	tr.hullNext[e] = i
	tr.hullPrev[n] = i
	tr.hullNext[i] = n

	tr.hullHash[tr.hashKey(p)] = i
	tr.hullHash[tr.hashKey(tr.points[e])] = e
	return true
}

// visible reports whether p lies strictly outside the hull edge e->q.
// The hull runs counter-clockwise, so outside is to the right of the edge.
func (tr *triangulator) visible(p r2.Point, e, q int) bool {
	return predicates.Orient(p, tr.points[q], tr.points[e])
}

func (tr *triangulator) hashKey(p r2.Point) int {
	size := len(tr.hullHash)
	a := predicates.PseudoAngle(p.Sub(tr.center))
	return int(math.Floor(a*float64(size))) % size
}

func (tr *triangulator) addTriangle(i0, i1, i2 int, a, b, c HalfEdge) HalfEdge {
	t := HalfEdge(tr.trianglesLen)

	tr.triangles[t] = i0
	tr.triangles[t+1] = i1
	tr.triangles[t+2] = i2

	tr.link(t, a)
	tr.link(t+1, b)
	tr.link(t+2, c)

	tr.trianglesLen += 3
	return t
}

func (tr *triangulator) link(a, b HalfEdge) {
	tr.halfedges[a] = b
	if b != NoHalfEdge {
		tr.halfedges[b] = a
	}
}

// legalize restores the Delaunay condition around half-edge a by flipping
// edges until every pending edge is legal. It returns the half-edge that
// follows the last examined edge's opposite corner, which for a freshly
// inserted point is its outgoing hull edge.
//
//	          pl                    pl
//	         /||\                  /  \
//	      al/ || \bl            al/    \a
//	       /  ||  \              /      \
//	      /  a||b  \    flip    /___ar___\
//	    p0\   ||   /p1   =>   p0\---bl---/p1
//	       \  ||  /              \      /
//	      ar\ || /br             b\    /br
//	         \||/                  \  /
//	          pr                    pr
func (tr *triangulator) legalize(a HalfEdge) HalfEdge {
	stack := tr.edgeStack[:0]
	var ar HalfEdge

	for {
		b := tr.halfedges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		legal := b == NoHalfEdge
		var b0, al, bl HalfEdge
		var p0, pr, pl, p1 int
		if !legal {
			b0 = b - b%3
			al = a0 + (a+1)%3
			bl = b0 + (b+2)%3

			p0 = tr.triangles[ar]
			pr = tr.triangles[a]
			pl = tr.triangles[al]
			p1 = tr.triangles[bl]

			legal = !predicates.InCircle(tr.points[p0], tr.points[pr], tr.points[pl], tr.points[p1])
		}

		if legal {
			if len(stack) == 0 {
				break
			}
			a = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		tr.triangles[a] = p1
		tr.triangles[b] = p0
		tr.flips++

		hbl := tr.halfedges[bl]
		if hbl == NoHalfEdge {
			// The flipped edge was on the hull; repoint its hull entry.
			e := tr.hullStart
			for {
				if tr.hullTri[e] == bl {
					tr.hullTri[e] = a
					break
				}
				e = tr.hullPrev[e]
				if e == tr.hullStart {
					break
				}
			}
		}
		tr.link(a, hbl)
		tr.link(b, tr.halfedges[ar])
		tr.link(ar, bl)

		br := b0 + (b+1)%3
		stack = append(stack, br)
	}

	tr.edgeStack = stack
	return ar
}

// collinear handles input without any non-degenerate triangle. The points are
// ordered along the primary axis and the strictly increasing ones form the
// hull.
func (tr *triangulator) collinear() {
	p0 := tr.points[0]
	for i, p := range tr.points {
		d := p.X - p0.X
		if d == 0 {
			d = p.Y - p0.Y
		}
		tr.dists[i] = d
	}
	quicksort(tr.ids, tr.dists, 0, len(tr.ids)-1)

	tr.hull = make([]int, 0, len(tr.ids))
	d0 := math.Inf(-1)
	for _, id := range tr.ids {
		if d := tr.dists[id]; d > d0 {
			tr.hull = append(tr.hull, id)
			d0 = d
		} else {
			tr.skipped++
		}
	}

	tr.triangles = []int{}
	tr.halfedges = []HalfEdge{}
}

func squaredDistance(a, b r2.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2delaunay

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/2dChan/voronoi/delaunay"
	"github.com/2dChan/voronoi/utils"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/markus-wa/quickhull-go/v2"
)

// TriangulationOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps one", 1, true},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
		{"eps nan", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TriangulationOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("WithEps(%v) error = %v, want %v", tt.eps, err, errValMsg)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Triangulation

func TestNewTriangulation_WithEps(t *testing.T) {
	points := utils.GenerateRandomPoints(10, 0)
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps default", defaultEps, false},
		{"eps positive", 0.01, false},
		{"eps large", 1, true},
		{"eps zero", 0, true},
		{"eps negative", -0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(points, WithEps(tt.eps))
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("NewTriangulation(..., WithEps(%v)) error = %v, want %s", tt.eps, err, errValMsg)
			}
		})
	}
}

func TestNewTriangulation_InvalidArgument(t *testing.T) {
	valid := utils.GenerateRandomPoints(5, 0)
	with := func(i int, p s2.Point) s2.PointVector {
		v := slices.Clone(valid)
		v[i] = p
		return v
	}

	tests := []struct {
		name     string
		vertices s2.PointVector
	}{
		{"nil", nil},
		{"three vertices", valid[:3]},
		{"nan", with(1, s2.Point{Vector: r3.Vector{X: math.NaN(), Y: 0, Z: 1}})},
		{"inf", with(2, s2.Point{Vector: r3.Vector{X: 0, Y: math.Inf(1), Z: 0}})},
		{"not unit", with(0, s2.Point{Vector: r3.Vector{X: 2, Y: 0, Z: 0}})},
		{"zero", with(3, s2.Point{})},
		{"pole duplicate", with(0, valid[len(valid)-1])},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := NewTriangulation(tt.vertices)
			if !errors.Is(err, delaunay.ErrInvalidArgument) {
				t.Errorf("NewTriangulation(...) error = %v, want ErrInvalidArgument", err)
			}
			if dt != nil {
				t.Errorf("NewTriangulation(...) = %v, want nil", dt)
			}
		})
	}
}

func TestNewTriangulation_DegenerateInput(t *testing.T) {
	// Every vertex on the great circle y = 0, which passes through the pole.
	var vertices s2.PointVector
	for _, angle := range []float64{-2, -1, 0, 0.5, 1, 2.5} {
		vertices = append(vertices, s2.PointFromCoords(math.Cos(angle), 0, math.Sin(angle)))
	}
	vertices = append(vertices, s2.PointFromCoords(0, 0, 1))

	if _, err := NewTriangulation(vertices); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("NewTriangulation(...) error = %v, want ErrDegenerateInput", err)
	}
}

func TestNewTriangulation_VerticesOnSphere(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i, p := range dt.Vertices {
		norm := p.Norm()
		if math.Abs(norm-1.0) > defaultEps {
			t.Errorf(
				"dt.Vertices[%d] norm = %v, want ~1.0", i,
				norm)
		}
	}
}

func TestNewTriangulation_Counts(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"minimal", 4},
		{"small", 10},
		{"medium", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := mustNewTriangulation(t, tt.size)

			// Euler's formula for a triangulated sphere: F = 2n - 4.
			if got, want := len(dt.Triangles), 2*tt.size-4; got != want {
				t.Errorf("len(dt.Triangles) = %v, want %v", got, want)
			}
			if got, want := len(dt.Triangles)-dt.NumPlanarTriangles, len(dt.Hull); got != want {
				t.Errorf("pole triangles = %v, want %v", got, want)
			}
			if got, want := dt.Pole, tt.size-1; got != want {
				t.Errorf("dt.Pole = %v, want %v", got, want)
			}
			if got, want := len(dt.IncidentTriangles(dt.Pole)), len(dt.Hull); got != want {
				t.Errorf("len(dt.IncidentTriangles(pole)) = %v, want %v", got, want)
			}
		})
	}
}

func TestNewTriangulation_VerifyTrianglesCCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		if got := s2.RobustSign(a, b, c); got != s2.CounterClockwise {
			t.Errorf("dt.Triangles[%d] orientation = %v, want CounterClockwise", i, got)
		}
	}
}

func TestNewTriangulation_VerifyIncidentTrianglesSorted(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for vIdx := range len(dt.Vertices) {
		incidentTris := dt.IncidentTriangles(vIdx)
		n := len(incidentTris)
		for i := range n {
			ct := dt.Triangles[incidentTris[i]]
			nt := dt.Triangles[incidentTris[(i+1)%n]]

			prevVertex := PrevVertex(ct, vIdx)
			nextVertex := NextVertex(nt, vIdx)
			if nextVertex != prevVertex {
				t.Errorf("dt.IncidentTriangles(%d) triangles %d and %d are not CCW neighbors", vIdx, i, (i+1)%n)
			}
		}
	}
}

func TestNewTriangulation_EmptyCircumcircles(t *testing.T) {
	dt := mustNewTriangulation(t, 200)

	for tIdx := range dt.Triangles {
		c := dt.Circumcenter(tIdx)
		a, b, cc := dt.TriangleVertices(tIdx)
		r := c.Dot(a.Vector)
		for _, p := range []s2.Point{b, cc} {
			if got := c.Dot(p.Vector); math.Abs(got-r) > 1e-9 {
				t.Errorf("dt.Circumcenter(%d) not equidistant: %v vs %v", tIdx, got, r)
			}
		}
		for i, p := range dt.Vertices {
			if c.Dot(p.Vector) > r+1e-9 {
				t.Errorf("vertex %d lies inside the circumcircle of triangle %d", i, tIdx)
				break
			}
		}
	}
}

func TestNewTriangulation_MatchesConvexHull(t *testing.T) {
	sizes := []int{4, 10, 100, 1000}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("N%d", size), func(t *testing.T) {
			dt := mustNewTriangulation(t, size)

			v3 := make([]r3.Vector, len(dt.Vertices))
			for i, p := range dt.Vertices {
				v3[i] = p.Vector
			}
			ch := new(quickhull.QuickHull).ConvexHull(v3, true, true, 0)

			want := make([][3]int, 0, len(ch.Indices)/3)
			for i := 0; i+2 < len(ch.Indices); i += 3 {
				want = append(want, sortedTriple(ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]))
			}
			got := make([][3]int, 0, len(dt.Triangles))
			for _, tri := range dt.Triangles {
				got = append(got, sortedTriple(tri[0], tri[1], tri[2]))
			}

			if diff := cmp.Diff(want, got, sortTriples); diff != "" {
				t.Errorf("dt.Triangles differ from the convex hull (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		Vertices:                nil,
		Triangles:               nil,
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if !cmp.Equal(tt.want, got) {
				t.Errorf("dt.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.IncidentTriangleOffsets))
}

func TestTriangulation_TriangleVertices(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.TriangleVertices(%d) did not panic, want panic", in)
			}
		}()
		dt.TriangleVertices(in)
	}

	points := utils.GenerateRandomPoints(3, 0)
	dt := &Triangulation{
		Vertices: s2.PointVector{points[0], points[1], points[2]},
		Triangles: [][3]int{
			{0, 1, 2},
		},
	}

	want := [3]s2.Point{points[0], points[1], points[2]}
	a, b, c := dt.TriangleVertices(0)
	got := [3]s2.Point{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dt.TriangleVertices(0) mismatch (-want +got):\n%s", diff)
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.Triangles))
}

func TestTriangulation_Circumcenter(t *testing.T) {
	dt := &Triangulation{
		Vertices: s2.PointVector{
			s2.PointFromCoords(1, 0, 0),
			s2.PointFromCoords(0, 1, 0),
			s2.PointFromCoords(0, 0, 1),
		},
		Triangles: [][3]int{{0, 1, 2}, {2, 1, 0}},
	}

	tests := []struct {
		name string
		tIdx int
		want s2.Point
	}{
		{"ccw", 0, s2.PointFromCoords(1, 1, 1)},
		{"cw", 1, s2.PointFromCoords(-1, -1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dt.Circumcenter(tt.tIdx); got.Distance(tt.want) > 1e-9 {
				t.Errorf("dt.Circumcenter(%d) = %v, want %v", tt.tIdx, got, tt.want)
			}
		})
	}
}

func TestSortIncidentTriangleIndicesCCW(t *testing.T) {
	expected3 := []int{0, 1, 2}
	incident3 := []int{0, 2, 1}
	tris3 := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
	}
	sortIncidentTriangleIndicesCCW(0, incident3, tris3)
	if !cyclicEqual(incident3, expected3) {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) incident3 = %v, want %v", incident3, expected3)
	}

	expected4 := []int{1, 2, 3, 0}
	incident4 := []int{1, 3, 2, 0}
	tris4 := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
	}
	sortIncidentTriangleIndicesCCW(0, incident4, tris4)
	if !cyclicEqual(incident4, expected4) {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) incident4 = %v, want %v", incident4, expected4)
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Benchmarks

func BenchmarkConvexHull(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, 0)
			v3 := make([]r3.Vector, len(points))
			for i, p := range points {
				v3[i] = p.Vector
			}

			qh := new(quickhull.QuickHull)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				qh.ConvexHull(v3, true, true, 0)
			}
		})
	}
}

func BenchmarkNewTriangulation(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := NewTriangulation(points)
				if err != nil {
					b.Fatalf("NewTriangulation(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

var sortTriples = cmpopts.SortSlices(func(a, b [3]int) bool {
	return slices.Compare(a[:], b[:]) < 0
})

func mustNewTriangulation(t *testing.T, n int) *Triangulation {
	t.Helper()
	vertices := utils.GenerateRandomPoints(n, 0)

	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	return dt
}

func sortedTriple(a, b, c int) [3]int {
	t := [3]int{a, b, c}
	slices.Sort(t[:])
	return t
}

func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	n := len(a)
	for i := range n {
		if b[0] != a[i] {
			continue
		}

		equal := true
		for j := range n {
			if a[(i+j)%n] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}

	return false
}

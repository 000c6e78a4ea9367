// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"github.com/golang/geo/r2"
)

// ClippedPolygon returns the cell of site i intersected with d.Bounds as a CCW
// polygon. Closed cells are clipped directly; open cells and cells of
// collinear input are cut out of the bounds by the bisectors between the site
// and each of its neighbors. Sites without a cell, or whose cell misses the
// bounds, yield nil.
func (d *Diagram) ClippedPolygon(i int) []r2.Point {
	if d.Closed(i) {
		cell := d.CellVertices[d.CellOffsets[i]:d.CellOffsets[i+1]]
		poly := make([]r2.Point, len(cell))
		for k, t := range cell {
			poly[k] = d.Circumcenters[t]
		}
		return clipToRect(poly, d.Bounds)
	}

	neighbors := d.Neighbors(i)
	if len(neighbors) == 0 {
		return nil
	}

	v := d.Bounds.Vertices()
	poly := v[:]
	site := d.Sites[i]
	for _, j := range neighbors {
		n, c := bisector(site, d.Sites[j])
		poly = clipHalfPlane(poly, n, c)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// bisector returns the half-plane n·x <= c of points at least as close to a
// as to b.
func bisector(a, b r2.Point) (r2.Point, float64) {
	n := b.Sub(a)
	c := (b.Dot(b) - a.Dot(a)) / 2
	return n, c
}

func clipToRect(poly []r2.Point, r r2.Rect) []r2.Point {
	planes := [4]struct {
		n r2.Point
		c float64
	}{
		{r2.Point{X: -1}, -r.X.Lo},
		{r2.Point{X: 1}, r.X.Hi},
		{r2.Point{Y: -1}, -r.Y.Lo},
		{r2.Point{Y: 1}, r.Y.Hi},
	}
	for _, pl := range planes {
		poly = clipHalfPlane(poly, pl.n, pl.c)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// clipHalfPlane returns the part of the convex polygon poly where n·x <= c
// (Sutherland-Hodgman against a single edge). The input is not modified.
func clipHalfPlane(poly []r2.Point, n r2.Point, c float64) []r2.Point {
	out := make([]r2.Point, 0, len(poly)+1)
	for k, a := range poly {
		b := poly[(k+1)%len(poly)]
		da := n.Dot(a) - c
		db := n.Dot(b) - c
		if da <= 0 {
			out = append(out, a)
		}
		if (da <= 0) != (db <= 0) {
			t := da / (da - db)
			out = append(out, a.Add(b.Sub(a).Mul(t)))
		}
	}
	return out
}

// polygonArea returns the signed area of poly, positive when CCW.
func polygonArea(poly []r2.Point) float64 {
	var area float64
	for k, a := range poly {
		area += a.Cross(poly[(k+1)%len(poly)])
	}
	return area / 2
}

// polygonCentroid returns the area centroid of poly. Degenerate polygons fall
// back to the mean of their vertices.
func polygonCentroid(poly []r2.Point) r2.Point {
	var cx, cy, area float64
	for k, a := range poly {
		b := poly[(k+1)%len(poly)]
		cr := a.Cross(b)
		area += cr
		cx += (a.X + b.X) * cr
		cy += (a.Y + b.Y) * cr
	}
	if area == 0 {
		var sum r2.Point
		for _, p := range poly {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(poly)))
	}
	return r2.Point{X: cx / (3 * area), Y: cy / (3 * area)}
}

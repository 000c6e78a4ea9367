// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides point generators for tests, benchmarks and examples
// of the planar and spherical diagrams.
package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates a vector of random points on the S2 sphere.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make(s2.PointVector, cnt)

	for i := range cnt {
		sites[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(random.Float64()*2 - 1)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		})
	}

	return sites
}

// GenerateRandomPlanarPoints generates cnt points uniformly distributed in
// the unit square [0,1)x[0,1). The seed parameter ensures reproducibility.
func GenerateRandomPlanarPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateGrid generates an nx by ny grid of points with unit spacing,
// starting at the origin, row by row.
func GenerateGrid(nx, ny int) []r2.Point {
	points := make([]r2.Point, 0, nx*ny)
	for y := range ny {
		for x := range nx {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

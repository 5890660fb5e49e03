// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_polygon.go - Polygon(n, opts...) constructor.
//
// Contract:
//   • n ≥ MinPolygonSides, otherwise ErrTooFewSides.
//   • Vertex k sits at angle 2πk/n on the unit circle in the XY plane,
//     counter-clockwise, before scaling and translation.
//   • The single face is open: none of its halfedges has an opposite.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Polygon returns a mesh holding one regular n-gon.
func Polygon(n int, opts ...BuilderOption) (*halfedge.Mesh, error) {
	if n < MinPolygonSides {
		return nil, builderErrorf(MethodPolygon, "n=%d", ErrTooFewSides, n)
	}
	cfg := newBuilderConfig(opts...)

	points := make([]r3.Vec, n)
	face := make([]int, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		points[k] = cfg.place(r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)})
		face[k] = k
	}

	return halfedge.FromPolygons(points, [][]int{face})
}

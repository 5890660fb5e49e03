// SPDX-License-Identifier: MIT
// Package halfedge_test holds fixtures and assertion helpers shared by the
// halfedge tests.

package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// vecTolerance bounds per-component float error in geometric assertions.
const vecTolerance = 1e-12

// Flat polygon fixtures with hand-computed centroids.
var (
	trianglePoints = []r3.Vec{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}
	quadPoints     = []r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	pentagonPoints = []r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 4}, {X: -1, Y: 2}}
)

// cubePoints/cubeFaces describe the [-1,1]^3 cube with outward winding.
var (
	cubePoints = []r3.Vec{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	cubeFaces = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
)

// singleFace builds an open mesh holding one polygon over all points.
func singleFace(t *testing.T, points []r3.Vec) *halfedge.Mesh {
	t.Helper()
	face := make([]int, len(points))
	for i := range face {
		face[i] = i
	}
	m, err := halfedge.FromPolygons(points, [][]int{face})
	require.NoError(t, err)

	return m
}

// cube builds the closed cube fixture.
func cube(t *testing.T) *halfedge.Mesh {
	t.Helper()
	m, err := halfedge.FromPolygons(cubePoints, cubeFaces)
	require.NoError(t, err)

	return m
}

// requireVecNear asserts component-wise closeness of two vectors.
func requireVecNear(t *testing.T, want, got r3.Vec, msg string) {
	t.Helper()
	require.InDelta(t, want.X, got.X, vecTolerance, "%s: X", msg)
	require.InDelta(t, want.Y, got.Y, vecTolerance, "%s: Y", msg)
	require.InDelta(t, want.Z, got.Z, vecTolerance, "%s: Z", msg)
}

// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go - Solid(name, opts...) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron}; anything else → ErrUnknownSolid.
//   • Canonical coordinates are scaled then translated (WithScale, WithCenter).
//   • The result is closed: every halfedge has an opposite.
//
// Complexity:
//   • Time O(V+H), constants V≤8, H≤24.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Solid returns a fresh mesh of the named solid.
func Solid(name SolidName, opts ...BuilderOption) (*halfedge.Mesh, error) {
	table, ok := solidTables[name]
	if !ok {
		return nil, builderErrorf(MethodSolid, "%d", ErrUnknownSolid, int(name))
	}
	cfg := newBuilderConfig(opts...)

	points := make([]r3.Vec, len(table.points))
	for i, p := range table.points {
		points[i] = cfg.place(p)
	}
	m, err := halfedge.FromPolygons(points, table.faces)
	if err != nil {
		return nil, builderErrorf(MethodSolid, "%s", err, name)
	}

	return m, nil
}

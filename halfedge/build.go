// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// build.go - conversion between polygon soups and half-edge meshes.
//
// Contract:
//   • Point i becomes VertexID(i); polygon j becomes FaceID(j).
//   • Polygon corners are taken in the given winding; halfedge k of a
//     polygon runs corner k → corner k+1.
//   • Opposites are linked with LinkOpposites; edges without a reverse stay open.

package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodFromPolygons = "FromPolygons"
	methodPolygons     = "Polygons"
)

// FromPolygons builds a fully linked mesh from points and polygons given as
// point-index lists.
//
// Implementation:
//   • Stage 1: Validate every polygon (>= 3 corners, indices in range).
//   • Stage 2: Add all vertices, then per polygon one face and one halfedge per
//     corner; register origins, chain Next, set the face representative.
//   • Stage 3: Pair opposites.
//
// Errors:
//   • ErrDegenerateFace for polygons with fewer than three corners.
//   • ErrIndexOutOfRange for indices outside [0, len(points)).
//   • ErrNonManifold if two polygons traverse the same directed edge.
//
// Complexity:
//   • Time O(V + H), Space O(V + H).
func FromPolygons(points []r3.Vec, polygons [][]int) (*Mesh, error) {
	halfedges := 0
	for j, poly := range polygons {
		if len(poly) < 3 {
			return nil, fmt.Errorf("%s: polygon %d has %d corners: %w", methodFromPolygons, j, len(poly), ErrDegenerateFace)
		}
		for _, idx := range poly {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%s: polygon %d index %d: %w", methodFromPolygons, j, idx, ErrIndexOutOfRange)
			}
		}
		halfedges += len(poly)
	}

	m := New()
	m.Reserve(len(points), halfedges, len(polygons))
	for _, p := range points {
		m.AddVertex(p)
	}

	for _, poly := range polygons {
		f := m.AddFace()
		first := NoHalfedge
		prev := NoHalfedge
		for _, idx := range poly {
			h := m.AddHalfedge()
			if err := m.SetOrigin(h, VertexID(idx)); err != nil {
				return nil, err
			}
			m.halfedges[h].Face = f
			if prev.Valid() {
				m.halfedges[prev].Next = h
			} else {
				first = h
			}
			prev = h
		}
		m.halfedges[prev].Next = first
		m.faces[f].Halfedge = first
	}

	if _, err := m.LinkOpposites(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromPolygons, err)
	}

	return m, nil
}

// Polygons exports the mesh as a polygon soup: the position of every vertex
// and, per face, its vertex ids as ints in boundary order.
func (m *Mesh) Polygons() (points []r3.Vec, polygons [][]int, err error) {
	points = make([]r3.Vec, len(m.vertices))
	for i, v := range m.vertices {
		points[i] = v.Position
	}
	polygons = make([][]int, 0, len(m.faces))
	for f := range m.Faces() {
		vs, err := m.FaceVertices(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodPolygons, err)
		}
		poly := make([]int, len(vs))
		for i, v := range vs {
			poly[i] = int(v)
		}
		polygons = append(polygons, poly)
	}

	return points, polygons, nil
}

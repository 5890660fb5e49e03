// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// validate.go - structural invariant checks.
//
// Checked invariants:
//   • opposite(opposite(h)) == h for every paired halfedge.
//   • Every face boundary closes under Next, has degree >= 3, and each of its
//     halfedges names that face.
//   • Every halfedge has an origin, and the origin's incidence set contains it.
//   • Every id in an incidence set names a halfedge originating at that vertex.

package halfedge

import "fmt"

const methodValidate = "Validate"

// Validate reports the first violated invariant, or nil.
//
// Complexity:
//   • Time O(V + H + F), Space O(max face degree).
func (m *Mesh) Validate() error {
	for i, he := range m.halfedges {
		h := HalfedgeID(i)
		if he.Opposite.Valid() {
			twin, err := m.halfedgeRecord(methodValidate, he.Opposite)
			if err != nil {
				return err
			}
			if twin.Opposite != h {
				return fmt.Errorf("%s: halfedge %d -> %d -> %d: %w", methodValidate, h, he.Opposite, twin.Opposite, ErrOppositeMismatch)
			}
		}
		origin, err := m.vertexRecord(methodValidate, he.Vertex)
		if err != nil {
			return fmt.Errorf("%s: halfedge %d origin: %w", methodValidate, h, err)
		}
		if !origin.outgoing.Contains(h) {
			return fmt.Errorf("%s: halfedge %d missing from vertex %d: %w", methodValidate, h, he.Vertex, ErrIncidenceMismatch)
		}
	}

	for i, v := range m.vertices {
		for _, h := range v.Outgoing() {
			he, err := m.halfedgeRecord(methodValidate, h)
			if err != nil {
				return err
			}
			if he.Vertex != VertexID(i) {
				return fmt.Errorf("%s: vertex %d lists halfedge %d of vertex %d: %w", methodValidate, i, h, he.Vertex, ErrIncidenceMismatch)
			}
		}
	}

	for f := range m.Faces() {
		hs, err := m.FaceBoundary(f)
		if err != nil {
			return fmt.Errorf("%s: face %d: %w", methodValidate, f, err)
		}
		if len(hs) < 3 {
			return fmt.Errorf("%s: face %d has degree %d: %w", methodValidate, f, len(hs), ErrDegenerateFace)
		}
		for _, h := range hs {
			if m.halfedges[h].Face != f {
				return fmt.Errorf("%s: halfedge %d on boundary of face %d names face %d: %w",
					methodValidate, h, f, m.halfedges[h].Face, ErrBrokenCycle)
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// twins.go - opposite-link remediation by (origin, destination) matching.
//
// Contract:
//   • Every unpaired halfedge u→v is paired with the unique halfedge v→u, if any.
//   • Existing pairings are kept untouched.
//   • A directed edge u→v that occurs twice is non-manifold and rejected
//     before any link is written.
//
// Complexity:
//   • Time O(H), Space O(H) for the directed-edge index.

package halfedge

import "fmt"

const methodLinkOpposites = "LinkOpposites"

// directedEdge keys a halfedge by its endpoints.
type directedEdge struct {
	from, to VertexID
}

// LinkOpposites pairs every unpaired halfedge with its reverse and returns
// how many halfedges remain without an opposite (open boundary).
//
// Implementation:
//   • Stage 1: Index all halfedges by (origin, destination); duplicates fail.
//   • Stage 2: For each unpaired halfedge, look up (destination, origin) and
//     pair with it when that halfedge is also unpaired.
//
// Errors:
//   • ErrNonManifold if a directed edge repeats.
//   • Lookup errors for halfedges with dangling Next or origin.
func (m *Mesh) LinkOpposites() (unmatched int, err error) {
	index := make(map[directedEdge]HalfedgeID, len(m.halfedges))
	dest := make([]VertexID, len(m.halfedges))
	for i, he := range m.halfedges {
		h := HalfedgeID(i)
		to, err := m.Destination(h)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodLinkOpposites, err)
		}
		dest[i] = to
		key := directedEdge{from: he.Vertex, to: to}
		if prev, dup := index[key]; dup {
			return 0, fmt.Errorf("%s: halfedges %d and %d both run %d->%d: %w",
				methodLinkOpposites, prev, h, key.from, key.to, ErrNonManifold)
		}
		index[key] = h
	}

	for i, he := range m.halfedges {
		h := HalfedgeID(i)
		if he.Opposite.Valid() {
			continue
		}
		twin, ok := index[directedEdge{from: dest[i], to: he.Vertex}]
		if !ok || twin == h || m.halfedges[twin].Opposite.Valid() {
			unmatched++
			continue
		}
		if err := m.SetOpposite(h, twin); err != nil {
			return 0, fmt.Errorf("%s: %w", methodLinkOpposites, err)
		}
	}

	return unmatched, nil
}

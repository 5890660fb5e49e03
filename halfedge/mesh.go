// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// mesh.go - creation, linking, typed lookups and counts.
//
// Contract:
//   • Ids are handed out densely in creation order: 0, 1, 2, ...
//   • Lookups fail with ErrVertexNotFound / ErrHalfedgeNotFound / ErrFaceNotFound
//     wrapped with the calling method and the offending id.
//   • There are no deletion operations; ids stay valid for the mesh lifetime.
//
// Complexity:
//   • Every operation here is O(1) amortized.

package halfedge

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"gonum.org/v1/gonum/spatial/r3"
)

// Method tags used for error wrapping.
const (
	methodVertex        = "Vertex"
	methodHalfedge      = "Halfedge"
	methodFace          = "Face"
	methodLinkHalfedges = "LinkHalfedges"
	methodSetOrigin     = "SetOrigin"
	methodSetOpposite   = "SetOpposite"
)

// Reserve grows the arenas so that at least the given number of additional
// entities can be added without reallocation.
//
// Negative hints are treated as zero. Reserve never changes any count.
func (m *Mesh) Reserve(vertices, halfedges, faces int) {
	m.vertices = slices.Grow(m.vertices, max(vertices, 0))
	m.halfedges = slices.Grow(m.halfedges, max(halfedges, 0))
	m.faces = slices.Grow(m.faces, max(faces, 0))
}

// AddVertex appends a vertex at pos with an empty incidence set.
func (m *Mesh) AddVertex(pos r3.Vec) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, &Vertex{Position: pos, outgoing: linkedhashset.New()})

	return id
}

// AddHalfedge appends a halfedge with every relation unset.
//
// Implementation:
//   • Stage 1: Append a record with Vertex/Face/Next/Opposite set to the No* markers.
//   • Stage 2: Count it as its own edge until SetOpposite pairs it.
//
// Callers fill the relations afterwards (SetOrigin, LinkHalfedges,
// SetOpposite, HalfedgeMut), because Next and Opposite are cyclic and cannot
// be known at creation time.
func (m *Mesh) AddHalfedge() HalfedgeID {
	id := HalfedgeID(len(m.halfedges))
	m.halfedges = append(m.halfedges, &Halfedge{
		Vertex:   NoVertex,
		Face:     NoFace,
		Next:     NoHalfedge,
		Opposite: NoHalfedge,
	})
	m.edgeCount++

	return id
}

// AddFace appends a face without a representative halfedge.
func (m *Mesh) AddFace() FaceID {
	id := FaceID(len(m.faces))
	m.faces = append(m.faces, &Face{Halfedge: NoHalfedge})

	return id
}

// LinkHalfedges sets a.Next = b.
//
// Errors:
//   • ErrHalfedgeNotFound if either id is dangling.
func (m *Mesh) LinkHalfedges(a, b HalfedgeID) error {
	ha, err := m.halfedgeRecord(methodLinkHalfedges, a)
	if err != nil {
		return err
	}
	if _, err = m.halfedgeRecord(methodLinkHalfedges, b); err != nil {
		return err
	}
	ha.Next = b

	return nil
}

// SetOrigin makes v the origin of h and keeps incidence sets consistent:
// h leaves its previous origin's set and joins v's.
//
// Errors:
//   • ErrHalfedgeNotFound, ErrVertexNotFound on dangling ids.
func (m *Mesh) SetOrigin(h HalfedgeID, v VertexID) error {
	he, err := m.halfedgeRecord(methodSetOrigin, h)
	if err != nil {
		return err
	}
	vert, err := m.vertexRecord(methodSetOrigin, v)
	if err != nil {
		return err
	}
	if he.Vertex == v {
		return nil
	}
	if he.Vertex.Valid() && int(he.Vertex) < len(m.vertices) {
		m.vertices[he.Vertex].outgoing.Remove(h)
	}
	he.Vertex = v
	vert.outgoing.Add(h)

	return nil
}

// SetOpposite pairs a and b as twins, symmetrically.
//
// Implementation:
//   • Stage 1: Resolve both records.
//   • Stage 2: Reject a == b and halfedges already paired with someone else.
//   • Stage 3: Link both directions and decrement the edge tally once.
//
// Errors:
//   • ErrHalfedgeNotFound on dangling ids.
//   • ErrOppositeMismatch when a == b or either side is already paired elsewhere.
func (m *Mesh) SetOpposite(a, b HalfedgeID) error {
	ha, err := m.halfedgeRecord(methodSetOpposite, a)
	if err != nil {
		return err
	}
	hb, err := m.halfedgeRecord(methodSetOpposite, b)
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%s: halfedge %d with itself: %w", methodSetOpposite, a, ErrOppositeMismatch)
	}
	if ha.Opposite == b && hb.Opposite == a {
		return nil
	}
	if ha.Opposite.Valid() || hb.Opposite.Valid() {
		return fmt.Errorf("%s: %d/%d already paired: %w", methodSetOpposite, a, b, ErrOppositeMismatch)
	}
	ha.Opposite = b
	hb.Opposite = a
	m.edgeCount--

	return nil
}

// Vertex returns a copy of the vertex record.
func (m *Mesh) Vertex(id VertexID) (Vertex, error) {
	v, err := m.vertexRecord(methodVertex, id)
	if err != nil {
		return Vertex{}, err
	}

	return *v, nil
}

// VertexMut returns the stored vertex for in-place edits of Position.
// Use SetOrigin rather than touching incidence directly.
func (m *Mesh) VertexMut(id VertexID) (*Vertex, error) {
	return m.vertexRecord(methodVertex, id)
}

// Halfedge returns a copy of the halfedge record.
func (m *Mesh) Halfedge(id HalfedgeID) (Halfedge, error) {
	h, err := m.halfedgeRecord(methodHalfedge, id)
	if err != nil {
		return Halfedge{}, err
	}

	return *h, nil
}

// HalfedgeMut returns the stored halfedge for in-place edits.
//
// Notes:
//   • Writing Vertex or Opposite directly bypasses the incidence and edge
//     tallies; prefer SetOrigin and SetOpposite.
func (m *Mesh) HalfedgeMut(id HalfedgeID) (*Halfedge, error) {
	return m.halfedgeRecord(methodHalfedge, id)
}

// Face returns a copy of the face record.
func (m *Mesh) Face(id FaceID) (Face, error) {
	f, err := m.faceRecord(methodFace, id)
	if err != nil {
		return Face{}, err
	}

	return *f, nil
}

// FaceMut returns the stored face for in-place edits.
func (m *Mesh) FaceMut(id FaceID) (*Face, error) {
	return m.faceRecord(methodFace, id)
}

// VertexCount is the size of the vertex arena.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// HalfedgeCount is the size of the halfedge arena.
func (m *Mesh) HalfedgeCount() int { return len(m.halfedges) }

// FaceCount is the size of the face arena.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// EdgeCount is the number of distinct canonical halfedge ids: paired
// halfedges count once, unpaired ones count individually.
func (m *Mesh) EdgeCount() int { return m.edgeCount }

// Stats returns all counts at once.
func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:  m.VertexCount(),
		Halfedges: m.HalfedgeCount(),
		Edges:     m.EdgeCount(),
		Faces:     m.FaceCount(),
	}
}

func (m *Mesh) vertexRecord(method string, id VertexID) (*Vertex, error) {
	if id < 0 || int(id) >= len(m.vertices) {
		return nil, fmt.Errorf("%s: vertex %d: %w", method, id, ErrVertexNotFound)
	}

	return m.vertices[id], nil
}

func (m *Mesh) halfedgeRecord(method string, id HalfedgeID) (*Halfedge, error) {
	if id < 0 || int(id) >= len(m.halfedges) {
		return nil, fmt.Errorf("%s: halfedge %d: %w", method, id, ErrHalfedgeNotFound)
	}

	return m.halfedges[id], nil
}

func (m *Mesh) faceRecord(method string, id FaceID) (*Face, error) {
	if id < 0 || int(id) >= len(m.faces) {
		return nil, fmt.Errorf("%s: face %d: %w", method, id, ErrFaceNotFound)
	}

	return m.faces[id], nil
}

// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// types.go - ids, entity records, sentinel errors and the Mesh arenas.
//
// Errors:
//
//	ErrVertexNotFound     - id does not address a live vertex.
//	ErrHalfedgeNotFound   - id does not address a live halfedge.
//	ErrFaceNotFound       - id does not address a live face.
//	ErrBrokenCycle        - Next walk does not return to its start.
//	ErrDegenerateFace     - face with fewer than 3 corners.
//	ErrOppositeMismatch   - opposite links are not symmetric.
//	ErrIncidenceMismatch  - incidence set disagrees with halfedge origins.
//	ErrNonManifold        - a directed edge occurs more than once.
//	ErrIndexOutOfRange    - polygon soup references a missing point.
package halfedge

import (
	"errors"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for half-edge mesh operations.
var (
	// ErrVertexNotFound indicates a lookup referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("halfedge: vertex not found")

	// ErrHalfedgeNotFound indicates a lookup referenced a non-existent halfedge.
	ErrHalfedgeNotFound = errors.New("halfedge: halfedge not found")

	// ErrFaceNotFound indicates a lookup referenced a non-existent face.
	ErrFaceNotFound = errors.New("halfedge: face not found")

	// ErrBrokenCycle indicates that following Next never returns to the start.
	ErrBrokenCycle = errors.New("halfedge: broken next cycle")

	// ErrDegenerateFace indicates a face with fewer than three corners.
	ErrDegenerateFace = errors.New("halfedge: face has fewer than 3 corners")

	// ErrOppositeMismatch indicates opposite(opposite(h)) != h.
	ErrOppositeMismatch = errors.New("halfedge: asymmetric opposite link")

	// ErrIncidenceMismatch indicates a vertex incidence set that disagrees with halfedge origins.
	ErrIncidenceMismatch = errors.New("halfedge: vertex incidence mismatch")

	// ErrNonManifold indicates the same directed edge is used by more than one halfedge.
	ErrNonManifold = errors.New("halfedge: non-manifold directed edge")

	// ErrIndexOutOfRange indicates a polygon references a point index that does not exist.
	ErrIndexOutOfRange = errors.New("halfedge: point index out of range")
)

// VertexID addresses a vertex inside one Mesh.
type VertexID int

// HalfedgeID addresses a halfedge inside one Mesh.
type HalfedgeID int

// FaceID addresses a face inside one Mesh.
type FaceID int

// Unset markers for relation fields.
const (
	NoVertex   VertexID   = -1
	NoHalfedge HalfedgeID = -1
	NoFace     FaceID     = -1
)

// Valid reports whether id is not the NoVertex marker.
func (id VertexID) Valid() bool { return id >= 0 }

// Valid reports whether id is not the NoHalfedge marker.
func (id HalfedgeID) Valid() bool { return id >= 0 }

// Valid reports whether id is not the NoFace marker.
func (id FaceID) Valid() bool { return id >= 0 }

// Vertex is a point of the mesh together with the set of halfedges that
// originate at it.
//
// The incidence set keeps insertion order, so traversals that sum over a
// vertex ring are reproducible. Copies returned by Mesh.Vertex share the set.
type Vertex struct {
	// Position is the vertex location.
	Position r3.Vec

	outgoing *linkedhashset.Set // HalfedgeID values
}

// Outgoing returns the ids of halfedges originating at v, in insertion order.
func (v Vertex) Outgoing() []HalfedgeID {
	if v.outgoing == nil {
		return nil
	}
	values := v.outgoing.Values()
	out := make([]HalfedgeID, len(values))
	for i, val := range values {
		out[i] = val.(HalfedgeID)
	}

	return out
}

// Valence is the number of halfedges originating at v.
func (v Vertex) Valence() int {
	if v.outgoing == nil {
		return 0
	}

	return v.outgoing.Size()
}

// Halfedge is one directed side of an edge.
type Halfedge struct {
	// Vertex is the origin vertex.
	Vertex VertexID

	// Face is the face this halfedge bounds.
	Face FaceID

	// Next is the following halfedge around Face.
	Next HalfedgeID

	// Opposite is the twin across the shared edge, or NoHalfedge on an open edge.
	Opposite HalfedgeID
}

// Face is a polygon, represented by one of its boundary halfedges.
type Face struct {
	// Halfedge is any halfedge on the face boundary.
	Halfedge HalfedgeID
}

// Stats summarizes the element counts of a mesh.
type Stats struct {
	Vertices  int
	Halfedges int
	Edges     int
	Faces     int
}

// Mesh owns three arenas of vertices, halfedges and faces.
//
// Records are stored by pointer, so pointers returned by the *Mut accessors
// stay valid while the arenas grow.
// edgeCount tallies distinct canonical halfedge ids: +1 per AddHalfedge,
// -1 whenever SetOpposite pairs two previously unpaired halfedges.
type Mesh struct {
	vertices  []*Vertex
	halfedges []*Halfedge
	faces     []*Face

	edgeCount int
}

// New returns an empty Mesh.
// Complexity: O(1)
func New() *Mesh {
	return &Mesh{}
}

// SPDX-License-Identifier: MIT
// Package: lvmesh/subdivide
//
// catmull_clark.go - the memoizing Catmull-Clark subdivider.
//
// Dependency order of the three point caches:
//   • face points depend only on input positions;
//   • edge points depend on face points;
//   • vertex points depend on face points and edge midpoints.
//
// Each cache is filled lazily on first access, so a corner may pull in any of
// its dependencies; the order above guarantees the recursion terminates.
//
// Determinism:
//   • Output vertex ids follow first-access order, which follows input face
//     and halfedge storage order. Counts never depend on that order.

package subdivide

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

const (
	methodNew         = "New"
	methodGenerate    = "Generate"
	methodFacePoint   = "FacePoint"
	methodEdgePoint   = "EdgePoint"
	methodVertexPoint = "VertexPoint"
)

// faceData caches the centroid of an input face and its output vertex.
type faceData struct {
	center    r3.Vec
	generated halfedge.VertexID
}

// edgeData caches the midpoint of an input edge and its output vertex.
// The vertex rule consumes the midpoint, not the generated edge point.
type edgeData struct {
	midpoint  r3.Vec
	generated halfedge.VertexID
}

// CatmullClark computes one subdivision level of an input mesh into a new,
// exclusively owned output mesh.
//
// The input is only read. Caches are keyed by input ids: faces by FaceID,
// edges by the canonical halfedge of the edge, vertices by VertexID.
// faceScratch and midScratch are reused by every vertex-point computation.
type CatmullClark struct {
	input  *halfedge.Mesh
	output *halfedge.Mesh

	faces    map[halfedge.FaceID]faceData
	edges    map[halfedge.HalfedgeID]edgeData
	vertices map[halfedge.VertexID]halfedge.VertexID

	faceScratch []r3.Vec
	midScratch  []r3.Vec

	cfg       config
	generated bool
}

// New prepares a subdivider over input.
//
// Errors:
//   • ErrNilMesh if input is nil.
func New(input *halfedge.Mesh, opts ...Option) (*CatmullClark, error) {
	if input == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilMesh)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &CatmullClark{
		input:    input,
		output:   halfedge.New(),
		faces:    make(map[halfedge.FaceID]faceData, input.FaceCount()),
		edges:    make(map[halfedge.HalfedgeID]edgeData, input.HalfedgeCount()/2),
		vertices: make(map[halfedge.VertexID]halfedge.VertexID, input.VertexCount()),
		cfg:      cfg,
	}, nil
}

// Generate builds the subdivided mesh and hands it to the caller.
//
// Implementation:
//   • Stage 1: Reserve output capacity from the input counts.
//   • Stage 2: For each input face: get its face point, materialize its
//     boundary, and for every corner h → nh emit the quad
//     [face point, edge point(h), vertex point(origin(nh)), edge point(nh)].
//   • Stage 3: Unless disabled, pair the new halfedges' opposites.
//
// Returns:
//   • *halfedge.Mesh with H faces and V+E+F vertices (input counts).
//
// Errors:
//   • ErrAlreadyGenerated on a second call.
//   • Any input lookup failure, wrapped; no partial mesh is returned.
//
// Complexity:
//   • Time O(V + H + F) expected, Space O(V + H + F).
func (s *CatmullClark) Generate() (*halfedge.Mesh, error) {
	if s.generated {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrAlreadyGenerated)
	}
	s.generated = true

	in := s.input.Stats()
	s.cfg.logger.Debug("subdivide: catmull-clark start",
		"vertices", in.Vertices, "edges", in.Edges, "faces", in.Faces, "halfedges", in.Halfedges)
	s.reserve(in)

	for f := range s.input.Faces() {
		if err := s.subdivideFace(f); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}

	if s.cfg.linkOpposites {
		open, err := s.output.LinkOpposites()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		s.cfg.logger.Debug("subdivide: opposites linked", "open_halfedges", open)
	}

	out := s.output.Stats()
	s.cfg.logger.Debug("subdivide: catmull-clark done",
		"vertices", out.Vertices, "edges", out.Edges, "faces", out.Faces, "halfedges", out.Halfedges)

	return s.output, nil
}

// FacePoint returns the output vertex generated for input face f, creating it
// on first use.
func (s *CatmullClark) FacePoint(f halfedge.FaceID) (halfedge.VertexID, error) {
	d, err := s.face(f)
	if err != nil {
		return halfedge.NoVertex, err
	}

	return d.generated, nil
}

// EdgePoint returns the output vertex generated for the edge containing h.
// h and its opposite yield the same id.
func (s *CatmullClark) EdgePoint(h halfedge.HalfedgeID) (halfedge.VertexID, error) {
	d, err := s.edge(h)
	if err != nil {
		return halfedge.NoVertex, err
	}

	return d.generated, nil
}

// VertexPoint returns the output vertex generated for input vertex v.
func (s *CatmullClark) VertexPoint(v halfedge.VertexID) (halfedge.VertexID, error) {
	return s.vertex(v)
}

// reserve pre-sizes the output arenas. The figures assume a mostly-quad
// input; a miss only costs reallocation. Caches are sized in New.
func (s *CatmullClark) reserve(in halfedge.Stats) {
	s.output.Reserve(
		in.Vertices+in.Halfedges/2+in.Faces, // old vertices, one per edge, one per face
		in.Halfedges*4,
		in.Faces*4,
	)
}

// subdivideFace emits one quad per corner of input face f.
func (s *CatmullClark) subdivideFace(f halfedge.FaceID) error {
	fd, err := s.face(f)
	if err != nil {
		return err
	}
	// Owned copy: the loop below writes into the output mesh.
	boundary, err := s.input.FaceBoundary(f)
	if err != nil {
		return err
	}

	for _, h := range boundary {
		he, err := s.input.Halfedge(h)
		if err != nil {
			return err
		}
		next, err := s.input.Halfedge(he.Next)
		if err != nil {
			return err
		}
		e1, err := s.edge(h)
		if err != nil {
			return err
		}
		e2, err := s.edge(he.Next)
		if err != nil {
			return err
		}
		vp, err := s.vertex(next.Vertex)
		if err != nil {
			return err
		}
		if err := s.emitQuad([4]halfedge.VertexID{fd.generated, e1.generated, vp, e2.generated}); err != nil {
			return err
		}
	}

	return nil
}

// emitQuad adds one output face whose boundary visits corners in order.
func (s *CatmullClark) emitQuad(corners [4]halfedge.VertexID) error {
	out := s.output
	face := out.AddFace()

	var hs [4]halfedge.HalfedgeID
	for i, v := range corners {
		hs[i] = out.AddHalfedge()
		if err := out.SetOrigin(hs[i], v); err != nil {
			return err
		}
		he, err := out.HalfedgeMut(hs[i])
		if err != nil {
			return err
		}
		he.Face = face
	}
	for i := range hs {
		if err := out.LinkHalfedges(hs[i], hs[(i+1)%len(hs)]); err != nil {
			return err
		}
	}
	fm, err := out.FaceMut(face)
	if err != nil {
		return err
	}
	fm.Halfedge = hs[0]

	return nil
}

// face is the face-point cache.
func (s *CatmullClark) face(f halfedge.FaceID) (faceData, error) {
	if d, ok := s.faces[f]; ok {
		return d, nil
	}
	center, err := s.input.FaceCenter(f)
	if err != nil {
		return faceData{}, fmt.Errorf("%s: %w", methodFacePoint, err)
	}
	d := faceData{center: center, generated: s.output.AddVertex(center)}
	s.faces[f] = d

	return d, nil
}

// edge is the edge-point cache, keyed by the canonical halfedge.
//
// The edge point is the centroid of both endpoints and the face points of
// both adjacent faces; face points are pulled through the face cache.
func (s *CatmullClark) edge(h halfedge.HalfedgeID) (edgeData, error) {
	key, err := s.input.CanonicalHalfedge(h)
	if err != nil {
		return edgeData{}, fmt.Errorf("%s: %w", methodEdgePoint, err)
	}
	if d, ok := s.edges[key]; ok {
		return d, nil
	}

	he, err := s.input.Halfedge(key)
	if err != nil {
		return edgeData{}, fmt.Errorf("%s: %w", methodEdgePoint, err)
	}
	from, to, err := s.input.Endpoints(key)
	if err != nil {
		return edgeData{}, fmt.Errorf("%s: %w", methodEdgePoint, err)
	}
	mid := halfedge.Centroid(from, to)

	pos := mid
	if he.Opposite.Valid() {
		twin, err := s.input.Halfedge(he.Opposite)
		if err != nil {
			return edgeData{}, fmt.Errorf("%s: %w", methodEdgePoint, err)
		}
		f1, err := s.face(he.Face)
		if err != nil {
			return edgeData{}, err
		}
		f2, err := s.face(twin.Face)
		if err != nil {
			return edgeData{}, err
		}
		pos = halfedge.Centroid(f1.center, f2.center, from, to)
	}

	d := edgeData{midpoint: mid, generated: s.output.AddVertex(pos)}
	s.edges[key] = d

	return d, nil
}

// vertex is the vertex-point cache.
//
// new = (2*E + F + P*|n-3|) / n where n is the valence, F the mean of the
// adjacent face points, E the mean of the incident edge midpoints and P the
// original position.
func (s *CatmullClark) vertex(v halfedge.VertexID) (halfedge.VertexID, error) {
	if id, ok := s.vertices[v]; ok {
		return id, nil
	}
	vert, err := s.input.Vertex(v)
	if err != nil {
		return halfedge.NoVertex, fmt.Errorf("%s: %w", methodVertexPoint, err)
	}
	ring := vert.Outgoing()
	if len(ring) == 0 {
		return halfedge.NoVertex, fmt.Errorf("%s: vertex %d: %w", methodVertexPoint, v, ErrIsolatedVertex)
	}

	s.faceScratch = s.faceScratch[:0]
	s.midScratch = s.midScratch[:0]
	for _, h := range ring {
		he, err := s.input.Halfedge(h)
		if err != nil {
			return halfedge.NoVertex, fmt.Errorf("%s: %w", methodVertexPoint, err)
		}
		fd, err := s.face(he.Face)
		if err != nil {
			return halfedge.NoVertex, err
		}
		ed, err := s.edge(h)
		if err != nil {
			return halfedge.NoVertex, err
		}
		s.faceScratch = append(s.faceScratch, fd.center)
		s.midScratch = append(s.midScratch, ed.midpoint)
	}

	n := float64(len(ring))
	f := halfedge.Centroid(s.faceScratch...)
	e := halfedge.Centroid(s.midScratch...)
	pos := r3.Add(r3.Add(r3.Scale(2, e), f), r3.Scale(math.Abs(n-3), vert.Position))
	pos = r3.Scale(1/n, pos)

	id := s.output.AddVertex(pos)
	s.vertices[v] = id

	return id, nil
}

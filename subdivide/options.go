// SPDX-License-Identifier: MIT
// Package: lvmesh/subdivide
//
// options.go - functional options and sentinel errors.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil logger).
//   • Subdivision itself never panics; failures surface as wrapped sentinels.

package subdivide

import (
	"errors"
	"log/slog"
)

// Sentinel errors for subdivision.
var (
	// ErrNilMesh indicates a nil input mesh.
	ErrNilMesh = errors.New("subdivide: nil mesh")

	// ErrAlreadyGenerated indicates Generate was called twice on one CatmullClark.
	ErrAlreadyGenerated = errors.New("subdivide: output already generated")

	// ErrIsolatedVertex indicates a corner vertex without outgoing halfedges.
	ErrIsolatedVertex = errors.New("subdivide: vertex has no incident halfedges")

	// ErrNegativeLevels indicates a negative level count.
	ErrNegativeLevels = errors.New("subdivide: levels must be >= 0")
)

// Option customizes a CatmullClark before generation.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	linkOpposites bool
}

func defaultConfig() config {
	return config{
		logger:        slog.Default(),
		linkOpposites: true,
	}
}

// WithLogger routes debug records to logger instead of slog.Default().
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("subdivide: WithLogger(nil)")
	}
	return func(c *config) { c.logger = logger }
}

// WithOppositeLinking controls the twin pass that runs after generation.
// Enabled by default; without it the output halfedges have no opposites and
// the result cannot be subdivided again. SubdivideLevels applies it to the
// final level only.
func WithOppositeLinking(enabled bool) Option {
	return func(c *config) { c.linkOpposites = enabled }
}

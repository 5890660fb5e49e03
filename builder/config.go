// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • scale  = 1.0 (unit half-extent / circumradius)
//   • center = origin

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Method tags for error context.
const (
	MethodSolid   = "Solid"
	MethodPolygon = "Polygon"
)

// MinPolygonSides is the smallest polygon Polygon accepts.
const MinPolygonSides = 3

// builderConfig holds the placement applied to canonical coordinates.
type builderConfig struct {
	scale  float64
	center r3.Vec
}

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical coordinate into world space.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(c.center, r3.Scale(c.scale, p))
}

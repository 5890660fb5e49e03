// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/halfedge"
	"github.com/katalvlaran/lvmesh/objio"
	"github.com/katalvlaran/lvmesh/subdivide"
)

// stdio is the path meaning stdin/stdout.
const stdio = "-"

// cliOptions holds flag values shared by the subcommands.
type cliOptions struct {
	verbose bool
	output  string
	levels  int
	scale   float64
	logger  *slog.Logger
}

// =============================================================================
// ROOT
// =============================================================================

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "lvmesh",
		Short:         "Half-edge mesh tools: Catmull-Clark subdivision and OBJ inspection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newSubdivideCmd(opts), newInfoCmd(opts), newSolidCmd(opts))

	return root
}

// =============================================================================
// SUBDIVIDE
// =============================================================================

func newSubdivideCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subdivide INPUT",
		Short: "Apply Catmull-Clark subdivision to an OBJ mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMesh(args[0])
			if err != nil {
				return err
			}
			opts.logger.Info("mesh loaded", "path", args[0], "faces", m.FaceCount(), "vertices", m.VertexCount())

			out, err := subdivide.SubdivideLevels(m, opts.levels, subdivide.WithLogger(opts.logger))
			if err != nil {
				return err
			}
			opts.logger.Info("mesh subdivided", "levels", opts.levels, "faces", out.FaceCount(), "vertices", out.VertexCount())

			return writeMesh(opts.output, cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", stdio, "output OBJ path")
	cmd.Flags().IntVarP(&opts.levels, "levels", "n", 1, "number of subdivision levels")

	return cmd
}

// =============================================================================
// INFO
// =============================================================================

// meshInfo is the YAML document printed by "lvmesh info".
type meshInfo struct {
	Vertices      int         `yaml:"vertices"`
	Edges         int         `yaml:"edges"`
	Faces         int         `yaml:"faces"`
	Halfedges     int         `yaml:"halfedges"`
	Euler         int         `yaml:"euler_characteristic"`
	OpenHalfedges int         `yaml:"open_halfedges"`
	FaceDegrees   map[int]int `yaml:"face_degrees"`
}

func newInfoCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info INPUT",
		Short: "Print element counts of an OBJ mesh as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMesh(args[0])
			if err != nil {
				return err
			}
			info, err := describe(m)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(info); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

// describe collects the counts reported by "lvmesh info".
func describe(m *halfedge.Mesh) (meshInfo, error) {
	st := m.Stats()
	info := meshInfo{
		Vertices:    st.Vertices,
		Edges:       st.Edges,
		Faces:       st.Faces,
		Halfedges:   st.Halfedges,
		Euler:       st.Vertices - st.Edges + st.Faces,
		FaceDegrees: make(map[int]int),
	}
	for f := range m.Faces() {
		d, err := m.FaceDegree(f)
		if err != nil {
			return meshInfo{}, err
		}
		info.FaceDegrees[d]++
	}
	for h := 0; h < st.Halfedges; h++ {
		he, err := m.Halfedge(halfedge.HalfedgeID(h))
		if err != nil {
			return meshInfo{}, err
		}
		if !he.Opposite.Valid() {
			info.OpenHalfedges++
		}
	}

	return info, nil
}

// =============================================================================
// SOLID
// =============================================================================

func newSolidCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "solid NAME",
		Short:     "Write a built-in solid (tetrahedron, cube, octahedron) as OBJ",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{builder.Tetrahedron.String(), builder.Cube.String(), builder.Octahedron.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := builder.ParseSolidName(args[0])
			if !ok {
				return fmt.Errorf("solid %q: %w", args[0], builder.ErrUnknownSolid)
			}
			if !(opts.scale > 0) {
				return fmt.Errorf("--scale must be positive, got %g", opts.scale)
			}
			m, err := builder.Solid(name, builder.WithScale(opts.scale))
			if err != nil {
				return err
			}
			opts.logger.Debug("solid built", "name", name.String(), "faces", m.FaceCount())

			return writeMesh(opts.output, cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", stdio, "output OBJ path")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "uniform scale factor")

	return cmd
}

// =============================================================================
// HELPERS
// =============================================================================

func readMesh(path string) (*halfedge.Mesh, error) {
	if path == stdio {
		return objio.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return objio.Read(f)
}

func writeMesh(path string, stdout io.Writer, m *halfedge.Mesh) error {
	if path == stdio {
		return objio.Write(stdout, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := objio.Write(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

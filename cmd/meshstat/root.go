// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/meshopt"
)

const (
	formatText   = "text"
	formatYAML   = "yaml"
	formatBuffer = "buffer"
)

// settings holds the parsed command-line flags.
type settings struct {
	primitive string
	copies    int
	scale     float32
	soup      bool
	noWeld    bool
	logLevel  string
	format    string
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	cmd := &cobra.Command{
		Use:   "meshstat [buffer.yaml]",
		Short: "Report mesh topology across the three encodings",
		Long: `meshstat loads a YAML triangle buffer (or generates a primitive), builds
the indexed face set, half-edge and boundary representations from it, and
prints element counts, welding results and island counts for each.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.primitive, "primitive", builder.Icosahedron.String(), "solid to generate when no file is given")
	f.IntVar(&s.copies, "copies", 1, "number of side-by-side primitive copies")
	f.Float32Var(&s.scale, "scale", 1, "primitive scale")
	f.BoolVar(&s.soup, "soup", false, "give every primitive triangle its own corners")
	f.BoolVar(&s.noWeld, "no-weld", false, "disable position welding")
	f.StringVar(&s.logLevel, "log-level", "warn", "debug, info, warn or error")
	f.StringVar(&s.format, "format", formatText, "output format: text, yaml or buffer")

	return cmd
}

func run(cmd *cobra.Command, s *settings, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch s.format {
	case formatText, formatYAML, formatBuffer:
	default:
		return fmt.Errorf("--format: unknown format %q", s.format)
	}

	buf, source, err := load(s, args)
	if err != nil {
		return err
	}
	logger.Info("meshstat: loaded buffer", "source", source,
		"positions", len(buf.Positions), "triangles", buf.NumTriangles(), "lines", buf.NumLines())

	if s.format == formatBuffer {
		return writeYAML(cmd.OutOrStdout(), buf)
	}

	opts := []meshopt.Option{meshopt.WithLogger(logger), meshopt.WithWelding(!s.noWeld)}
	rep, err := analyze(cmd.Context(), source, buf, opts)
	if err != nil {
		return err
	}
	if s.format == formatYAML {
		return writeYAML(cmd.OutOrStdout(), rep)
	}
	return rep.writeText(cmd.OutOrStdout())
}

// load reads the buffer named by args, or generates the configured primitive.
func load(s *settings, args []string) (*buffer.Buffer, string, error) {
	if len(args) == 1 {
		buf, err := buffer.Load(args[0])
		return buf, args[0], err
	}

	name, ok := builder.ParsePlatonic(s.primitive)
	if !ok {
		return nil, "", fmt.Errorf("--primitive: unknown solid %q", s.primitive)
	}
	if s.copies < 1 {
		return nil, "", fmt.Errorf("--copies: must be ≥ 1, got %d", s.copies)
	}

	bopts := []builder.BuilderOption{builder.WithScale(s.scale)}
	if s.soup {
		bopts = append(bopts, builder.WithSoup())
	}
	// solids fit in a cube of side 2*phi before scaling
	step := 4 * s.scale
	cons := make([]builder.Constructor, s.copies)
	for i := range cons {
		cons[i] = builder.Translate(math32.Vec3(float32(i)*step, 0, 0), builder.PlatonicSolid(name))
	}
	buf, err := builder.Build(bopts, cons...)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("%s x%d", name, s.copies), nil
}

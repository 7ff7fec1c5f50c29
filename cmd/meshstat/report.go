// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/bmesh"
	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/halfedge"
	"github.com/katalvlaran/lvmesh/ifs"
	"github.com/katalvlaran/lvmesh/meshopt"
)

// section is the report of one encoding. Error is set instead of Stats when
// the buffer cannot be represented in that encoding.
type section[S any] struct {
	Stats   *S     `yaml:"stats,omitempty"`
	Islands int    `yaml:"islands"`
	Error   string `yaml:"error,omitempty"`
}

type report struct {
	Source    string     `yaml:"source"`
	Positions int        `yaml:"positions"`
	Triangles int        `yaml:"triangles"`
	Lines     int        `yaml:"lines"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`

	IFS      section[ifs.Stats]      `yaml:"ifs"`
	HalfEdge section[halfedge.Stats] `yaml:"halfedge"`
	BMesh    section[bmesh.Stats]    `yaml:"bmesh"`
}

// analyze builds the three encodings concurrently. Each goroutine owns the
// mesh it builds; only its own report section is written.
func analyze(ctx context.Context, source string, buf *buffer.Buffer, opts []meshopt.Option) (*report, error) {
	box := buf.Bounds()
	rep := &report{
		Source:    source,
		Positions: len(buf.Positions),
		Triangles: buf.NumTriangles(),
		Lines:     buf.NumLines(),
	}
	if !box.IsEmpty() {
		rep.Min = [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
		rep.Max = [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	}

	g, gctx := errgroup.WithContext(ctx)
	walk := bfs.WithContext(gctx)

	g.Go(func() error {
		m, err := ifs.Build(buf, opts...)
		if err != nil {
			return err
		}
		islands, err := bfs.Components(m.VertexGraph(), walk)
		if err != nil {
			return err
		}
		st := m.Stats()
		rep.IFS = section[ifs.Stats]{Stats: &st, Islands: len(islands)}
		return nil
	})
	g.Go(func() error {
		m, err := halfedge.Build(buf, opts...)
		if errors.Is(err, halfedge.ErrNonManifold) {
			rep.HalfEdge.Error = err.Error()
			return nil
		}
		if err != nil {
			return err
		}
		islands, err := bfs.Components(m.FaceGraph(), walk)
		if err != nil {
			return err
		}
		st := m.Stats()
		rep.HalfEdge = section[halfedge.Stats]{Stats: &st, Islands: len(islands)}
		return nil
	})
	g.Go(func() error {
		m, err := bmesh.Build(buf, opts...)
		if err != nil {
			return err
		}
		islands, err := bfs.Components(m.VertexGraph(), walk)
		if err != nil {
			return err
		}
		st := m.Stats()
		rep.BMesh = section[bmesh.Stats]{Stats: &st, Islands: len(islands)}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *report) writeText(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("source     %s\n", r.Source)
	printf("buffer     positions=%d triangles=%d lines=%d\n", r.Positions, r.Triangles, r.Lines)
	printf("bounds     min=%v max=%v\n", r.Min, r.Max)
	if st := r.IFS.Stats; st != nil {
		printf("ifs        vertices=%d edges=%d faces=%d loose=%d welded=%d degenerate=%d duplicate=%d islands=%d\n",
			st.Vertices, st.Edges, st.Faces, st.Loose, st.Welded, st.Degenerate, st.Duplicate, r.IFS.Islands)
	}
	if st := r.HalfEdge.Stats; st != nil {
		printf("halfedge   vertices=%d halfedges=%d faces=%d boundary=%d islands=%d\n",
			st.Vertices, st.HalfEdges, st.Faces, st.Boundary, r.HalfEdge.Islands)
	} else {
		printf("halfedge   error: %s\n", r.HalfEdge.Error)
	}
	if st := r.BMesh.Stats; st != nil {
		printf("bmesh      vertices=%d edges=%d loops=%d faces=%d wire=%d nonmanifold=%d islands=%d\n",
			st.Vertices, st.Edges, st.Loops, st.Faces, st.Wire, st.NonManifold, r.BMesh.Islands)
	}
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

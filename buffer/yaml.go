// SPDX-License-Identifier: MIT

package buffer

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

// document is the YAML wire shape of a Buffer.
type document struct {
	Positions [][]float32 `yaml:"positions"`
	Indices   []uint32     `yaml:"indices,omitempty"`
	Lines     []uint32     `yaml:"lines,omitempty"`
}

// Decode reads one YAML buffer document from r and validates it.
func Decode(r io.Reader) (*Buffer, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := &Buffer{
		Positions: make([]math32.Vector3, len(doc.Positions)),
		Indices:   doc.Indices,
		Lines:     doc.Lines,
	}
	for i, p := range doc.Positions {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: positions[%d] has %d coordinates", ErrDecode, i, len(p))
		}
		b.Positions[i] = math32.Vec3(p[0], p[1], p[2])
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Load decodes the YAML buffer stored at path.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// MarshalYAML encodes b in the form accepted by Decode.
func (b *Buffer) MarshalYAML() (any, error) {
	doc := document{
		Positions: make([][]float32, len(b.Positions)),
		Indices:   b.Indices,
		Lines:     b.Lines,
	}
	for i, p := range b.Positions {
		doc.Positions[i] = []float32{p.X, p.Y, p.Z}
	}
	return doc, nil
}

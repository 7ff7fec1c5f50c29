// SPDX-License-Identifier: MIT

package halfedge_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/halfedge"
)

// BenchmarkBuild_Grid measures construction of a 64×64 quad grid (8192 triangles).
func BenchmarkBuild_Grid(b *testing.B) {
	buf, err := builder.Build(nil, builder.Grid(64, 64))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := halfedge.Build(buf); err != nil {
			b.Fatal(err)
		}
	}
}

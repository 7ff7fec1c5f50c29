// SPDX-License-Identifier: MIT

package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/traverse"
)

// triangleLoops is a single triangle: three loops on one face, each alone on
// its edge.
type triangleLoops struct{}

func (triangleLoops) NextEdgeLoop(l int) int { return l }
func (triangleLoops) NextFaceLoop(l int) int { return (l + 1) % 3 }

func ExampleFaceLoop() {
	it := traverse.FaceLoop(triangleLoops{}, 1)
	for it.HasNext() {
		l, _ := it.Next()
		fmt.Print(l, " ")
	}
	fmt.Println()
	// Output: 1 2 0
}

func ExampleMap() {
	names := traverse.Map[int, string](traverse.EdgeLoop(triangleLoops{}, 2), func(l int) string {
		return fmt.Sprintf("loop-%d", l)
	})
	for name := range traverse.All[string](names) {
		fmt.Println(name)
	}
	// Output: loop-2
}

// SPDX-License-Identifier: MIT

// Command meshstat builds the indexed, half-edge and boundary encodings of
// one triangle buffer and reports their topology.
//
//	meshstat --primitive Icosahedron --copies 3
//	meshstat --format yaml mesh.yaml
//	meshstat --primitive Cube --soup --no-weld
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

package meshopt_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/meshopt"
)

func TestResolve_Defaults(t *testing.T) {
	o, err := meshopt.Resolve()
	require.NoError(t, err)
	assert.True(t, o.Weld)
	require.NotNil(t, o.Logger)
}

func TestResolve_Overrides(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	o, err := meshopt.Resolve(meshopt.WithWelding(false), meshopt.WithLogger(l), nil)
	require.NoError(t, err)
	assert.False(t, o.Weld)

	o.Logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestResolve_NilLogger(t *testing.T) {
	_, err := meshopt.Resolve(meshopt.WithLogger(nil))
	assert.ErrorIs(t, err, meshopt.ErrOptionViolation)
}

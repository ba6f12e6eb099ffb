package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional mesh path", func(t *testing.T) {
		cfg, exit, err := Parse([]string{"mesh.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "mesh.hcl", cfg.MeshPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("mesh flag wins over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-mesh", "a.hcl", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.MeshPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-m", "a.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.MeshPath)
	})

	t.Run("repeated vars", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-var", "a=1", "-var", "b=/ns", "mesh.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1", "b": "/ns"}, cfg.Vars)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		_, exit, err := Parse([]string{"-h"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("error - malformed var", func(t *testing.T) {
		_, _, err := Parse([]string{"-var", "novalue", "mesh.hcl"}, &bytes.Buffer{})
		require.Error(t, err)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("error - invalid log format", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-format", "xml", "mesh.hcl"}, &bytes.Buffer{})
		require.Error(t, err)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("error - invalid log level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "loud", "mesh.hcl"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}

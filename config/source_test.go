package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/envtree"
	"github.com/0xalexb/envtree/config"

	"github.com/stretchr/testify/require"
)

func TestEnvironSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE_TEST__INT", "1")

	pairs, err := config.NewEnvironSource().Pairs()
	require.NoError(t, err)

	require.Contains(t, pairs, envtree.Pair{Key: "CONFIG_SOURCE_TEST__INT", Value: "1"})
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	pairs, err := config.MapSource{"A": "1", "B": "2"}.Pairs()
	require.NoError(t, err)

	require.ElementsMatch(t, []envtree.Pair{
		{Key: "A", Value: "1"},
		{Key: "B", Value: "2"},
	}, pairs)
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vars.env")
	content := "# comment\n\nAPP__HOST=api.example.com\nAPP__PORT=9000\nAPP__EMPTY=\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	source, err := config.NewFileSource(path)()
	require.NoError(t, err)

	pairs, err := source.Pairs()
	require.NoError(t, err)

	require.Equal(t, []envtree.Pair{
		{Key: "APP__HOST", Value: "api.example.com"},
		{Key: "APP__PORT", Value: "9000"},
		{Key: "APP__EMPTY", Value: ""},
	}, pairs)
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.NewFileSource(filepath.Join(t.TempDir(), "missing.env"))()

	require.Error(t, err)
}

func TestFileSourceDirectory(t *testing.T) {
	t.Parallel()

	_, err := config.NewFileSource(t.TempDir())()

	require.ErrorIs(t, err, config.ErrPathIsDirectory)
}

func TestFileSourceMalformedLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vars.env")
	require.NoError(t, os.WriteFile(path, []byte("NO_EQUALS_SIGN\n"), 0o600))

	_, err := config.NewFileSource(path)()

	require.Error(t, err)
	require.Contains(t, err.Error(), "missing '='")
}

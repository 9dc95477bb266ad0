package mazefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mazeflood/mazefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	assert.Equal(t, mazefile.FormatYAML, mazefile.FormatFor("a/b.yaml", mazefile.FormatAuto))
	assert.Equal(t, mazefile.FormatYAML, mazefile.FormatFor("B.YML", mazefile.FormatAuto))
	assert.Equal(t, mazefile.FormatText, mazefile.FormatFor("maze.txt", mazefile.FormatAuto))
	assert.Equal(t, mazefile.FormatText, mazefile.FormatFor("maze.yaml", mazefile.FormatText))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]mazefile.Format{
		"": mazefile.FormatAuto, "auto": mazefile.FormatAuto,
		"TXT": mazefile.FormatText, "yml": mazefile.FormatYAML,
	} {
		got, err := mazefile.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := mazefile.ParseFormat("json")
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	m := sample(t)

	for _, name := range []string{"maze.txt", "maze.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, mazefile.Save(path, mazefile.FormatAuto, m))

			got, err := mazefile.Load(path, mazefile.FormatAuto)
			require.NoError(t, err)
			assert.Equal(t, m.Walls().Bytes(), got.Walls().Bytes())
			assert.Equal(t, m.Goal(), got.Goal())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := mazefile.Load(filepath.Join(dir, "missing.txt"), mazefile.FormatAuto)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("o---o\n"), 0o644))
	_, err = mazefile.Load(bad, mazefile.FormatAuto)
	assert.ErrorIs(t, err, mazefile.ErrSyntax)
	assert.Contains(t, err.Error(), "bad.txt")
}

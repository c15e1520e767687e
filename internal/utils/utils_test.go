package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithCommas(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45376763, "45,376,763"},
		{1402112000, "1,402,112,000"},
		{-12345, "-12,345"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithCommas(tt.in))
		})
	}
}

func TestResolveDataFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "countries.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	pr, err := NewPathResolver(dir)
	require.NoError(t, err)

	got, err := pr.ResolveDataFile(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	got, err = pr.ResolveDataFile(filepath.Join("data", "countries.csv"))
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = pr.ResolveDataFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTOMLHelpers(t *testing.T) {
	type sample struct {
		Name string `toml:"name"`
	}
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, SaveTOMLFile(sample{Name: "paises"}, path))
	assert.True(t, FileExists(path))

	var got sample
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, "paises", got.Name)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	name, ok := ExtractString(raw, "name")
	assert.True(t, ok)
	assert.Equal(t, "paises", name)
	_, ok = ExtractInt64(raw, "name")
	assert.False(t, ok)
}

func TestSaveTOMLFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"old\"\n"), 0644))
	require.NoError(t, SaveTOMLFile(map[string]any{"name": "new"}, path))

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	assert.Equal(t, "new", raw["name"])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIsWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.True(t, IsWritableDir(dir))
	assert.True(t, FileExists(dir))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.Display.PageSize)
	assert.Equal(t, 10, cfg.Search.CandidateLimit)
	assert.Equal(t, 80, cfg.Search.MatchThreshold)
	assert.True(t, cfg.Display.ClearScreen)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[data]
path = "/srv/paises.csv"

[display]
page_size = 5
clear_screen = false

[search]
match_threshold = 70
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/paises.csv", cfg.Data.Path)
	assert.Equal(t, 5, cfg.Display.PageSize)
	assert.False(t, cfg.Display.ClearScreen)
	assert.Equal(t, 70, cfg.Search.MatchThreshold)
	assert.Equal(t, 10, cfg.Search.CandidateLimit)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// page_size has the wrong type so strict decoding fails
	path := writeConfig(t, `
[display]
page_size = "many"
name_width = 40

[search]
candidate_limit = 15
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Display.PageSize)
	assert.Equal(t, 40, cfg.Display.NameWidth)
	assert.Equal(t, 15, cfg.Search.CandidateLimit)
}

func TestLoadConfigGarbage(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "this is [not toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSanitize(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
[display]
page_size = 0

[search]
match_threshold = 150
cache_size = -3
`))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Display.PageSize)
	assert.Equal(t, 80, cfg.Search.MatchThreshold)
	assert.Equal(t, 0, cfg.Search.CacheSize)
}

func TestLoadConfigWithPriority(t *testing.T) {
	path := writeConfig(t, "[display]\npage_size = 7\n")
	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 7, cfg.Display.PageSize)
}

func TestFuzzyOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.FuzzyOptions()
	assert.Equal(t, 10, opts.CandidateLimit)
	assert.Equal(t, 80, opts.Threshold)
	assert.Equal(t, 256, opts.CacheSize)
	assert.Equal(t, 10*time.Minute, opts.CacheTTL)
}

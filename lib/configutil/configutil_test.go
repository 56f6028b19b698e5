package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl  string `json:"base_url"`
	PageSize int    `json:"page_size"`
}

func TestReadMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "app.json5"),
		[]byte(`{base_url: "https://example.com", page_size: 100}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "app.local.json5"),
		[]byte(`{page_size: 25}`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := Read[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.BaseUrl)
	require.Equal(t, 25, cfg.PageSize)
}

func TestReadOnlyLocal(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "app.local.json5"),
		[]byte(`{base_url: "https://local.example.com"}`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := Read[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://local.example.com", cfg.BaseUrl)
}

func TestReadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Read[testConfig](filepath.Join(dir, "app.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bikeshare/internal/errors"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	return path
}

func TestResolve_ExactMatch(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "chicago.csv")

	got, err := NewDiscovery(dir).Resolve("chicago.csv")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_FallsBackToOtherExtension(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "chicago.xlsx")

	got, err := NewDiscovery(dir).Resolve("chicago.csv")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_PrefersExactOverFallback(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "chicago.csv")
	writeFile(t, dir, "chicago.xlsx")

	got, err := NewDiscovery(dir).Resolve("chicago.csv")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_AbsolutePath(t *testing.T) {
	other := t.TempDir()
	want := writeFile(t, other, "washington.csv")

	got, err := NewDiscovery(t.TempDir()).Resolve(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_Missing(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDiscovery(dir).Resolve("atlantis.csv")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Contains(t, err.Error(), "atlantis.csv")
}

func TestResolve_DirectoryIsNotAMatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "chicago.csv"), 0755))

	_, err := NewDiscovery(dir).Resolve("chicago.csv")
	assert.Error(t, err)
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "washington.csv")
	writeFile(t, dir, "chicago.xlsx")
	writeFile(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0755))

	got := NewDiscovery(dir).ListDatasets()
	assert.Equal(t, []string{"chicago.xlsx", "washington.csv"}, got)
}

func TestListDatasets_MissingDir(t *testing.T) {
	got := NewDiscovery(filepath.Join(t.TempDir(), "nope")).ListDatasets()
	assert.Nil(t, got)
}

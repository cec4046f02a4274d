package fileutil_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuryops/sepagen/pkg/fileutil"
)

func TestGenerateOutputFileName(t *testing.T) {
	name := fileutil.GenerateOutputFileName("{prefix}_{timestamp}_{uuid}.xml", "pain008")

	pattern := regexp.MustCompile(`^pain008_\d{8}_\d{6}_[0-9a-f-]{36}\.xml$`)
	assert.True(t, pattern.MatchString(name), "unexpected name %q", name)
}

func TestGenerateOutputFileName_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "fixed.xml", fileutil.GenerateOutputFileName("fixed.xml", "ignored"))
}

func TestDiscoverInputFiles_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.XLSX", "c.txt", "sub"} {
		if name == "sub" {
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.csv"), []byte("x"), 0644))
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := fileutil.DiscoverInputFiles(dir, ".csv", ".xlsx")
	require.NoError(t, err)
	assert.Len(t, files, 3)
	for _, f := range files {
		assert.NotContains(t, f, "c.txt")
	}
}

func TestArchiveFile_MovesInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "batch.csv")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))

	archive := filepath.Join(dir, "archive")
	target, err := fileutil.ArchiveFile(src, archive)
	require.NoError(t, err)

	assert.False(t, fileutil.FileExists(src))
	assert.True(t, fileutil.FileExists(target))
	assert.Equal(t, filepath.Join(archive, "batch.csv"), target)
}

func TestArchiveFile_AvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive")

	for i := 0; i < 2; i++ {
		src := filepath.Join(dir, "batch.csv")
		require.NoError(t, os.WriteFile(src, []byte("data"), 0644))
		_, err := fileutil.ArchiveFile(src, archive)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(archive)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "second archive run must not overwrite the first")
}

func TestWriteFile_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "doc.xml")
	require.NoError(t, fileutil.WriteFile(path, []byte("<Document/>")))
	assert.True(t, fileutil.FileExists(path))
}

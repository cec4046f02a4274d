// =============================================================================
// sepagen - File Utilities
// =============================================================================
//
// Shared file-handling helpers for the generation pipeline: directory
// creation, input discovery, output naming, and archival of processed input
// files.
//
// =============================================================================

package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDirectories creates any of the given directories that do not exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DiscoverInputFiles walks the input directory and returns regular files
// whose extension matches one of the given extensions (compared
// case-insensitively, leading dot included, e.g. ".csv").
func DiscoverInputFiles(inputDir string, extensions ...string) ([]string, error) {
	var files []string

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	return files, err
}

// GenerateOutputFileName expands an output-name template. Supported
// placeholders are {prefix}, {timestamp}, and {uuid}.
func GenerateOutputFileName(format, prefix string) string {
	name := format
	name = strings.ReplaceAll(name, "{prefix}", prefix)
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// ArchiveFile moves a processed input file into the archive directory. When
// a file of the same name already exists there, a timestamp is appended to
// keep both.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := EnsureDirectories(archiveDir); err != nil {
		return "", err
	}

	target := filepath.Join(archiveDir, filepath.Base(path))
	if FileExists(target) {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(filepath.Base(path), ext)
		target = filepath.Join(archiveDir,
			fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
	}

	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return target, nil
}

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDirectories(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

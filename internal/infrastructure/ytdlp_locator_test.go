package infrastructure

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/vidgrab-go/internal/domain"
)

func TestLocateYTDLP_ConfiguredOverride(t *testing.T) {
	path, err := LocateYTDLP("/opt/custom/yt-dlp")

	require.NoError(t, err)
	assert.Equal(t, "/opt/custom/yt-dlp", path)
}

func TestLocateYTDLP_FoundOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix binary names")
	}

	dir := t.TempDir()
	binary := filepath.Join(dir, "yt-dlp")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755))

	t.Setenv("PATH", dir)

	path, err := LocateYTDLP("")

	require.NoError(t, err)
	assert.Equal(t, binary, path)
}

func TestLocateYTDLP_SkipsDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix binary names")
	}

	dir := t.TempDir()
	// A directory named like the binary must not match.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "yt-dlp"), 0755))

	t.Setenv("PATH", dir)

	if systemYTDLPInstalled() {
		t.Skip("yt-dlp installed in a well-known directory")
	}

	_, err := LocateYTDLP("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutableNotFound)
}

func TestLocateYTDLP_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if systemYTDLPInstalled() {
		t.Skip("yt-dlp installed in a well-known directory")
	}

	_, err := LocateYTDLP("")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutableNotFound)
	assert.Contains(t, err.Error(), "install yt-dlp")
}

// systemYTDLPInstalled reports whether a real yt-dlp exists outside the PATH
// entries controlled by the test.
func systemYTDLPInstalled() bool {
	for _, dir := range wellKnownDirs() {
		for _, name := range candidateNames() {
			if regularFile(filepath.Join(dir, name)) != "" {
				return true
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		for _, name := range candidateNames() {
			if regularFile(filepath.Join(exeDir, name)) != "" {
				return true
			}
			if regularFile(filepath.Join(exeDir, "..", "Resources", name)) != "" {
				return true
			}
		}
	}
	return false
}

package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/yourusername/vidgrab-go/internal/domain"
)

// candidateNames returns the yt-dlp binary names to look for on this OS.
func candidateNames() []string {
	if runtime.GOOS == "windows" {
		return []string{"yt-dlp.exe", "yt-dlp_x86.exe"}
	}
	return []string{"yt-dlp", "yt-dlp_linux", "yt-dlp_macos"}
}

// wellKnownDirs returns common install locations for this OS, checked after
// PATH but before the application's own directory.
func wellKnownDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/opt/homebrew/bin", "/usr/local/bin"}
	case "linux":
		return []string{"/usr/bin", "/usr/local/bin", "/snap/bin"}
	case "windows":
		return []string{
			`C:\ProgramData\chocolatey\bin`,
			`C:\Program Files\yt-dlp`,
			`C:\Program Files (x86)\yt-dlp`,
		}
	default:
		return nil
	}
}

// LocateYTDLP finds the yt-dlp executable. When configuredPath is non-empty it
// is returned as-is, skipping the search. Otherwise the search order is: every
// PATH directory, the OS's well-known install directories, the directory of
// the running executable, and a sibling Resources directory. The first
// existing regular file wins.
func LocateYTDLP(configuredPath string) (string, error) {
	if configuredPath != "" {
		return configuredPath, nil
	}

	names := candidateNames()

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		for _, name := range names {
			if path := regularFile(filepath.Join(dir, name)); path != "" {
				return path, nil
			}
		}
	}

	for _, dir := range wellKnownDirs() {
		for _, name := range names {
			if path := regularFile(filepath.Join(dir, name)); path != "" {
				return path, nil
			}
		}
	}

	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		for _, name := range names {
			if path := regularFile(filepath.Join(exeDir, name)); path != "" {
				return path, nil
			}
			if path := regularFile(filepath.Join(exeDir, "..", "Resources", name)); path != "" {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: please install yt-dlp and make sure it is on your PATH",
		domain.ErrExecutableNotFound)
}

// regularFile returns path if it exists and is a regular file, else "".
func regularFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return path
}

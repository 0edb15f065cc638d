package font

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SystemFontDirs returns the system font directories for the current platform.
func SystemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return darwinFontDirs()
	case "linux":
		return linuxFontDirs()
	case "windows":
		return windowsFontDirs()
	default:
		return nil
	}
}

// darwinFontDirs returns macOS font directories.
func darwinFontDirs() []string {
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}

	// Add user font directory
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}

	return filterExistingDirs(dirs)
}

// linuxFontDirs returns Linux font directories.
func linuxFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	}

	// Add user font directories
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		)
	}

	// Add XDG data dirs
	if xdgDataDirs := os.Getenv("XDG_DATA_DIRS"); xdgDataDirs != "" {
		for _, dir := range filepath.SplitList(xdgDataDirs) {
			dirs = append(dirs, filepath.Join(dir, "fonts"))
		}
	}

	return filterExistingDirs(dirs)
}

// windowsFontDirs returns Windows font directories.
func windowsFontDirs() []string {
	dirs := []string{}

	// System fonts directory
	if winDir := os.Getenv("WINDIR"); winDir != "" {
		dirs = append(dirs, filepath.Join(winDir, "Fonts"))
	} else {
		dirs = append(dirs, `C:\Windows\Fonts`)
	}

	// User fonts (Windows 10+)
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		dirs = append(dirs, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
	}

	return filterExistingDirs(dirs)
}

// filterExistingDirs returns only directories that exist.
func filterExistingDirs(dirs []string) []string {
	existing := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	return existing
}

// IsFontFile reports whether path has a recognized font file extension.
func IsFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}

// DiscoverFonts discovers all fonts in the given directories. It walks
// each directory recursively via LoadFromFS (a .ttc/.otc collection
// contributes one Face per face index; see spec §4.1's face-index
// parameter), skipping directories and files it cannot read or parse.
func DiscoverFonts(dirs []string) ([]*Face, error) {
	var faces []*Face

	for _, dir := range dirs {
		found, err := LoadFromFS(os.DirFS(dir), ".")
		if err != nil {
			log.Printf("font: skip directory %q: %v", dir, err)
			continue
		}
		faces = append(faces, found...)
	}

	return faces, nil
}

// DiscoverSystemFonts discovers all fonts in system font directories.
func DiscoverSystemFonts() ([]*Face, error) {
	return DiscoverFonts(SystemFontDirs())
}

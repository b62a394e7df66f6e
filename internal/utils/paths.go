package utils

import (
	"net/url"
	"path/filepath"
)

// ResolveSource resolves a file path relative to baseDir. Empty strings,
// absolute paths and URLs (anything with a scheme longer than a drive
// letter) are returned unchanged.
func ResolveSource(source, baseDir string) string {
	if source == "" || baseDir == "" || filepath.IsAbs(source) {
		return source
	}
	if u, err := url.Parse(source); err == nil && len(u.Scheme) > 1 {
		return source
	}
	return filepath.Join(baseDir, source)
}

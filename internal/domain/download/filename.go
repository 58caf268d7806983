// Package download resolves safe on-disk names for engine downloads.
package download

import (
	"fmt"
	"mime"
	neturl "net/url"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when nothing usable can be derived.
const DefaultFilename = "download"

// maxUniqueAttempts bounds the _(N) suffix search.
const maxUniqueAttempts = 1000

// canonicalExtensions pins extensions whose system MIME table order varies.
var canonicalExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"application/pdf":          ".pdf",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"application/octet-stream": ".bin",
}

// SanitizeFilename keeps only the base name of name, so a suggested
// "../../etc/passwd" becomes "passwd".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := filepath.Base(name)
	switch base {
	case "", ".", "..", "/":
		return DefaultFilename
	}
	return base
}

// WithExtension sanitizes name and appends an extension derived from
// mimeType when name has none.
func WithExtension(name, mimeType string) string {
	clean := SanitizeFilename(name)
	if filepath.Ext(clean) != "" {
		return clean
	}
	return clean + ExtensionForMimeType(mimeType)
}

// ExtensionForMimeType returns ".pdf" for "application/pdf; charset=binary",
// or "" when the type is unknown.
func ExtensionForMimeType(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}
	if ext, ok := canonicalExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// FilenameFromURI takes the last path segment of uri.
func FilenameFromURI(uri string) string {
	path := uri
	if parsed, err := neturl.Parse(uri); err == nil {
		path = parsed.Path
	}
	return SanitizeFilename(path)
}

// UniqueFilename appends _(N) before the extension until exists reports false.
func UniqueFilename(dir, filename string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for i := 1; i < maxUniqueAttempts; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", stem, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return fmt.Sprintf("%s_(%d)%s", stem, maxUniqueAttempts, ext)
}

package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "normal filename", input: "document.pdf", expected: "document.pdf"},
		{name: "path traversal", input: "../../../etc/passwd", expected: "passwd"},
		{name: "windows separators", input: `..\..\evil.exe`, expected: "evil.exe"},
		{name: "absolute path", input: "/etc/passwd", expected: "passwd"},
		{name: "dot only", input: ".", expected: DefaultFilename},
		{name: "double dot only", input: "..", expected: DefaultFilename},
		{name: "empty", input: "", expected: DefaultFilename},
		{name: "root", input: "/", expected: DefaultFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "report.pdf", WithExtension("report", "application/pdf; charset=binary"))
	assert.Equal(t, "page.html", WithExtension("page", "text/html"))
	assert.Equal(t, "archive.tar.gz", WithExtension("archive.tar.gz", "application/gzip"))
	assert.Equal(t, "blob", WithExtension("blob", ""))
	assert.Equal(t, "blob", WithExtension("blob", "not a mime"))
}

func TestFilenameFromURI(t *testing.T) {
	assert.Equal(t, "file.zip", FilenameFromURI("https://example.com/dl/file.zip?token=abc"))
	assert.Equal(t, DefaultFilename, FilenameFromURI("https://example.com/"))
	assert.Equal(t, DefaultFilename, FilenameFromURI(""))
}

func TestUniqueFilename(t *testing.T) {
	taken := map[string]bool{
		filepath.Join("/dl", "a.txt"):     true,
		filepath.Join("/dl", "a_(1).txt"): true,
	}
	exists := func(p string) bool { return taken[p] }

	assert.Equal(t, "b.txt", UniqueFilename("/dl", "b.txt", exists))
	assert.Equal(t, "a_(2).txt", UniqueFilename("/dl", "a.txt", exists))
}

package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
)

// mockFileSystem implements port.FileSystem for testing.
type mockFileSystem struct {
	existingFiles map[string]bool
	mkdirErr      error
	made          []string
}

func (m *mockFileSystem) Exists(_ context.Context, path string) (bool, error) {
	return m.existingFiles[path], nil
}

func (*mockFileSystem) IsDirectory(context.Context, string) (bool, error) {
	return true, nil
}

func (m *mockFileSystem) MkdirAll(_ context.Context, path string) error {
	m.made = append(m.made, path)
	return m.mkdirErr
}

type stubPicker struct {
	path     string
	ok       bool
	proposed string
}

func (p *stubPicker) PickDestination(_ context.Context, proposed string, done func(string, bool)) {
	p.proposed = proposed
	done(p.path, p.ok)
}

type result struct {
	path string
	ok   bool
}

func collect(r *result) func(string, bool) {
	return func(path string, ok bool) {
		r.path, r.ok = path, ok
	}
}

func TestPrepareDownloadUseCase_Propose(t *testing.T) {
	ctx := context.Background()
	dir := "/home/user/Downloads"

	tests := []struct {
		name     string
		req      port.DownloadRequest
		existing map[string]bool
		expected string
	}{
		{
			name:     "uses suggested filename",
			req:      port.DownloadRequest{SuggestedFilename: "document.pdf"},
			expected: "document.pdf",
		},
		{
			name:     "strips path traversal",
			req:      port.DownloadRequest{SuggestedFilename: "../../etc/passwd"},
			expected: "passwd",
		},
		{
			name:     "adds extension from mime type",
			req:      port.DownloadRequest{SuggestedFilename: "report", MimeType: "application/pdf"},
			expected: "report.pdf",
		},
		{
			name:     "falls back to the uri",
			req:      port.DownloadRequest{URI: "https://example.com/files/archive.zip?x=1"},
			expected: "archive.zip",
		},
		{
			name:     "falls back to default name",
			req:      port.DownloadRequest{},
			expected: "download",
		},
		{
			name:     "deduplicates existing files",
			req:      port.DownloadRequest{SuggestedFilename: "a.txt"},
			existing: map[string]bool{filepath.Join(dir, "a.txt"): true},
			expected: "a_(1).txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &mockFileSystem{existingFiles: tt.existing}
			out := usecase.NewPrepareDownloadUseCase(fs, dir, false).Propose(ctx, tt.req)

			assert.Equal(t, tt.expected, out.Filename)
			assert.Equal(t, filepath.Join(dir, tt.expected), out.DestinationPath)
		})
	}
}

func TestPrepareDownloadUseCase_Execute_WithoutPicker(t *testing.T) {
	ctx := testContext()
	fs := &mockFileSystem{}
	uc := usecase.NewPrepareDownloadUseCase(fs, "/dl", true)

	var r result
	uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))

	assert.True(t, r.ok)
	assert.Equal(t, "/dl/a.txt", r.path)
	assert.Equal(t, []string{"/dl"}, fs.made)
}

func TestPrepareDownloadUseCase_Execute_AsksPicker(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewPrepareDownloadUseCase(&mockFileSystem{}, "/dl", true)
	picker := &stubPicker{path: "/elsewhere/a.txt", ok: true}
	uc.SetPicker(picker)

	var r result
	uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))

	assert.Equal(t, "/dl/a.txt", picker.proposed)
	assert.True(t, r.ok)
	assert.Equal(t, "/elsewhere/a.txt", r.path)
}

func TestPrepareDownloadUseCase_Execute_Rejections(t *testing.T) {
	ctx := testContext()

	t.Run("picker cancelled", func(t *testing.T) {
		uc := usecase.NewPrepareDownloadUseCase(&mockFileSystem{}, "/dl", true)
		uc.SetPicker(&stubPicker{ok: false})

		r := result{ok: true}
		uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))
		assert.False(t, r.ok)
	})

	t.Run("no directory", func(t *testing.T) {
		uc := usecase.NewPrepareDownloadUseCase(&mockFileSystem{}, "", false)

		r := result{ok: true}
		uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))
		assert.False(t, r.ok)
	})

	t.Run("directory cannot be created", func(t *testing.T) {
		uc := usecase.NewPrepareDownloadUseCase(&mockFileSystem{mkdirErr: errBoom}, "/dl", false)

		r := result{ok: true}
		uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))
		assert.False(t, r.ok)
	})

	t.Run("ask disabled ignores picker", func(t *testing.T) {
		uc := usecase.NewPrepareDownloadUseCase(&mockFileSystem{}, "/dl", false)
		picker := &stubPicker{ok: false}
		uc.SetPicker(picker)

		var r result
		uc.Execute(ctx, port.DownloadRequest{SuggestedFilename: "a.txt"}, collect(&r))
		assert.True(t, r.ok)
		assert.Empty(t, picker.proposed)
	})
}

package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/infrastructure/persistence/jsonfile"
	"github.com/subjectbrowser/subject/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestStore_MissingFilesAreEmpty(t *testing.T) {
	ctx := testContext()
	dir := filepath.Join(t.TempDir(), "not-yet-created")
	store := jsonfile.NewStore(dir)

	history, err := store.History().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	bookmarks, err := store.Bookmarks().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	session, err := store.Session().Load(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsEmpty())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "loading must not create the data directory")
}

func TestStore_SaveCreatesDirectoryLazily(t *testing.T) {
	ctx := testContext()
	dir := filepath.Join(t.TempDir(), "a", "b")
	store := jsonfile.NewStore(dir)

	require.NoError(t, store.History().Save(ctx, entity.NewHistory("https://example.com")))

	_, err := os.Stat(filepath.Join(dir, jsonfile.HistoryFile))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_GoldenFormat(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := jsonfile.NewStore(dir)
	g := newGoldie(t)

	require.NoError(t, store.History().Save(ctx, entity.NewHistory(
		"https://example.com/?q=<b>&x=1",
		"https://example.com/?q=<b>&x=1",
		"http://localhost:8080/",
	)))
	require.NoError(t, store.Bookmarks().Save(ctx, entity.Bookmarks{
		{Title: "Go & Friends", URL: "https://go.dev"},
		{Title: "https://example.com", URL: "https://example.com"},
	}))
	require.NoError(t, store.Session().Save(ctx, entity.NewSessionState([]string{
		"https://go.dev",
		"subject://newtab",
	})))

	for name, file := range map[string]string{
		"history":   jsonfile.HistoryFile,
		"bookmarks": jsonfile.BookmarksFile,
		"session":   jsonfile.SessionFile,
	} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		g.Assert(t, name, data)
	}
}

func TestStore_EmptyCollectionsAreWrittenAsEmptyArrays(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := jsonfile.NewStore(dir)

	require.NoError(t, store.History().Save(ctx, nil))
	require.NoError(t, store.Bookmarks().Save(ctx, nil))
	require.NoError(t, store.Session().Save(ctx, entity.SessionState{}))

	for _, file := range []string{jsonfile.HistoryFile, jsonfile.BookmarksFile, jsonfile.SessionFile} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data), file)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := testContext()
	store := jsonfile.NewStore(t.TempDir())

	history := entity.NewHistory("https://a", "https://b", "https://a")
	require.NoError(t, store.History().Save(ctx, history))
	loadedHistory, err := store.History().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, history, loadedHistory)

	bookmarks := entity.Bookmarks{{Title: "A", URL: "https://a"}, {Title: "A", URL: "https://a"}}
	require.NoError(t, store.Bookmarks().Save(ctx, bookmarks))
	loadedBookmarks, err := store.Bookmarks().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, bookmarks, loadedBookmarks)

	session := entity.NewSessionState([]string{"https://a", "https://b"})
	require.NoError(t, store.Session().Save(ctx, session))
	loadedSession, err := store.Session().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loadedSession)
}

func TestStore_PersistIsIdempotent(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := jsonfile.NewStore(dir)
	path := filepath.Join(dir, jsonfile.SessionFile)

	session := entity.NewSessionState([]string{"https://a", "https://b"})
	require.NoError(t, store.Session().Save(ctx, session))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Session().Save(ctx, session))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_MalformedData(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	store := jsonfile.NewStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, jsonfile.SessionFile), []byte(`{"tabs": 1}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, jsonfile.HistoryFile), []byte(`[1, 2`), 0o600))

	_, err := store.Session().Load(ctx)
	require.ErrorIs(t, err, repository.ErrMalformedData)

	var malformed *repository.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, repository.CollectionSession, malformed.Collection)
	assert.Equal(t, filepath.Join(dir, jsonfile.SessionFile), malformed.Path)

	_, err = store.History().Load(ctx)
	require.ErrorIs(t, err, repository.ErrMalformedData)

	// collections load independently
	bookmarks, err := store.Bookmarks().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

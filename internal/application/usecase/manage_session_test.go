package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	repomocks "github.com/subjectbrowser/subject/internal/domain/repository/mocks"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) NewTab(_ context.Context, url string) (*entity.Tab, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.opened = append(o.opened, url)
	return entity.NewTab(entity.TabID(url), url), nil
}

type staticTabs []string

func (s staticTabs) URLs() []string { return s }

func TestManageSessionUseCase_Restore_OpensSavedTabsInOrder(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(entity.NewSessionState([]string{"https://a", "https://b"}), nil)

	opener := &recordingOpener{}
	out, err := usecase.NewManageSessionUseCase(repo).Restore(ctx, opener)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a", "https://b"}, opener.opened)
	assert.Equal(t, 2, out.Restored)
	assert.False(t, out.Home)
}

func TestManageSessionUseCase_Restore_EmptyOpensHome(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(entity.SessionState{}, nil)

	opener := &recordingOpener{}
	out, err := usecase.NewManageSessionUseCase(repo).Restore(ctx, opener)
	require.NoError(t, err)

	assert.Equal(t, []string{""}, opener.opened)
	assert.True(t, out.Home)
}

func TestManageSessionUseCase_Restore_MalformedAborts(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(entity.SessionState{}, &repository.MalformedDataError{
		Collection: repository.CollectionSession,
		Path:       "/tmp/session.json",
		Err:        errors.New("unexpected EOF"),
	})

	opener := &recordingOpener{}
	_, err := usecase.NewManageSessionUseCase(repo).Restore(ctx, opener)
	require.ErrorIs(t, err, repository.ErrMalformedData)

	var malformed *repository.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/tmp/session.json", malformed.Path)
	assert.Empty(t, opener.opened)
}

func TestManageSessionUseCase_Restore_OpenFailure(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(entity.NewSessionState([]string{"https://a"}), nil)

	_, err := usecase.NewManageSessionUseCase(repo).Restore(ctx, &recordingOpener{err: errBoom})
	require.ErrorIs(t, err, errBoom)
}

func TestManageSessionUseCase_Persist_SnapshotsTabURLs(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Save(mock.Anything, entity.NewSessionState([]string{"https://a", "https://b"})).Return(nil)

	err := usecase.NewManageSessionUseCase(repo).Persist(ctx, staticTabs{"https://a", "https://b"})
	require.NoError(t, err)
}

func TestManageSessionUseCase_Persist_Error(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errBoom)

	err := usecase.NewManageSessionUseCase(repo).Persist(ctx, staticTabs{})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to save session")
}

func TestManageSessionUseCase_RestoreThenPersistRoundTrip(t *testing.T) {
	ctx := testContext()
	f := newTabsFixture(t, nil)

	saved := entity.NewSessionState([]string{"https://a.example", "https://b.example"})
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(saved, nil)
	repo.EXPECT().Save(mock.Anything, saved).Return(nil)

	uc := usecase.NewManageSessionUseCase(repo)
	_, err := uc.Restore(ctx, f.manager)
	require.NoError(t, err)
	require.NoError(t, uc.Persist(ctx, f.manager))
}

func TestManageSessionUseCase_Clear(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Save(mock.Anything, entity.SessionState{}).Return(nil)

	require.NoError(t, usecase.NewManageSessionUseCase(repo).Clear(ctx))
}

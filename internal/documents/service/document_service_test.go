package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcode-studio/studio-backend/internal/documents/domain"
)

type fakeRepo struct {
	Repository
	created    *domain.Document
	updateArgs []any
}

func (f *fakeRepo) Create(ctx context.Context, workspaceID, name, content string) (*domain.Document, error) {
	f.created = &domain.Document{WorkspaceID: workspaceID, Name: name, Content: content, Version: 1}
	return f.created, nil
}

func (f *fakeRepo) UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error) {
	f.updateArgs = []any{id, content, expectedVersion}
	return expectedVersion + 1, nil
}

func TestCreate_TrimsName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDocumentService(repo)

	d, err := svc.Create(context.Background(), "ws-1", "  index.js  ", "const x = 1")
	require.NoError(t, err)
	assert.Equal(t, "index.js", d.Name)
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	svc := NewDocumentService(&fakeRepo{})

	_, err := svc.Create(context.Background(), "ws-1", "   ", "")
	assert.Error(t, err)
}

func TestCreate_RejectsOversizedContent(t *testing.T) {
	svc := NewDocumentService(&fakeRepo{})

	_, err := svc.Create(context.Background(), "ws-1", "big.js", strings.Repeat("a", MaxContentBytes+1))
	assert.Error(t, err)
}

func TestUpdateContent_BumpsVersion(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDocumentService(repo)

	v, err := svc.UpdateContent(context.Background(), "doc-1", "new content", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	assert.Equal(t, []any{"doc-1", "new content", int64(4)}, repo.updateArgs)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/webcode-studio/studio-backend/internal/documents/domain"
)

// MaxContentBytes caps how large one document buffer may grow. Editor
// buffers beyond this are rejected rather than shipped to the model.
const MaxContentBytes = 1 << 20

// Repository is the persistence surface the service needs.
type Repository interface {
	Create(ctx context.Context, workspaceID, name, content string) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Document, error)
	UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, workspaceID, documentID string) error
	GetActive(ctx context.Context, workspaceID string) (*domain.Document, error)
}

// DocumentService handles document-related business logic
type DocumentService struct {
	repo Repository
}

// NewDocumentService creates a new document service
func NewDocumentService(repo Repository) *DocumentService {
	return &DocumentService{repo: repo}
}

func (s *DocumentService) Create(ctx context.Context, workspaceID, name, content string) (*domain.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("document name required")
	}
	if len(content) > MaxContentBytes {
		return nil, fmt.Errorf("document content exceeds %d bytes", MaxContentBytes)
	}
	return s.repo.Create(ctx, workspaceID, name, content)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.repo.Get(ctx, id)
}

func (s *DocumentService) List(ctx context.Context, workspaceID string) ([]domain.Document, error) {
	return s.repo.ListByWorkspace(ctx, workspaceID)
}

// UpdateContent is the editor write path: compare-and-swap on the version
// the frontend last saw.
func (s *DocumentService) UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error) {
	if len(content) > MaxContentBytes {
		return 0, fmt.Errorf("document content exceeds %d bytes", MaxContentBytes)
	}
	return s.repo.UpdateContent(ctx, id, content, expectedVersion)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *DocumentService) SetActive(ctx context.Context, workspaceID, documentID string) error {
	return s.repo.SetActive(ctx, workspaceID, documentID)
}

// GetActive returns the buffer currently focused in the editor.
func (s *DocumentService) GetActive(ctx context.Context, workspaceID string) (*domain.Document, error) {
	return s.repo.GetActive(ctx, workspaceID)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webcode-studio/studio-backend/internal/documents/domain"
)

// DocumentRepository provides persistence operations for documents
type DocumentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

const documentColumns = `id, workspace_id, name, content, version, created_at, updated_at`

// Create inserts a new document with version 1.
func (r *DocumentRepository) Create(ctx context.Context, workspaceID, name, content string) (*domain.Document, error) {
	const q = `
INSERT INTO documents (id, workspace_id, name, content, version)
VALUES ($1, $2, $3, $4, 1)
RETURNING ` + documentColumns + `;
`
	var d domain.Document
	err := r.pool.QueryRow(ctx, q, uuid.New().String(), workspaceID, name, content).
		Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &d, nil
}

// Get returns a single document with its full content.
func (r *DocumentRepository) Get(ctx context.Context, id string) (*domain.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND deleted_at IS NULL;`

	var d domain.Document
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByWorkspace returns document metadata (no content) in name order.
func (r *DocumentRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Document, error) {
	const q = `
SELECT id, workspace_id, name, version, created_at, updated_at
FROM documents
WHERE workspace_id = $1 AND deleted_at IS NULL
ORDER BY name;
`
	rows, err := r.pool.Query(ctx, q, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateContent writes new content if and only if the stored version still
// equals expectedVersion, and returns the new version. A stale caller gets
// ErrVersionConflict; the row is left untouched.
func (r *DocumentRepository) UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error) {
	const q = `
UPDATE documents
SET content = $2, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $3 AND deleted_at IS NULL
RETURNING version;
`
	var newVersion int64
	err := r.pool.QueryRow(ctx, q, id, content, expectedVersion).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing document from a lost race.
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return 0, getErr
		}
		return 0, domain.ErrVersionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("update document content: %w", err)
	}
	return newVersion, nil
}

// Delete soft-deletes a document.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE documents SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// SetActive marks a document as the workspace's active buffer. The document
// must belong to the workspace.
func (r *DocumentRepository) SetActive(ctx context.Context, workspaceID, documentID string) error {
	const q = `
UPDATE workspaces w
SET active_document_id = d.id, updated_at = now()
FROM documents d
WHERE w.public_id = $1 AND d.id = $2 AND d.workspace_id = w.public_id AND d.deleted_at IS NULL;
`
	tag, err := r.pool.Exec(ctx, q, workspaceID, documentID)
	if err != nil {
		return fmt.Errorf("set active document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// GetActive returns the workspace's active document with content.
func (r *DocumentRepository) GetActive(ctx context.Context, workspaceID string) (*domain.Document, error) {
	const q = `
SELECT d.id, d.workspace_id, d.name, d.content, d.version, d.created_at, d.updated_at
FROM workspaces w
JOIN documents d ON d.id = w.active_document_id
WHERE w.public_id = $1 AND d.deleted_at IS NULL;
`
	var d domain.Document
	err := r.pool.QueryRow(ctx, q, workspaceID).
		Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveDocument
	}
	if err != nil {
		return nil, fmt.Errorf("get active document: %w", err)
	}
	return &d, nil
}

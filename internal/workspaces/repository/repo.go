package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/webcode-studio/studio-backend/internal/workspaces/domain"
	"github.com/webcode-studio/studio-backend/internal/workspaces/utils"
)

// WorkspaceRepository provides persistence operations for workspaces
type WorkspaceRepository struct {
	db *sql.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *sql.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create inserts a new workspace.
func (r *WorkspaceRepository) Create(ctx context.Context, name, template string) (*domain.Workspace, error) {
	if name == "" {
		return nil, fmt.Errorf("name required")
	}
	if template == "" {
		template = "vanilla"
	}

	for i := 0; i < 5; i++ {
		publicID, err := utils.NewTextID("studio")
		if err != nil {
			return nil, err
		}

		const q = `
INSERT INTO workspaces (public_id, name, template)
VALUES ($1, $2, $3)
RETURNING public_id, name, template, active_document_id, created_at, updated_at;
`
		var w domain.Workspace
		err = r.db.QueryRowContext(ctx, q, publicID, name, template).
			Scan(&w.PublicID, &w.Name, &w.Template, &w.ActiveDocumentID, &w.CreatedAt, &w.UpdatedAt)

		if err == nil {
			return &w, nil
		}

		// unique violation on public_id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique workspace id")
}

// List returns all non-deleted workspaces, newest first.
func (r *WorkspaceRepository) List(ctx context.Context) ([]domain.Workspace, error) {
	const q = `
SELECT public_id, name, template, active_document_id, created_at, updated_at
FROM workspaces
WHERE deleted_at IS NULL
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Workspace
	for rows.Next() {
		var w domain.Workspace
		if err := rows.Scan(&w.PublicID, &w.Name, &w.Template, &w.ActiveDocumentID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Get returns a single workspace by public ID.
func (r *WorkspaceRepository) Get(ctx context.Context, publicID string) (*domain.Workspace, error) {
	const q = `
SELECT public_id, name, template, active_document_id, created_at, updated_at
FROM workspaces
WHERE public_id = $1 AND deleted_at IS NULL;
`
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx, q, publicID).
		Scan(&w.PublicID, &w.Name, &w.Template, &w.ActiveDocumentID, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Rename updates the workspace name.
func (r *WorkspaceRepository) Rename(ctx context.Context, publicID, name string) (*domain.Workspace, error) {
	const q = `
UPDATE workspaces
SET name = $2, updated_at = now()
WHERE public_id = $1 AND deleted_at IS NULL
RETURNING public_id, name, template, active_document_id, created_at, updated_at;
`
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx, q, publicID, name).
		Scan(&w.PublicID, &w.Name, &w.Template, &w.ActiveDocumentID, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SoftDelete marks a workspace deleted and reports whether a row matched.
func (r *WorkspaceRepository) SoftDelete(ctx context.Context, publicID string) (bool, error) {
	const q = `
UPDATE workspaces
SET deleted_at = now()
WHERE public_id = $1 AND deleted_at IS NULL;
`
	res, err := r.db.ExecContext(ctx, q, publicID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

// HistoryRepository persists one row per pipeline run for later debugging
// of model output.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// RecordRun inserts one audit row.
func (r *HistoryRepository) RecordRun(ctx context.Context, run *domain.SuggestionRun) error {
	if r.pool == nil {
		return fmt.Errorf("pgx pool is nil")
	}

	suggestionsB, err := json.Marshal(run.Suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	const q = `
INSERT INTO suggestion_runs (id, document_id, document_version, kind, model, suggestions)
VALUES ($1, $2, $3, $4, $5, $6::jsonb);
`
	if _, err := r.pool.Exec(ctx, q, run.ID, run.DocumentID, run.DocumentVersion, run.Kind, run.Model, suggestionsB); err != nil {
		return fmt.Errorf("insert suggestion run: %w", err)
	}
	return nil
}

// ListByDocument returns the most recent runs for a document, newest first.
func (r *HistoryRepository) ListByDocument(ctx context.Context, documentID string, limit int) ([]domain.SuggestionRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const q = `
SELECT id, document_id, document_version, kind, model, suggestions, created_at
FROM suggestion_runs
WHERE document_id = $1
ORDER BY created_at DESC
LIMIT $2;
`
	rows, err := r.pool.Query(ctx, q, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list suggestion runs: %w", err)
	}
	defer rows.Close()

	var out []domain.SuggestionRun
	for rows.Next() {
		var run domain.SuggestionRun
		var suggestionsB []byte
		if err := rows.Scan(&run.ID, &run.DocumentID, &run.DocumentVersion, &run.Kind, &run.Model, &suggestionsB, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan suggestion run: %w", err)
		}
		if err := json.Unmarshal(suggestionsB, &run.Suggestions); err != nil {
			return nil, fmt.Errorf("unmarshal suggestions: %w", err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// PurgeOlderThan deletes runs past the retention window and returns how many
// rows were removed.
func (r *HistoryRepository) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suggestion_runs WHERE created_at < now() - $1::interval;`,
		fmt.Sprintf("%d seconds", int64(retention.Seconds())))
	if err != nil {
		return 0, fmt.Errorf("purge suggestion runs: %w", err)
	}
	return tag.RowsAffected(), nil
}

package domain

import "time"

// Document is one editable file buffer inside a workspace. Version increases
// by one on every content write; suggestion applies use it as a
// compare-and-swap token so a completion computed against an older content
// can never overwrite a newer one.
type Document struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

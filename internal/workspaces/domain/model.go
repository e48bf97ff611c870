package domain

import "time"

// Workspace is one editor project: a named set of document buffers plus the
// pointer to the buffer currently open in the editor.
type Workspace struct {
	PublicID         string    `json:"public_id"`
	Name             string    `json:"name"`
	Template         string    `json:"template"`
	ActiveDocumentID *string   `json:"active_document_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

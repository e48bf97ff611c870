package domain

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrVersionConflict  = errors.New("document changed since it was read")
	ErrDuplicateName    = errors.New("document name already used in workspace")
	ErrNoActiveDocument = errors.New("workspace has no active document")
)

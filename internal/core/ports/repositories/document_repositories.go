package repositories

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// DocumentReader defines read operations for project documents
type DocumentReader interface {
	// FindDocumentByID retrieves a document record by its ID.
	FindDocumentByID(ctx context.Context, projectID, documentID string) (*domain.Document, error)

	// FindDocumentsByProject retrieves every document of a project.
	FindDocumentsByProject(ctx context.Context, projectID string) ([]domain.Document, error)
}

// DocumentWriter defines write operations for project documents
type DocumentWriter interface {
	// SaveDocument persists a document record.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// DeleteDocument removes a document record permanently.
	DeleteDocument(ctx context.Context, projectID, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

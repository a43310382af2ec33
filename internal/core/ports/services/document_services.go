package services

import (
	"context"
	"io"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// FileStore abstracts where uploaded document bytes live. The default
// implementation writes to a directory on local disk.
type FileStore interface {
	// Save writes the content under the given stored name.
	Save(ctx context.Context, storedName string, content io.Reader) error

	// Open returns a reader over a stored file. The caller closes it.
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)

	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ctx context.Context, storedName string) error
}

// DocumentReaderSvc defines read operations for project documents
type DocumentReaderSvc interface {
	// ListDocuments retrieves every document record of a project.
	ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error)

	// OpenDocument retrieves a document record and a reader over its bytes.
	OpenDocument(ctx context.Context, projectID, documentID string) (*domain.Document, io.ReadCloser, error)
}

// DocumentWriterSvc defines write operations for project documents
type DocumentWriterSvc interface {
	// StoreDocument persists the uploaded content and its record.
	StoreDocument(ctx context.Context, projectID, docType, originalName string, content io.Reader, creatorUserID string) (*domain.Document, error)

	// DeleteDocument removes both the record and the stored bytes.
	DeleteDocument(ctx context.Context, projectID, documentID string) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

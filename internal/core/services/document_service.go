package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
)

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	projectRepo  portsrepo.ProjectReader
	fileStore    portssvc.FileStore
}

// NewDocumentService creates a new document service backed by the given
// repository and file store.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, projectRepo portsrepo.ProjectReader, fileStore portssvc.FileStore) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo, projectRepo: projectRepo, fileStore: fileStore}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.documentRepo.FindDocumentsByProject(ctx, projectID)
}

func (s *documentService) OpenDocument(ctx context.Context, projectID, documentID string) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, projectID, documentID)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.fileStore.Open(ctx, doc.FileName)
	if err != nil {
		s.LogError(ctx, err, "Failed to open stored file", "document_id", documentID)
		return nil, nil, fmt.Errorf("%w: stored file missing", apperrors.ErrNotFound)
	}
	return doc, reader, nil
}

// StoreDocument writes the upload under a randomised name so client-supplied
// names never touch the filesystem, then records its metadata.
func (s *documentService) StoreDocument(ctx context.Context, projectID, docType, originalName string, content io.Reader, creatorUserID string) (*domain.Document, error) {
	if !domain.ValidDocumentType(domain.DocumentType(docType)) {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, docType)
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	storedName := uuid.NewString() + filepath.Ext(originalName)
	if err := s.fileStore.Save(ctx, storedName, content); err != nil {
		s.LogError(ctx, err, "Failed to store uploaded file", "project_id", projectID)
		return nil, err
	}

	now := time.Now()
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		ProjectID:    projectID,
		DocType:      domain.DocumentType(docType),
		FileName:     storedName,
		OriginalName: originalName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document record", "project_id", projectID)
		// Best effort cleanup of the orphaned file.
		if rmErr := s.fileStore.Remove(ctx, storedName); rmErr != nil {
			s.LogError(ctx, rmErr, "Failed to remove orphaned file", "stored_name", storedName)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Document stored", "project_id", projectID, "document_id", doc.DocumentID)
	return &doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, projectID, documentID string) error {
	doc, err := s.documentRepo.FindDocumentByID(ctx, projectID, documentID)
	if err != nil {
		return err
	}
	if err := s.documentRepo.DeleteDocument(ctx, projectID, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document record", "document_id", documentID)
		return err
	}
	if err := s.fileStore.Remove(ctx, doc.FileName); err != nil {
		s.LogError(ctx, err, "Failed to remove stored file", "stored_name", doc.FileName)
	}
	return nil
}

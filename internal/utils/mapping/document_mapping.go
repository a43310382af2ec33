package mapping

import (
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:   d.DocumentID,
		ProjectID:    d.ProjectID,
		DocType:      string(d.DocType),
		FileName:     d.FileName,
		OriginalName: d.OriginalName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:   m.DocumentID,
		ProjectID:    m.ProjectID,
		DocType:      domain.DocumentType(m.DocType),
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}

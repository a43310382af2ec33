package dto

import "github.com/stroyhub/fitout_crm_backend/internal/core/domain"

// DocumentResponse defines the data returned for an uploaded project file.
// FileName is the stored name on disk; OriginalName is what the client
// uploaded and what downloads are served as.
type DocumentResponse struct {
	DocumentID   string `json:"documentID"`
	DocType      string `json:"docType"`
	OriginalName string `json:"originalName"`
	UploadedAt   string `json:"uploadedAt"`
}

func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:   d.DocumentID,
		DocType:      string(d.DocType),
		OriginalName: d.OriginalName,
		UploadedAt:   d.CreatedAt.Format(DateFormat),
	}
}

// ToListDocumentsResponse converts a project's documents.
func ToListDocumentsResponse(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, ToDocumentResponse(&docs[i]))
	}
	return out
}

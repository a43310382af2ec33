package domain

// DocumentType categorises an uploaded project document.
type DocumentType string

const (
	DocContract DocumentType = "contract"
	DocEstimate DocumentType = "estimate"
	DocOther    DocumentType = "other"
)

// ValidDocumentType reports whether t is one of the allowed types.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocContract, DocEstimate, DocOther:
		return true
	}
	return false
}

// Document is the metadata of a file attached to a project. FileName is the
// randomised on-disk name; OriginalName is what the uploader called it.
type Document struct {
	DocumentID   string       `json:"documentID"` // Primary Key (UUID)
	ProjectID    string       `json:"projectID"`
	DocType      DocumentType `json:"docType"`
	FileName     string       `json:"fileName"`
	OriginalName string       `json:"originalName"`
	AuditFields
}

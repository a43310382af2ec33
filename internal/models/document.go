package models

// Document represents a row of the documents table. FileName is the random
// stored name on disk; OriginalName is what the client uploaded.
type Document struct {
	DocumentID   string `db:"document_id"`
	ProjectID    string `db:"project_id"`
	DocType      string `db:"doc_type"`
	FileName     string `db:"file_name"`
	OriginalName string `db:"original_name"`
	AuditFields
}

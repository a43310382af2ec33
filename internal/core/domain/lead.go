package domain

// LeadStatus is the intake pipeline state of a lead.
type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadInProgress LeadStatus = "in_progress"
	LeadClosed     LeadStatus = "closed"
)

// ValidLeadStatus reports whether s is one of the allowed states.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadInProgress, LeadClosed:
		return true
	}
	return false
}

// Lead is an incoming client request that may become a project.
type Lead struct {
	LeadID             string     `json:"leadID"` // Primary Key (UUID)
	ClientName         string     `json:"clientName"`
	Phone              string     `json:"phone"`
	LocationText       string     `json:"locationText"`
	RequestDescription string     `json:"requestDescription"`
	Source             string     `json:"source"`
	Status             LeadStatus `json:"status"`
	Comment            string     `json:"comment"`
	AuditFields
}

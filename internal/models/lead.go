package models

// Lead represents a row of the leads table.
type Lead struct {
	LeadID             string `db:"lead_id"`
	ClientName         string `db:"client_name"`
	Phone              string `db:"phone"`
	LocationText       string `db:"location_text"`
	RequestDescription string `db:"request_description"`
	Source             string `db:"source"`
	Status             string `db:"status"`
	Comment            string `db:"comment"`
	AuditFields
}

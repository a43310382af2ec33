package mapping

import (
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
)

// ToModelLead converts a domain Lead to a model Lead
func ToModelLead(d domain.Lead) models.Lead {
	return models.Lead{
		LeadID:             d.LeadID,
		ClientName:         d.ClientName,
		Phone:              d.Phone,
		LocationText:       d.LocationText,
		RequestDescription: d.RequestDescription,
		Source:             d.Source,
		Status:             string(d.Status),
		Comment:            d.Comment,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLead converts a model Lead to a domain Lead
func ToDomainLead(m models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:             m.LeadID,
		ClientName:         m.ClientName,
		Phone:              m.Phone,
		LocationText:       m.LocationText,
		RequestDescription: m.RequestDescription,
		Source:             m.Source,
		Status:             domain.LeadStatus(m.Status),
		Comment:            m.Comment,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeadSlice converts a slice of model Leads to a slice of domain Leads
func ToDomainLeadSlice(ms []models.Lead) []domain.Lead {
	ds := make([]domain.Lead, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLead(m)
	}
	return ds
}

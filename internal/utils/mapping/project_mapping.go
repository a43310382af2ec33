package mapping

import (
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project. Children
// are mapped separately since they live in their own tables.
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:         d.ProjectID,
		ProjectName:       d.ProjectName,
		ClientName:        d.ClientName,
		LocationText:      d.LocationText,
		ContractAmount:    d.ContractAmount,
		CurrencyCode:      d.CurrencyCode,
		StartDate:         d.StartDate,
		DurationDays:      d.DurationDays,
		Status:            string(d.Status),
		CommissionPercent: d.CommissionPercent,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project with empty
// child collections.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:         m.ProjectID,
		ProjectName:       m.ProjectName,
		ClientName:        m.ClientName,
		LocationText:      m.LocationText,
		ContractAmount:    m.ContractAmount,
		CurrencyCode:      m.CurrencyCode,
		StartDate:         m.StartDate,
		DurationDays:      m.DurationDays,
		Status:            domain.ProjectStatus(m.Status),
		CommissionPercent: m.CommissionPercent,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentItem converts a domain PaymentItem to a model PaymentItem
func ToModelPaymentItem(d domain.PaymentItem) models.PaymentItem {
	return models.PaymentItem{
		ItemID:        d.ItemID,
		ProjectID:     d.ProjectID,
		Title:         d.Title,
		Percent:       d.Percent,
		DueCondition:  d.DueCondition,
		InvoiceStatus: string(d.InvoiceStatus),
		InvoiceDate:   d.InvoiceDate,
		PaidDate:      d.PaidDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentItem converts a model PaymentItem to a domain PaymentItem
func ToDomainPaymentItem(m models.PaymentItem) domain.PaymentItem {
	return domain.PaymentItem{
		ItemID:       m.ItemID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Percent:      m.Percent,
		DueCondition: m.DueCondition,
		InvoiceTracking: domain.InvoiceTracking{
			InvoiceStatus: domain.InvoiceStatus(m.InvoiceStatus),
			InvoiceDate:   m.InvoiceDate,
			PaidDate:      m.PaidDate,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentItemSlice converts model PaymentItems to domain PaymentItems
func ToDomainPaymentItemSlice(ms []models.PaymentItem) []domain.PaymentItem {
	ds := make([]domain.PaymentItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentItem(m)
	}
	return ds
}

// ToModelVariation converts a domain Variation to a model Variation
func ToModelVariation(d domain.Variation) models.Variation {
	return models.Variation{
		VariationID: d.VariationID,
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		ExtraAmount: d.ExtraAmount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVariation converts a model Variation to a domain Variation with
// an empty item collection.
func ToDomainVariation(m models.Variation) domain.Variation {
	return domain.Variation{
		VariationID: m.VariationID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		ExtraAmount: m.ExtraAmount,
		Status:      domain.VariationStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVariationItem converts a domain VariationItem to a model VariationItem
func ToModelVariationItem(d domain.VariationItem) models.VariationItem {
	return models.VariationItem{
		ItemID:        d.ItemID,
		VariationID:   d.VariationID,
		Title:         d.Title,
		Percent:       d.Percent,
		DueCondition:  d.DueCondition,
		InvoiceStatus: string(d.InvoiceStatus),
		InvoiceDate:   d.InvoiceDate,
		PaidDate:      d.PaidDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVariationItem converts a model VariationItem to a domain VariationItem
func ToDomainVariationItem(m models.VariationItem) domain.VariationItem {
	return domain.VariationItem{
		ItemID:       m.ItemID,
		VariationID:  m.VariationID,
		Title:        m.Title,
		Percent:      m.Percent,
		DueCondition: m.DueCondition,
		InvoiceTracking: domain.InvoiceTracking{
			InvoiceStatus: domain.InvoiceStatus(m.InvoiceStatus),
			InvoiceDate:   m.InvoiceDate,
			PaidDate:      m.PaidDate,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVariationItemSlice converts model VariationItems to domain VariationItems
func ToDomainVariationItemSlice(ms []models.VariationItem) []domain.VariationItem {
	ds := make([]domain.VariationItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVariationItem(m)
	}
	return ds
}

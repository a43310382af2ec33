package mapping

import (
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
)

// ToModelTask converts a domain ProjectTask to a model ProjectTask
func ToModelTask(d domain.ProjectTask) models.ProjectTask {
	return models.ProjectTask{
		TaskID:       d.TaskID,
		ProjectID:    d.ProjectID,
		Title:        d.Title,
		Description:  d.Description,
		DeadlineDate: d.DeadlineDate,
		Status:       string(d.Status),
		CompletedAt:  d.CompletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTask converts a model ProjectTask to a domain ProjectTask
func ToDomainTask(m models.ProjectTask) domain.ProjectTask {
	return domain.ProjectTask{
		TaskID:       m.TaskID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Description:  m.Description,
		DeadlineDate: m.DeadlineDate,
		Status:       domain.TaskStatus(m.Status),
		CompletedAt:  m.CompletedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaskSlice converts model ProjectTasks to domain ProjectTasks
func ToDomainTaskSlice(ms []models.ProjectTask) []domain.ProjectTask {
	ds := make([]domain.ProjectTask, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}

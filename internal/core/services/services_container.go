package services

import (
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/platform/config"
)

// NewServiceContainer wires every application service onto the repository
// provider and returns the container the handlers consume.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore portssvc.FileStore) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:       userService,
		Lead:       NewLeadService(repos.LeadRepo),
		Project:    NewProjectService(repos.ProjectRepo),
		Task:       NewTaskService(repos.TaskRepo, repos.ProjectRepo),
		Document:   NewDocumentService(repos.DocumentRepo, repos.ProjectRepo, fileStore),
		Commission: NewCommissionService(repos.ProjectRepo),
		Currency:   NewCurrencyService(repos.CurrencyRepo),

		TokenService:       NewTokenService(cfg, userService),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}

package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User       UserSvcFacade
	Lead       LeadSvcFacade
	Project    ProjectSvcFacade
	Task       TaskSvcFacade
	Document   DocumentSvcFacade
	Commission CommissionSvcFacade
	Currency   CurrencySvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}

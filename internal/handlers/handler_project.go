package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
	"github.com/stroyhub/fitout_crm_backend/internal/platform/config"
)

// projectHandler handles HTTP requests related to projects, their payment
// plans and variations.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers routes related to projects and their
// nested resources.
func registerProjectRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newProjectHandler(services.Project)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProjectByID)
		projects.PUT("/:projectID", h.updateProject)
		projects.PATCH("/:projectID/status", h.updateProjectStatus)
		projects.DELETE("/:projectID", h.archiveProject)
		projects.PUT("/:projectID/commission", h.setCommissionPercent)

		projects.POST("/:projectID/payment-items", h.addPaymentItem)
		projects.PUT("/:projectID/payment-items/:itemID", h.updatePaymentItem)
		projects.DELETE("/:projectID/payment-items/:itemID", h.deletePaymentItem)
		projects.PATCH("/:projectID/payment-items/:itemID/invoice-status", h.updateInvoiceStatus)

		projects.POST("/:projectID/variations", h.addVariation)
		projects.PUT("/:projectID/variations/:variationID", h.updateVariation)
		projects.DELETE("/:projectID/variations/:variationID", h.deleteVariation)
		projects.POST("/:projectID/variations/:variationID/items", h.addVariationItem)
		projects.PUT("/:projectID/variations/:variationID/items/:itemID", h.updateVariationItem)
		projects.DELETE("/:projectID/variations/:variationID/items/:itemID", h.deleteVariationItem)
		projects.PATCH("/:projectID/variations/:variationID/items/:itemID/invoice-status", h.updateVariationItemInvoiceStatus)
	}

	registerTaskRoutes(projects, services.Task)
	registerDocumentRoutes(projects, cfg, services.Document)
	registerProjectCommissionRoutes(projects, services.Commission)
}

// respondProjectError maps service errors onto HTTP statuses. Unknown errors
// are logged and surface as 500s.
func respondProjectError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

func (h *projectHandler) respondWithProject(c *gin.Context, status int, project *domain.Project) {
	c.JSON(status, dto.ToProjectResponse(project, time.Now().UTC()))
}

func (h *projectHandler) createProject(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondProjectError(c, err, "create project")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Project created", slog.String("project_id", project.ProjectID))
	h.respondWithProject(c, http.StatusCreated, project)
}

func (h *projectHandler) listProjects(c *gin.Context) {
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	projects, nextToken, err := h.projectService.ListProjects(c.Request.Context(), params)
	if err != nil {
		respondProjectError(c, err, "list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects, time.Now().UTC(), nextToken))
}

func (h *projectHandler) getProjectByID(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondProjectError(c, err, "retrieve project")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) updateProject(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("projectID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update project")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) updateProjectStatus(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProjectStatus(c.Request.Context(), c.Param("projectID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update project status")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) archiveProject(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.projectService.ArchiveProject(c.Request.Context(), c.Param("projectID"), requestingUserID); err != nil {
		respondProjectError(c, err, "archive project")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) setCommissionPercent(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.SetCommissionPercent(c.Request.Context(), c.Param("projectID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "set commission percent")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) addPaymentItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.AddPaymentItem(c.Request.Context(), c.Param("projectID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "add payment item")
		return
	}
	h.respondWithProject(c, http.StatusCreated, project)
}

func (h *projectHandler) updatePaymentItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdatePaymentItem(c.Request.Context(), c.Param("projectID"), c.Param("itemID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update payment item")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) deletePaymentItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.projectService.DeletePaymentItem(c.Request.Context(), c.Param("projectID"), c.Param("itemID"), requestingUserID); err != nil {
		respondProjectError(c, err, "delete payment item")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) updateInvoiceStatus(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateInvoiceStatus(c.Request.Context(), c.Param("projectID"), c.Param("itemID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update invoice status")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) addVariation(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.AddVariation(c.Request.Context(), c.Param("projectID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "add variation")
		return
	}
	h.respondWithProject(c, http.StatusCreated, project)
}

func (h *projectHandler) updateVariation(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateVariation(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update variation")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) deleteVariation(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.projectService.DeleteVariation(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), requestingUserID); err != nil {
		respondProjectError(c, err, "delete variation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) addVariationItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.AddVariationItem(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "add variation item")
		return
	}
	h.respondWithProject(c, http.StatusCreated, project)
}

func (h *projectHandler) updateVariationItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateVariationItem(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), c.Param("itemID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update variation item")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

func (h *projectHandler) deleteVariationItem(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.projectService.DeleteVariationItem(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), c.Param("itemID"), requestingUserID); err != nil {
		respondProjectError(c, err, "delete variation item")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) updateVariationItemInvoiceStatus(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateVariationItemInvoiceStatus(c.Request.Context(), c.Param("projectID"), c.Param("variationID"), c.Param("itemID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update variation item invoice status")
		return
	}
	h.respondWithProject(c, http.StatusOK, project)
}

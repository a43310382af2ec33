package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
)

// leadHandler handles HTTP requests related to leads.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

func newLeadHandler(ls portssvc.LeadSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls}
}

// RegisterLeadRoutes registers routes related to leads.
func RegisterLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade) {
	h := newLeadHandler(leadService)

	leads := rg.Group("/leads")
	{
		leads.POST("", h.createLead)
		leads.GET("", h.listLeads)
		leads.GET("/:leadID", h.getLeadByID)
		leads.PUT("/:leadID", h.updateLead)
		leads.PATCH("/:leadID/status", h.updateLeadStatus)
		leads.DELETE("/:leadID", h.deleteLead)
	}
}

func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create lead"})
		return
	}

	logger.Info("Lead created", slog.String("lead_id", lead.LeadID))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	leads, sources, nextToken, err := h.leadService.ListLeads(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list leads", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leads"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeadsResponse(leads, sources, nextToken))
}

func (h *leadHandler) getLeadByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	leadID := c.Param("leadID")

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), leadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to get lead", slog.String("error", err.Error()), slog.String("lead_id", leadID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve lead"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), c.Param("leadID"), req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to update lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *leadHandler) updateLeadStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLeadStatus(c.Request.Context(), c.Param("leadID"), req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update lead status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update lead status"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.leadService.DeleteLead(c.Request.Context(), c.Param("leadID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to delete lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete lead"})
		return
	}
	c.Status(http.StatusNoContent)
}

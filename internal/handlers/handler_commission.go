package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// commissionHandler handles HTTP requests for derived commission figures.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

func newCommissionHandler(cs portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

// registerCommissionRoutes registers the cross-project commission overview.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	rg.GET("/commissions", h.listCommissionProjects)
}

// registerProjectCommissionRoutes registers the per-project statement and
// its export, nested under a project.
func registerProjectCommissionRoutes(projects *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	projects.GET("/:projectID/commission", h.getStatement)
	projects.GET("/:projectID/commission/export", h.exportStatement)
}

func (h *commissionHandler) listCommissionProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.commissionService.ListCommissionProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list commission projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list commission projects"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommissionProjectsResponse(projects))
}

func (h *commissionHandler) getStatement(c *gin.Context) {
	statement, err := h.commissionService.GetStatement(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondProjectError(c, err, "build commission statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionStatementResponse(*statement))
}

func (h *commissionHandler) exportStatement(c *gin.Context) {
	content, filename, err := h.commissionService.ExportStatementXLSX(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondProjectError(c, err, "export commission statement")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
	"github.com/stroyhub/fitout_crm_backend/internal/platform/config"
)

// documentHandler handles HTTP requests related to project documents.
type documentHandler struct {
	documentService   portssvc.DocumentSvcFacade
	maxUploadBytes    int64
	allowedExtensions map[string]struct{}
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, cfg *config.Config) *documentHandler {
	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[ext] = struct{}{}
	}
	return &documentHandler{
		documentService:   ds,
		maxUploadBytes:    cfg.MaxUploadBytes,
		allowedExtensions: allowed,
	}
}

// registerDocumentRoutes registers document routes nested under a project.
func registerDocumentRoutes(projects *gin.RouterGroup, cfg *config.Config, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService, cfg)

	docs := projects.Group("/:projectID/documents")
	{
		docs.POST("", h.uploadDocument)
		docs.GET("", h.listDocuments)
		docs.GET("/:documentID/download", h.downloadDocument)
		docs.DELETE("/:documentID", h.deleteDocument)
	}
}

func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File is required"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	if _, ok := h.allowedExtensions[ext]; !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File type not allowed"})
		return
	}

	docType := c.DefaultPostForm("docType", "other")

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer file.Close()

	doc, err := h.documentService.StoreDocument(c.Request.Context(), c.Param("projectID"), docType, filepath.Base(fileHeader.Filename), file, creatorUserID)
	if err != nil {
		respondProjectError(c, err, "store document")
		return
	}

	logger.Info("Document uploaded", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *documentHandler) listDocuments(c *gin.Context) {
	docs, err := h.documentService.ListDocuments(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondProjectError(c, err, "list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

func (h *documentHandler) downloadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, reader, err := h.documentService.OpenDocument(c.Request.Context(), c.Param("projectID"), c.Param("documentID"))
	if err != nil {
		respondProjectError(c, err, "download document")
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.OriginalName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.Error("Failed to stream document", slog.String("error", err.Error()), slog.String("document_id", doc.DocumentID))
	}
}

func (h *documentHandler) deleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("projectID"), c.Param("documentID")); err != nil {
		respondProjectError(c, err, "delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
)

// taskHandler handles HTTP requests related to project tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes registers task routes nested under a project.
func registerTaskRoutes(projects *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := projects.Group("/:projectID/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:taskID", h.getTaskByID)
		tasks.PUT("/:taskID", h.updateTask)
		tasks.PATCH("/:taskID/status", h.updateTaskStatus)
		tasks.DELETE("/:taskID", h.deleteTask)
	}
}

func (h *taskHandler) createTask(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), c.Param("projectID"), req, creatorUserID)
	if err != nil {
		respondProjectError(c, err, "create task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *taskHandler) listTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondProjectError(c, err, "list tasks")
		return
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = dto.ToTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *taskHandler) getTaskByID(c *gin.Context) {
	task, err := h.taskService.GetTaskByID(c.Request.Context(), c.Param("projectID"), c.Param("taskID"))
	if err != nil {
		respondProjectError(c, err, "retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) updateTask(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("projectID"), c.Param("taskID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) updateTaskStatus(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), c.Param("projectID"), c.Param("taskID"), req, requestingUserID)
	if err != nil {
		respondProjectError(c, err, "update task status")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("projectID"), c.Param("taskID")); err != nil {
		respondProjectError(c, err, "delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

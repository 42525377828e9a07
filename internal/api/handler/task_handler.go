package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/ports"
)

// TaskHandler handles the student-scoped task endpoints.
type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns the authenticated student's tasks.
//
// @Summary      List my tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTasksResponse
// @Failure      401  {object}  errorResponse
// @Router       /student/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListForStudent(c.Request().Context(), principal.StudentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// UpdateStatus applies a status transition to one of the student's tasks.
//
// @Summary      Update a task's status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path      string               true  "Task id"
// @Param        body    body      updateStatusRequest  true  "Target status"
// @Success      200     {object}  updateStatusResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /student/tasks/{taskId}/updateStatus [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.UpdateStatus(c.Request().Context(), c.Param("taskId"), principal.StudentID, domain.TaskStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateStatusResponse{
		Message: "task status updated successfully",
		Task:    toTaskResponse(task),
	})
}

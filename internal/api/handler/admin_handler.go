package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/tasktrack/internal/core/ports"
)

// AdminHandler handles the provisioning endpoints (admin token required).
type AdminHandler struct {
	auth  ports.AuthService
	tasks ports.TaskService
}

func NewAdminHandler(auth ports.AuthService, tasks ports.TaskService) *AdminHandler {
	return &AdminHandler{auth: auth, tasks: tasks}
}

// AddStudent creates a new roster member.
//
// @Summary      Add a student
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStudentRequest  true  "Student details"
// @Success      200   {object}  addStudentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/students/add [post]
func (h *AdminHandler) AddStudent(c echo.Context) error {
	var req addStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.auth.RegisterStudent(c.Request().Context(), ports.RegisterStudentInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, addStudentResponse{
		Message: "student added successfully",
		Student: toStudentResponse(student),
	})
}

// AssignTask assigns a task to an existing student.
//
// @Summary      Assign a task to a student
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignTaskRequest  true  "Task details"
// @Success      200   {object}  assignTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/tasks/assign [post]
func (h *AdminHandler) AssignTask(c echo.Context) error {
	var req assignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.Assign(c.Request().Context(), ports.AssignTaskInput{
		StudentID: req.StudentID,
		Name:      req.Name,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignTaskResponse{
		Message: "task assigned successfully",
		Task:    toTaskResponse(task),
	})
}

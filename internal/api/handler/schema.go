package handler

import (
	"time"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type addStudentRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password"   validate:"required,min=6"`
}

type assignTaskRequest struct {
	StudentID string    `json:"studentId" validate:"required"`
	Name      string    `json:"name"      validate:"required"`
	DueDate   time.Time `json:"dueDate"   validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response types ---

// Response-only types owned by the transport layer; the JSON contract is not
// coupled to internal domain changes.

type tokenResponse struct {
	Token string `json:"token"`
}

type studentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type addStudentResponse struct {
	Message string          `json:"message"`
	Student studentResponse `json:"student"`
}

type taskResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	DueDate time.Time `json:"due_date"`
	Status  string    `json:"status"`
}

type assignTaskResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type updateStatusResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type listTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

// --- Mappers ---

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:      t.ID,
		Name:    t.Name,
		DueDate: t.DueDate.UTC(),
		Status:  string(t.Status),
	}
}

func toTaskListResponse(tasks []*domain.Task) listTasksResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return listTasksResponse{Tasks: out}
}

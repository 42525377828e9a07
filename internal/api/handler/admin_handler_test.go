package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/ports"
)

type stubTaskService struct {
	assignFn func(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error)
	updateFn func(ctx context.Context, taskID, requesterID string, target domain.TaskStatus) (*domain.Task, error)
	listFn   func(ctx context.Context, studentID string) ([]*domain.Task, error)
}

func (s *stubTaskService) Assign(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
	return s.assignFn(ctx, input)
}

func (s *stubTaskService) UpdateStatus(ctx context.Context, taskID, requesterID string, target domain.TaskStatus) (*domain.Task, error) {
	return s.updateFn(ctx, taskID, requesterID, target)
}

func (s *stubTaskService) ListForStudent(ctx context.Context, studentID string) ([]*domain.Task, error) {
	return s.listFn(ctx, studentID)
}

func TestAdminHandler_AddStudent_Success(t *testing.T) {
	e := newTestEcho()
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterStudentInput) (*domain.Student, error) {
			if input.Name != "Alice" || input.Email != "alice@x.com" || input.Department != "maths" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Student{ID: "student_1", Name: input.Name, Email: input.Email, Department: input.Department}, nil
		},
	}
	handler := NewAdminHandler(auth, &stubTaskService{})

	body := strings.NewReader(`{"name":"Alice","email":"alice@x.com","department":"maths","password":"pw1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/students/add", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AddStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response")
	}
	student, ok := resp["student"].(map[string]any)
	if !ok || student["id"] != "student_1" {
		t.Fatalf("unexpected student payload: %+v", resp)
	}
}

func TestAdminHandler_AddStudent_Duplicate(t *testing.T) {
	e := newTestEcho()
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterStudentInput) (*domain.Student, error) {
			return nil, domain.ErrDuplicateStudent
		},
	}
	handler := NewAdminHandler(auth, &stubTaskService{})

	body := strings.NewReader(`{"name":"Alice","email":"alice@x.com","department":"maths","password":"pw1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/students/add", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AddStudent(c); !errors.Is(err, domain.ErrDuplicateStudent) {
		t.Fatalf("expected ErrDuplicateStudent, got %v", err)
	}
}

func TestAdminHandler_AddStudent_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterStudentInput) (*domain.Student, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(auth, &stubTaskService{})

	// missing email, short password
	body := strings.NewReader(`{"name":"Alice","department":"maths","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/students/add", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AddStudent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_AssignTask_Success(t *testing.T) {
	e := newTestEcho()
	due := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	tasks := &stubTaskService{
		assignFn: func(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
			if input.StudentID != "student_1" || input.Name != "essay" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Task{
				ID:        "task_1",
				StudentID: input.StudentID,
				Name:      input.Name,
				DueDate:   input.DueDate,
				Status:    domain.StatusPending,
			}, nil
		},
	}
	handler := NewAdminHandler(&stubAuthService{}, tasks)

	body := strings.NewReader(`{"studentId":"student_1","name":"essay","dueDate":"` + due.Format(time.RFC3339) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/tasks/assign", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AssignTask(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	task, ok := resp["task"].(map[string]any)
	if !ok || task["id"] != "task_1" || task["status"] != "pending" {
		t.Fatalf("unexpected task payload: %+v", resp)
	}
}

func TestAdminHandler_AssignTask_RequiresDocumentedKeys(t *testing.T) {
	e := newTestEcho()
	tasks := &stubTaskService{
		assignFn: func(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(&stubAuthService{}, tasks)

	// snake_case keys are not part of the request contract and must not bind
	body := strings.NewReader(`{"student_id":"student_1","name":"essay","due_date":"2030-01-01T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/tasks/assign", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AssignTask(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_AssignTask_UnknownStudent(t *testing.T) {
	e := newTestEcho()
	tasks := &stubTaskService{
		assignFn: func(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
			return nil, domain.ErrStudentNotFound
		},
	}
	handler := NewAdminHandler(&stubAuthService{}, tasks)

	body := strings.NewReader(`{"studentId":"ghost","name":"essay","dueDate":"2030-01-01T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/tasks/assign", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AssignTask(c); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/token"
)

func testCodec() *token.Codec {
	return token.NewCodec("test-secret", time.Hour)
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	codec := testCodec()
	tok, err := codec.Issue(domain.StudentPrincipal("student_1"))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		principal, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if principal.Role != domain.RoleStudent || principal.StudentID != "student_1" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_BearerPrefixTolerated(t *testing.T) {
	e := echo.New()
	codec := testCodec()
	tok, err := codec.Issue(domain.AdminPrincipal())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		principal, _ := Principal(c)
		if principal.Role != domain.RoleAdmin {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ForgedSignature(t *testing.T) {
	e := echo.New()
	other := token.NewCodec("other-secret", time.Hour)
	tok, err := other.Issue(domain.StudentPrincipal("student_1"))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	expired := token.NewCodec("test-secret", -time.Minute)
	tok, err := expired.Issue(domain.StudentPrincipal("student_1"))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	// expired and forged tokens are indistinguishable to the caller
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testCodec(), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

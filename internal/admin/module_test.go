package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadgenie_backend/platform/httpkit"
	"leadgenie_backend/platform/logger"
)

type fakeChecker struct {
	admins map[uuid.UUID]bool
	err    error
}

func (f *fakeChecker) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

func guardedRequest(t *testing.T, checker adminChecker, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	identity := func(c *gin.Context) {
		if userID != nil {
			httpkit.SetUserID(c, *userID)
		}
		c.Next()
	}
	engine.GET("/admin/ping", identity, requireAdmin(checker, logger.New("development")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	return w
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	adminID := uuid.New()
	checker := &fakeChecker{admins: map[uuid.UUID]bool{adminID: true}}

	if w := guardedRequest(t, checker, &adminID); w.Code != http.StatusOK {
		t.Fatalf("admin request = %d, want 200", w.Code)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	userID := uuid.New()
	checker := &fakeChecker{admins: map[uuid.UUID]bool{}}

	if w := guardedRequest(t, checker, &userID); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin request = %d, want 403", w.Code)
	}
}

func TestRequireAdminRejectsMissingIdentity(t *testing.T) {
	checker := &fakeChecker{admins: map[uuid.UUID]bool{}}

	if w := guardedRequest(t, checker, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request = %d, want 401", w.Code)
	}
}

func TestRequireAdminFailsClosedOnCheckerError(t *testing.T) {
	userID := uuid.New()
	checker := &fakeChecker{err: errors.New("database down")}

	if w := guardedRequest(t, checker, &userID); w.Code != http.StatusInternalServerError {
		t.Fatalf("checker failure = %d, want 500", w.Code)
	}
}

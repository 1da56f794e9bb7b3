// Package admin provides the administrative bounded context module.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadgenie_backend/internal/admin/handler"
	"leadgenie_backend/internal/admin/repository"
	"leadgenie_backend/internal/admin/service"
	apphttp "leadgenie_backend/internal/http"
	leadsrepo "leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/platform/httpkit"
	"leadgenie_backend/platform/logger"
	"leadgenie_backend/platform/validator"
)

// Module is the admin bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
	log     *logger.Logger
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), leadsrepo.New(pool), log)
	return &Module{
		handler: handler.New(svc, val),
		svc:     svc,
		log:     log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "admin"
}

// RegisterRoutes mounts the admin routes behind the admin guard. The
// group lives under Protected, so the bearer-token middleware has
// already populated the user ID by the time the guard runs.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/admin", requireAdmin(m.svc, m.log)))
}

type adminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// requireAdmin rejects callers without the admin flag.
func requireAdmin(checker adminChecker, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := httpkit.GetUserID(c)
		if !ok {
			httpkit.Error(c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			httpkit.FromError(c, err)
			c.Abort()
			return
		}
		if !isAdmin {
			log.Warn("admin access denied", "user_id", userID)
			httpkit.Error(c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

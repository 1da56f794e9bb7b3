// Package auth provides the authentication bounded context module.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadgenie_backend/internal/auth/handler"
	"leadgenie_backend/internal/auth/repository"
	"leadgenie_backend/internal/auth/service"
	"leadgenie_backend/internal/auth/token"
	"leadgenie_backend/internal/config"
	apphttp "leadgenie_backend/internal/http"
	"leadgenie_backend/platform/httpkit"
	"leadgenie_backend/platform/logger"
	"leadgenie_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	cfg     *config.Config
}

func NewModule(pool *pgxpool.Pool, cfg *config.Config, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	return &Module{
		handler: handler.New(svc, val),
		cfg:     cfg,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts the public auth routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/auth"))
}

// Middleware returns the Bearer-token authentication middleware.
func (m *Module) Middleware() gin.HandlerFunc {
	secret := m.cfg.JWTAccessSecret
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			httpkit.Error(c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}

		userID, err := token.ParseAccessToken(secret, raw)
		if err != nil {
			httpkit.Error(c, http.StatusUnauthorized, "token invalid", nil)
			c.Abort()
			return
		}

		httpkit.SetUserID(c, userID)
		c.Next()
	}
}

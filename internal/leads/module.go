// Package leads provides the lead intake and qualification bounded
// context module.
package leads

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"leadgenie_backend/internal/config"
	"leadgenie_backend/internal/events"
	apphttp "leadgenie_backend/internal/http"
	"leadgenie_backend/internal/leads/handler"
	"leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/internal/leads/service"
	"leadgenie_backend/internal/qualify"
	"leadgenie_backend/internal/scheduler"
	"leadgenie_backend/platform/logger"
	"leadgenie_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the qualification engine, repository and HTTP handler.
// The enqueuer may be nil, in which case intake qualifies synchronously
// only through the explicit qualify endpoints.
func NewModule(pool *pgxpool.Pool, bus events.Bus, enqueuer scheduler.QualificationEnqueuer, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	repo := repository.New(pool)

	scoringCfg := qualify.DefaultConfig()
	if cfg.ScoringConfigPath != "" {
		loaded, err := qualify.LoadConfigFile(cfg.ScoringConfigPath)
		if err != nil {
			return nil, err
		}
		scoringCfg = loaded
	}

	client := qualify.NewGroqClient(qualify.GroqConfig{
		BaseURL:     cfg.GroqBaseURL,
		APIKey:      cfg.GroqAPIKey,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
		Timeout:     cfg.AITimeout,
	})

	qualifier := qualify.NewService(client, scoringCfg, service.NewProcessingLogStore(repo), log, qualify.ServiceOptions{
		Timeout:   cfg.AITimeout,
		CacheSize: cfg.ResultCacheSize,
	})

	svc := service.New(repo, qualifier, bus, enqueuer, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external wiring (worker, events).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
}

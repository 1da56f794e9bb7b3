package qualify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"leadgenie_backend/platform/logger"
)

// ProcessingLogStore persists audit records of qualification attempts.
type ProcessingLogStore interface {
	Append(ctx context.Context, entry ProcessingLogEntry) error
}

// ServiceOptions tunes the orchestrator's runtime behavior.
type ServiceOptions struct {
	// Timeout bounds one external qualifier call end to end.
	Timeout time.Duration
	// CacheSize bounds the qualification result cache; zero disables it.
	CacheSize int
}

// Service orchestrates the qualification pipeline: prompt, external call,
// sanitize, validate, score. Every failure along the external path routes
// to the rule-based fallback, so Qualify always returns a usable result
// and never an error.
type Service struct {
	client   QualifierClient
	scoring  *ScoringEngine
	fallback *FallbackEngine
	costs    *CostTracker
	logs     ProcessingLogStore
	cache    *resultCache
	log      *logger.Logger
	timeout  time.Duration
}

func NewService(client QualifierClient, cfg Config, logs ProcessingLogStore, log *logger.Logger, opts ServiceOptions) *Service {
	s := &Service{
		client:   client,
		scoring:  NewScoringEngine(cfg),
		fallback: NewFallbackEngine(cfg.FallbackThresholds),
		costs:    NewCostTracker(cfg.ModelPrices, cfg.DefaultPrice),
		logs:     logs,
		log:      log,
		timeout:  opts.Timeout,
	}
	if opts.CacheSize > 0 {
		s.cache = newResultCache(opts.CacheSize)
	}
	return s
}

// Qualify runs the full pipeline for one lead. It never returns an error:
// any failure of the external path is absorbed into a fallback result.
func (s *Service) Qualify(ctx context.Context, lead LeadInput) QualificationResult {
	if s.cache != nil && lead.ID != uuid.Nil {
		if result, ok := s.cache.get(lead.ID.String()); ok {
			return result
		}
	}

	start := time.Now()
	prompt := BuildPrompt(lead)

	result, raw, perr := s.qualifyExternal(ctx, prompt)
	if perr != nil {
		s.log.WithContext(ctx).Warn("external qualification failed",
			slog.String("lead_id", lead.ID.String()),
			slog.String("failure", perr.Kind.String()),
			slog.String("error", perr.Error()),
		)
		s.appendLog(ctx, ProcessingLogEntry{
			LeadID:         lead.ID,
			Model:          s.client.Model(),
			Prompt:         prompt,
			Response:       raw.Text,
			ProcessingTime: time.Since(start),
			Success:        false,
			ErrorMessage:   perr.Error(),
		})
		result = s.fallback.Qualify(lead)
	} else {
		cost := s.costs.Cost(raw.Model, raw.Usage)
		s.log.WithContext(ctx).Debug("qualifier call completed",
			slog.String("lead_id", lead.ID.String()),
			slog.String("model", raw.Model),
			slog.Int("total_tokens", raw.Usage.TotalTokens),
			slog.Float64("estimated_cost_usd", cost),
		)
		s.appendLog(ctx, ProcessingLogEntry{
			LeadID:         lead.ID,
			Model:          raw.Model,
			Prompt:         prompt,
			Response:       raw.Text,
			ProcessingTime: time.Since(start),
			Success:        true,
		})
	}

	s.log.QualificationEvent(lead.ID.String(), result.Score, result.Category,
		result.Fallback(), float64(time.Since(start).Milliseconds()))

	if s.cache != nil && lead.ID != uuid.Nil {
		s.cache.put(lead.ID.String(), result)
	}
	return result
}

// QualifyBatch qualifies leads concurrently and returns results in input
// order. Individual failures surface as fallback results, never as errors,
// so a batch always yields exactly len(leads) results.
func (s *Service) QualifyBatch(ctx context.Context, leads []LeadInput) []QualificationResult {
	results := make([]QualificationResult, len(leads))
	g, ctx := errgroup.WithContext(ctx)
	for i, lead := range leads {
		g.Go(func() error {
			results[i] = s.Qualify(ctx, lead)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *Service) qualifyExternal(ctx context.Context, prompt string) (QualificationResult, RawResponse, *PipelineError) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return QualificationResult{}, raw, unavailable(err)
	}

	sanitized := SanitizeResponse(raw.Text)
	payload, perr := ValidateResponse(sanitized)
	if perr != nil {
		return QualificationResult{}, raw, perr
	}

	score, category, breakdown := s.scoring.Score(payload)
	aiOriginal := int(*payload.Score)

	return QualificationResult{
		Score:            score,
		Category:         category,
		Confidence:       *payload.Confidence,
		Reasoning:        payload.Reasoning,
		BuyingSignals:    orEmpty(payload.BuyingSignals),
		RiskFactors:      orEmpty(payload.RiskFactors),
		NextActions:      orEmpty(payload.NextActions),
		AIOriginalScore:  &aiOriginal,
		ScoringBreakdown: breakdown,
	}, raw, nil
}

// appendLog writes the audit record best-effort: a logging failure must
// never take down a qualification that otherwise succeeded. The detached
// context keeps the write alive past a request or call timeout.
func (s *Service) appendLog(ctx context.Context, entry ProcessingLogEntry) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Append(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Error("processing log append failed",
			slog.String("lead_id", entry.LeadID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

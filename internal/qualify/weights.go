package qualify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeightedPhrase binds a fuzzy-matched phrase to its score contribution.
// Signal phrases carry positive weights, risk phrases negative ones.
type WeightedPhrase struct {
	Phrase string `yaml:"phrase"`
	Weight int    `yaml:"weight"`
}

// ModelPrice holds per-million-token prices for one model.
type ModelPrice struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// CategoryThresholds maps a final score to a category: >= Hot is Hot,
// >= Warm is Warm, everything below is Cold.
type CategoryThresholds struct {
	Hot  int `yaml:"hot"`
	Warm int `yaml:"warm"`
}

// Categorize buckets a score using these thresholds.
func (t CategoryThresholds) Categorize(score int) string {
	switch {
	case score >= t.Hot:
		return CategoryHot
	case score >= t.Warm:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// Config carries every calibration knob of the engine: weight tables,
// model prices, scoring constants and category thresholds. It is loaded
// once at startup and read-only afterwards, so concurrent qualification
// attempts can share it without synchronization.
//
// The scoring and fallback paths intentionally keep separate threshold
// tables (70/45 vs 80/60); both are configurable here so operators can
// reconcile them without a code change.
type Config struct {
	SignalWeights []WeightedPhrase      `yaml:"signal_weights"`
	RiskWeights   []WeightedPhrase      `yaml:"risk_weights"`
	ModelPrices   map[string]ModelPrice `yaml:"model_prices"`
	DefaultPrice  ModelPrice            `yaml:"default_price"`

	ConfidenceScale   float64 `yaml:"confidence_scale"`
	AIInfluenceFactor float64 `yaml:"ai_influence_factor"`
	SignalCap         int     `yaml:"signal_cap"`
	RiskFloor         int     `yaml:"risk_floor"`

	ScoringThresholds  CategoryThresholds `yaml:"scoring_thresholds"`
	FallbackThresholds CategoryThresholds `yaml:"fallback_thresholds"`
}

// DefaultConfig returns the calibrated production configuration.
func DefaultConfig() Config {
	return Config{
		SignalWeights: []WeightedPhrase{
			// High-impact signals
			{Phrase: "budget allocated", Weight: 25},
			{Phrase: "budget mentioned", Weight: 25},
			{Phrase: "timeline pressure", Weight: 20},
			{Phrase: "urgent need", Weight: 20},
			{Phrase: "asap", Weight: 20},
			{Phrase: "replace current system", Weight: 18},
			{Phrase: "losing money", Weight: 22},
			{Phrase: "pain points", Weight: 15},
			{Phrase: "current vendor", Weight: 15},

			// Medium-impact signals
			{Phrase: "timeline defined", Weight: 12},
			{Phrase: "short timeline", Weight: 12},
			{Phrase: "interest in product", Weight: 10},
			{Phrase: "interest in learning more", Weight: 8},
			{Phrase: "good fit", Weight: 10},
			{Phrase: "team size mentioned", Weight: 8},
			{Phrase: "company size", Weight: 8},
			{Phrase: "implementation", Weight: 10},
			{Phrase: "demo", Weight: 8},
			{Phrase: "proposal", Weight: 8},

			// Specific budget indicators
			{Phrase: "10k", Weight: 20},
			{Phrase: "$10k", Weight: 20},
			{Phrase: "10,000", Weight: 20},
			{Phrase: "50k", Weight: 25},
			{Phrase: "$50k", Weight: 25},
			{Phrase: "50,000", Weight: 25},
			{Phrase: "5k", Weight: 15},
			{Phrase: "$5k", Weight: 15},
			{Phrase: "5,000", Weight: 15},

			// Timeline indicators
			{Phrase: "2 months", Weight: 15},
			{Phrase: "q1", Weight: 12},
			{Phrase: "q2", Weight: 12},
			{Phrase: "q3", Weight: 12},
			{Phrase: "q4", Weight: 12},
			{Phrase: "next year", Weight: 10},
			{Phrase: "months", Weight: 8},
			{Phrase: "weeks", Weight: 12},
		},
		RiskWeights: []WeightedPhrase{
			// High-risk factors
			{Phrase: "no budget", Weight: -25},
			{Phrase: "no specific budget", Weight: -20},
			{Phrase: "unknown budget", Weight: -15},
			{Phrase: "no timeline", Weight: -20},
			{Phrase: "maybe later", Weight: -25},
			{Phrase: "just browsing", Weight: -30},
			{Phrase: "might be interested", Weight: -20},

			// Medium-risk factors
			{Phrase: "limited details", Weight: -10},
			{Phrase: "limited crm requirement details", Weight: -10},
			{Phrase: "complexity", Weight: -8},
			{Phrase: "small startup", Weight: -5},
			{Phrase: "5 employees", Weight: -8},
			{Phrase: "startup", Weight: -5},
			{Phrase: "not specified", Weight: -15},

			// Low-risk factors
			{Phrase: "vendor dissatisfaction", Weight: -3},
			{Phrase: "financial loss", Weight: -5},
		},
		ModelPrices: map[string]ModelPrice{
			"llama3-8b-8192":     {Input: 0.05, Output: 0.08},
			"llama3-70b-8192":    {Input: 0.59, Output: 0.79},
			"mixtral-8x7b-32768": {Input: 0.24, Output: 0.24},
		},
		DefaultPrice: ModelPrice{Input: 0.05, Output: 0.08},

		ConfidenceScale:   70,
		AIInfluenceFactor: 0.3,
		SignalCap:         40,
		RiskFloor:         -30,

		ScoringThresholds:  CategoryThresholds{Hot: 70, Warm: 45},
		FallbackThresholds: CategoryThresholds{Hot: 80, Warm: 60},
	}
}

// configOverrides mirrors Config with pointer fields so a key that is
// present in the file is distinguishable from one that is absent. This
// lets an operator set zero values, such as signal_cap: 0 to disable
// the cap entirely.
type configOverrides struct {
	SignalWeights []WeightedPhrase      `yaml:"signal_weights"`
	RiskWeights   []WeightedPhrase      `yaml:"risk_weights"`
	ModelPrices   map[string]ModelPrice `yaml:"model_prices"`
	DefaultPrice  *ModelPrice           `yaml:"default_price"`

	ConfidenceScale   *float64 `yaml:"confidence_scale"`
	AIInfluenceFactor *float64 `yaml:"ai_influence_factor"`
	SignalCap         *int     `yaml:"signal_cap"`
	RiskFloor         *int     `yaml:"risk_floor"`

	ScoringThresholds  *CategoryThresholds `yaml:"scoring_thresholds"`
	FallbackThresholds *CategoryThresholds `yaml:"fallback_thresholds"`
}

// LoadConfigFile reads a YAML calibration file over the defaults. Only the
// keys present in the file replace their default counterparts, so a file
// may override just the thresholds or just one weight table.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scoring config: %w", err)
	}

	var overrides configOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Config{}, fmt.Errorf("parse scoring config: %w", err)
	}

	if overrides.SignalWeights != nil {
		cfg.SignalWeights = overrides.SignalWeights
	}
	if overrides.RiskWeights != nil {
		cfg.RiskWeights = overrides.RiskWeights
	}
	if overrides.ModelPrices != nil {
		cfg.ModelPrices = overrides.ModelPrices
	}
	if overrides.DefaultPrice != nil {
		cfg.DefaultPrice = *overrides.DefaultPrice
	}
	if overrides.ConfidenceScale != nil {
		cfg.ConfidenceScale = *overrides.ConfidenceScale
	}
	if overrides.AIInfluenceFactor != nil {
		cfg.AIInfluenceFactor = *overrides.AIInfluenceFactor
	}
	if overrides.SignalCap != nil {
		cfg.SignalCap = *overrides.SignalCap
	}
	if overrides.RiskFloor != nil {
		cfg.RiskFloor = *overrides.RiskFloor
	}
	if overrides.ScoringThresholds != nil {
		cfg.ScoringThresholds = *overrides.ScoringThresholds
	}
	if overrides.FallbackThresholds != nil {
		cfg.FallbackThresholds = *overrides.FallbackThresholds
	}

	return cfg, nil
}

package scoring

import (
	"time"

	"NewsRank/internal/domain/models"
)

// Weights are the factor weights of the combined score. They must sum to
// 1.0; changing any weight changes scoring semantics system-wide.
type Weights struct {
	InterestMatch  float64
	BehaviorMatch  float64
	SentimentMatch float64
	TimeRelevance  float64
	QualityScore   float64
	TrendingBoost  float64
}

// DefaultWeights returns the v1 weight table.
func DefaultWeights() Weights {
	return Weights{
		InterestMatch:  0.35,
		BehaviorMatch:  0.25,
		SentimentMatch: 0.15,
		TimeRelevance:  0.10,
		QualityScore:   0.10,
		TrendingBoost:  0.05,
	}
}

// Engine computes personalization scores. It is stateless and safe for
// concurrent use; the only ambient input is the clock, injectable for tests.
type Engine struct {
	weights Weights
	now     func() time.Time
}

// Option configures Engine.
type Option func(*Engine)

// WithClock overrides the time source (deterministic tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithWeights overrides the factor weight table.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// NewEngine creates a scoring engine with default weights and wall clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		weights: DefaultWeights(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CalculateScore scores one article against one user. Behavior and trending
// are optional; nil/empty values degrade to the documented neutral factors.
// It never fails: malformed optional article fields yield neutral scores.
func (e *Engine) CalculateScore(
	a models.Article,
	interests models.UserInterests,
	prefs models.UserPreferences,
	behavior *models.UserBehavior,
	trending []string,
) models.PersonalizationScore {
	now := e.now()

	factors := models.ScoreFactors{
		InterestMatch:  interestMatchScore(a, interests),
		BehaviorMatch:  behaviorMatchScore(a, behavior),
		SentimentMatch: sentimentMatchScore(a, prefs),
		TimeRelevance:  timeRelevanceScore(a, prefs, now),
		QualityScore:   qualityScore(a),
		TrendingBoost:  trendingBoost(a, trending),
	}
	matched := extractMatchedInterests(a, interests)

	return models.PersonalizationScore{
		Score:            combineScore(factors, e.weights),
		Reason:           BuildReason(factors, matched),
		MatchedInterests: matched,
		Factors:          factors,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

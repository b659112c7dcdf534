package models

import (
	"encoding/json"
	"strings"
	"time"

	"NewsRank/pkg/util"
)

// Market type values as delivered by the retrieval layer.
const (
	MarketStocks = "stocks"
	MarketCrypto = "crypto"
	MarketForex  = "forex"
)

// Quality classification labels assigned upstream.
const (
	QualityHigh   = "HIGH_QUALITY"
	QualityMedium = "MEDIUM_QUALITY"
	QualityLow    = "LOW_QUALITY"
	QualitySpam   = "SPAM_OR_JUNK"
)

// QualityClassification carries the upstream quality label for an article.
type QualityClassification struct {
	Label string `json:"label"`
}

// Article is a single news item as supplied by the retrieval layer.
// All fields except ID are optional; the scoring engine degrades to
// neutral values when any of them are absent.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tickers     []string `json:"tickers,omitempty"`
	MarketType  string   `json:"market_type,omitempty"`
	Source      string   `json:"source,omitempty"`

	Sentiment *Sentiment `json:"sentiment,omitempty"`

	// Both timestamp spellings occur in the wild; PublishedTime() folds them.
	PublishedAt PublishTime `json:"publishedAt,omitempty"`
	PublishedTs PublishTime `json:"published_at,omitempty"`

	Quality *QualityClassification `json:"quality_classification,omitempty"`

	// Raw payload kept only as a presence flag.
	LLMAnalysis json.RawMessage `json:"llm_analysis,omitempty"`
}

// PublishedTime returns the article publish time, preferring publishedAt.
// The zero time means no usable timestamp was supplied.
func (a *Article) PublishedTime() time.Time {
	if !a.PublishedAt.IsZero() {
		return a.PublishedAt.Time
	}
	return a.PublishedTs.Time
}

// HasLLMAnalysis reports whether the upstream LLM analysis block is present.
func (a *Article) HasLLMAnalysis() bool {
	return len(a.LLMAnalysis) > 0 && string(a.LLMAnalysis) != "null"
}

// PublishTime wraps time.Time and unmarshals from either an ISO string,
// a bare unix-seconds number, or the {"_seconds": n} wrapper some feeds emit.
type PublishTime struct {
	time.Time
}

type secondsWrapper struct {
	Seconds int64 `json:"_seconds"`
}

func (p *PublishTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil // unparseable timestamps degrade to "unknown"
		}
		if t, ok := util.ParseTime(raw); ok {
			p.Time = t
		}
		return nil
	}
	if s[0] == '{' {
		var w secondsWrapper
		if err := json.Unmarshal(b, &w); err == nil && w.Seconds > 0 {
			p.Time = time.Unix(w.Seconds, 0)
		}
		return nil
	}
	var sec int64
	if err := json.Unmarshal(b, &sec); err == nil && sec > 0 {
		p.Time = time.Unix(sec, 0)
	}
	return nil
}

func (p PublishTime) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(p.Time.UTC().Format(time.RFC3339))
}

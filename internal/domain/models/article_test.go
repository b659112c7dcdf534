package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSentimentUnmarshalBareLabel(t *testing.T) {
	var a Article
	if err := json.Unmarshal([]byte(`{"sentiment":"bearish"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Sentiment == nil || a.Sentiment.Kind != SentimentLabelOnly {
		t.Fatalf("expected label-only sentiment, got %+v", a.Sentiment)
	}
	if a.Sentiment.Label() != "bearish" {
		t.Fatalf("unexpected label %q", a.Sentiment.Label())
	}
}

func TestSentimentUnmarshalScoredObject(t *testing.T) {
	var a Article
	if err := json.Unmarshal([]byte(`{"sentiment":{"score":-0.6,"label":"Bearish"}}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Sentiment == nil || a.Sentiment.Kind != SentimentScored {
		t.Fatalf("expected scored sentiment, got %+v", a.Sentiment)
	}
	if a.Sentiment.Score != -0.6 || a.Sentiment.Label() != "bearish" {
		t.Fatalf("unexpected sentiment %+v", a.Sentiment)
	}
}

func TestSentimentLabelDerivedFromScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.8, "bullish"},
		{-0.8, "bearish"},
		{0.1, "neutral"},
	}
	for _, c := range cases {
		s := Sentiment{Kind: SentimentScored, Score: c.score}
		if got := s.Label(); got != c.want {
			t.Fatalf("score %v: expected %q, got %q", c.score, c.want, got)
		}
	}
}

func TestPublishTimeISOString(t *testing.T) {
	var a Article
	if err := json.Unmarshal([]byte(`{"publishedAt":"2026-03-10T10:00:00Z"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	if !a.PublishedTime().Equal(want) {
		t.Fatalf("unexpected time %v", a.PublishedTime())
	}
}

func TestPublishTimeSecondsWrapper(t *testing.T) {
	var a Article
	if err := json.Unmarshal([]byte(`{"published_at":{"_seconds":1767000000}}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.PublishedTime().Unix() != 1767000000 {
		t.Fatalf("unexpected unix %v", a.PublishedTime().Unix())
	}
}

func TestPublishTimeUnparseableIsZero(t *testing.T) {
	var a Article
	if err := json.Unmarshal([]byte(`{"publishedAt":"last tuesday"}`), &a); err != nil {
		t.Fatalf("garbage timestamps must not fail: %v", err)
	}
	if !a.PublishedTime().IsZero() {
		t.Fatalf("expected zero time, got %v", a.PublishedTime())
	}
}

func TestPublishTimePrefersPublishedAt(t *testing.T) {
	var a Article
	payload := `{"publishedAt":"2026-03-10T10:00:00Z","published_at":{"_seconds":1000000000}}`
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.PublishedTime().Year() != 2026 {
		t.Fatalf("expected publishedAt to win, got %v", a.PublishedTime())
	}
}

func TestHasLLMAnalysis(t *testing.T) {
	var a Article
	if a.HasLLMAnalysis() {
		t.Fatalf("absent analysis must be false")
	}
	if err := json.Unmarshal([]byte(`{"llm_analysis":{"summary":"x"}}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !a.HasLLMAnalysis() {
		t.Fatalf("present analysis must be true")
	}
	var b Article
	if err := json.Unmarshal([]byte(`{"llm_analysis":null}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.HasLLMAnalysis() {
		t.Fatalf("explicit null must be false")
	}
}

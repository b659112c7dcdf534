package models

import (
	"encoding/json"
	"strings"
)

// SentimentKind discriminates the two wire representations of sentiment.
type SentimentKind int

const (
	// SentimentLabelOnly is a bare label string, e.g. "bullish".
	SentimentLabelOnly SentimentKind = iota
	// SentimentScored is the {score, label} object form.
	SentimentScored
)

// Sentiment is a tagged union over the two upstream representations:
// a bare label string or a {score: [-1,1], label} object. The Kind field
// is the discriminator; callers never inspect raw JSON.
type Sentiment struct {
	Kind  SentimentKind
	Text  string
	Score float64
}

type scoredSentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

func (s *Sentiment) UnmarshalJSON(b []byte) error {
	t := strings.TrimSpace(string(b))
	if t == "" || t == "null" {
		return nil
	}
	if t[0] == '"' {
		var label string
		if err := json.Unmarshal(b, &label); err != nil {
			return err
		}
		s.Kind = SentimentLabelOnly
		s.Text = label
		return nil
	}
	var sc scoredSentiment
	if err := json.Unmarshal(b, &sc); err != nil {
		return err
	}
	s.Kind = SentimentScored
	s.Text = sc.Label
	s.Score = sc.Score
	return nil
}

func (s Sentiment) MarshalJSON() ([]byte, error) {
	if s.Kind == SentimentLabelOnly {
		return json.Marshal(s.Text)
	}
	return json.Marshal(scoredSentiment{Score: s.Score, Label: s.Text})
}

// Label returns the normalized (lowercased, trimmed) sentiment label.
// For the scored variant without a label, one is derived from the score.
func (s *Sentiment) Label() string {
	label := strings.ToLower(strings.TrimSpace(s.Text))
	if label != "" {
		return label
	}
	if s.Kind != SentimentScored {
		return ""
	}
	switch {
	case s.Score > 0.3:
		return "bullish"
	case s.Score < -0.3:
		return "bearish"
	default:
		return "neutral"
	}
}

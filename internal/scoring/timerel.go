package scoring

import (
	"time"

	"NewsRank/internal/domain/models"
	"NewsRank/pkg/util"
)

type decayStep struct {
	MaxAgeHours float64
	Score       float64
}

type decayCurve struct {
	Steps []decayStep
	Floor float64
}

// decayCurves are the per-horizon stepped freshness curves. The breakpoints
// are versioned design constants; the step list must stay sorted ascending.
var decayCurves = map[string]decayCurve{
	models.HorizonDayTrading: {
		Steps: []decayStep{{1, 100}, {4, 80}, {12, 60}, {24, 40}},
		Floor: 20,
	},
	models.HorizonShortTerm: {
		Steps: []decayStep{{4, 100}, {12, 90}, {48, 70}, {168, 50}},
		Floor: 30,
	},
	models.HorizonMediumTerm: {
		Steps: []decayStep{{24, 100}, {168, 90}, {720, 70}},
		Floor: 50,
	},
	models.HorizonLongTerm: {
		Steps: []decayStep{{168, 100}, {720, 90}, {2160, 80}},
		Floor: 70,
	},
}

const timeNeutral = 50.0

// timeRelevanceScore applies the horizon's decay curve to the article age.
// Missing or unparseable timestamps, and unknown horizons, are neutral.
func timeRelevanceScore(a models.Article, prefs models.UserPreferences, now time.Time) float64 {
	published := a.PublishedTime()
	if published.IsZero() {
		return timeNeutral
	}
	curve, ok := decayCurves[prefs.TimeHorizon]
	if !ok {
		return timeNeutral
	}

	age := util.AgeHours(now, published)
	for _, step := range curve.Steps {
		if age <= step.MaxAgeHours {
			return step.Score
		}
	}
	return curve.Floor
}

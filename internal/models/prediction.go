package models

import "time"

// DataQuality records how much real data backed a team's inputs.
type DataQuality string

const (
	QualityComplete DataQuality = "complete"
	QualityPartial  DataQuality = "partial"
	QualityFallback DataQuality = "fallback"
)

// Recommendation against a supplied betting line.
type Recommendation string

const (
	RecommendOver  Recommendation = "OVER"
	RecommendUnder Recommendation = "UNDER"
	RecommendNoBet Recommendation = "NO BET"
)

// AdjustmentRecord is one pipeline stage's contribution: a signed point delta
// to the home projection, away projection, or game total, plus the reason.
type AdjustmentRecord struct {
	Stage       string  `json:"stage"`
	HomeDelta   float64 `json:"home_delta"`
	AwayDelta   float64 `json:"away_delta"`
	TotalDelta  float64 `json:"total_delta"`
	Explanation string  `json:"explanation"`
}

// PredictionBreakdown is the auditable decomposition of a predicted total.
type PredictionBreakdown struct {
	HomeProjected float64            `json:"home_projected"`
	AwayProjected float64            `json:"away_projected"`
	StageDeltas   []AdjustmentRecord `json:"stage_deltas"`
}

// TeamQuality holds the per-team data quality flags.
type TeamQuality struct {
	Home DataQuality `json:"home"`
	Away DataQuality `json:"away"`
}

// PredictionResult is the stable output contract for downstream consumers.
type PredictionResult struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	Season     string `json:"season"`

	PredictedTotal float64             `json:"predicted_total"`
	Breakdown      PredictionBreakdown `json:"breakdown"`
	DataQuality    TeamQuality         `json:"data_quality"`

	Line           *float64       `json:"line,omitempty"`
	LineEdge       *float64       `json:"line_edge,omitempty"`
	Recommendation Recommendation `json:"recommendation,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

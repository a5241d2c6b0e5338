package models

import "time"

// GameLine is one completed game in a team's recent log.
// Logs are ordered most-recent-first and are a fixed snapshot per request.
type GameLine struct {
	GameID        string    `json:"game_id"`
	Date          time.Time `json:"date"`
	Home          bool      `json:"home"`
	PointsFor     float64   `json:"points_for"`
	PointsAgainst float64   `json:"points_against"`

	// Possession inputs for the single game
	FGA     float64 `json:"fga"`
	FTA     float64 `json:"fta"`
	OREB    float64 `json:"oreb"`
	TOV     float64 `json:"tov"`
	ThreePA float64 `json:"three_pa"`
	ThreePM float64 `json:"three_pm"`

	// OppDefenseRank is the opponent's league defense rank (1 = best) at
	// snapshot time; 0 when unknown.
	OppDefenseRank int `json:"opp_defense_rank"`

	DaysRest int `json:"days_rest"`
}

// BackToBackProfile aggregates a team's historical games on one day of rest,
// expressed as deltas against its season averages.
type BackToBackProfile struct {
	TeamID      string  `json:"team_id"`
	Season      string  `json:"season"`
	Games       int     `json:"games"`
	PPGDelta    float64 `json:"ppg_delta"`     // b2b scoring minus season scoring
	OppPPGDelta float64 `json:"opp_ppg_delta"` // b2b points allowed minus season allowed
}

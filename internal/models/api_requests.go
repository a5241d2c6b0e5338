package models

// ResolveTotalRequest is the POST body for batch prediction callers.
// Season uses the cross-year form, e.g. "2025-26".
type ResolveTotalRequest struct {
	HomeTeamID string   `json:"home_team_id" validate:"required,alphanum,min=2,max=12"`
	AwayTeamID string   `json:"away_team_id" validate:"required,alphanum,min=2,max=12,nefield=HomeTeamID"`
	Season     string   `json:"season" validate:"required,len=7"`
	Line       *float64 `json:"line,omitempty" validate:"omitempty,gt=100,lt=350"`
}

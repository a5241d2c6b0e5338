package models

// SplitStats holds scoring averages for one venue split (overall, home, away).
type SplitStats struct {
	GamesPlayed   int     `json:"games_played"`
	PointsPerGame float64 `json:"points_per_game"`
	OppPerGame    float64 `json:"opp_points_per_game"`
}

// ShootingStats holds per-game shooting volume and makes.
type ShootingStats struct {
	FGA    float64 `json:"fga"`
	FGM    float64 `json:"fgm"`
	ThreePA float64 `json:"three_pa"`
	ThreePM float64 `json:"three_pm"`
	FTA    float64 `json:"fta"`
	FTM    float64 `json:"ftm"`
}

// TeamRanks holds league ranks (1 = best) for the stats the resolver consumes.
type TeamRanks struct {
	Offense         int `json:"offense"`
	Defense         int `json:"defense"`
	Pace            int `json:"pace"`
	FGAVolume       int `json:"fga_volume"`
	ThreePAVolume   int `json:"three_pa_volume"`
	ForcedTurnovers int `json:"forced_turnovers"`
}

// TeamStatProfile is an immutable season snapshot for one team.
// The resolver never mutates it; a fresh profile is built per request.
type TeamStatProfile struct {
	TeamID string `json:"team_id"`
	Season string `json:"season"`

	GamesPlayed int        `json:"games_played"`
	Overall     SplitStats `json:"overall"`
	Home        SplitStats `json:"home"`
	Away        SplitStats `json:"away"`

	Shooting          ShootingStats `json:"shooting"`
	OffensiveRebounds float64       `json:"offensive_rebounds"`
	DefensiveRebounds float64       `json:"defensive_rebounds"`
	Assists           float64       `json:"assists"`
	Turnovers         float64       `json:"turnovers"`

	Pace            float64 `json:"pace"`
	OffensiveRating float64 `json:"offensive_rating"`
	DefensiveRating float64 `json:"defensive_rating"`

	Ranks TeamRanks `json:"ranks"`
}

// HasPossessionInputs reports whether the box-score counting stats needed by
// the possession formula are present. Zero attempts means the sync never
// populated them (no real team attempts zero field goals over a season).
func (p *TeamStatProfile) HasPossessionInputs() bool {
	return p != nil && p.Shooting.FGA > 0 && p.Shooting.FTA >= 0 && p.Turnovers > 0
}

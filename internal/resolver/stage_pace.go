package resolver

import "fmt"

// paceStage scales both baselines by how the game's combined true possessions
// compare to a league-average game. Influence is muted (0.92 + 0.08*m): pace
// says how many trips happen, not how well they convert, and the later
// efficiency stages must see pace already priced in so they do not re-count
// it. Runs first for exactly that reason.
type paceStage struct{}

func (paceStage) Name() string { return "pace_possessions" }

func (paceStage) Apply(st *State) (StageDelta, string) {
	t := st.Tuning
	leagueCombined := 2 * t.LeagueAveragePace
	if st.League != nil && st.League.Pace.Mean > 0 {
		leagueCombined = 2 * st.League.Pace.Mean
	}
	if leagueCombined <= 0 {
		return StageDelta{}, "pace skipped: no league pace reference"
	}

	combined := st.Home.Possessions + st.Away.Possessions
	mult := combined / leagueCombined
	factor := t.PaceFloor + t.PaceInfluence*mult

	d := StageDelta{
		Home: st.Home.Projected * (factor - 1),
		Away: st.Away.Projected * (factor - 1),
	}
	expl := fmt.Sprintf("combined %.1f possessions vs league %.1f, factor %.3f", combined, leagueCombined, factor)
	if st.Home.PossessionFallback || st.Away.PossessionFallback {
		expl += " (league-average pace substituted for missing inputs)"
	}
	return d, expl
}

// turnoverStage immediately follows pace. Turnover volume is already inside
// the possession formula, so this stage prices only the efficiency loss of
// coughing up extra possessions, scaled up when the opponent is a top
// turnover-forcing team. A total-level bump applies when both teams run hot
// turnover rates, which adds transition trips the season pace understates.
type turnoverStage struct{}

func (turnoverStage) Name() string { return "turnovers" }

func (turnoverStage) Apply(st *State) (StageDelta, string) {
	if st.League == nil || st.League.Turnovers.Mean <= 0 {
		return StageDelta{}, "turnovers skipped: no league turnover reference"
	}
	if st.Home.Input.Stats == nil || st.Away.Input.Stats == nil {
		return StageDelta{}, "turnovers skipped: missing team stats"
	}
	t := st.Tuning

	d := StageDelta{
		Home: turnoverDelta(st.Home.Input.Stats.Turnovers, st.Away.Input.Stats.Ranks.ForcedTurnovers, st, t),
		Away: turnoverDelta(st.Away.Input.Stats.Turnovers, st.Home.Input.Stats.Ranks.ForcedTurnovers, st, t),
	}

	hot := st.League.Turnovers.Mean + st.League.Turnovers.StdDev
	if st.League.Turnovers.StdDev > 0 &&
		st.Home.Input.Stats.Turnovers >= hot && st.Away.Input.Stats.Turnovers >= hot {
		d.Total = t.TurnoverPaceTotalBonus
	}

	expl := fmt.Sprintf("home %.1f / away %.1f TOV vs league %.1f",
		st.Home.Input.Stats.Turnovers, st.Away.Input.Stats.Turnovers, st.League.Turnovers.Mean)
	if d.Total != 0 {
		expl += fmt.Sprintf("; both run hot, +%.1f total for transition pace", d.Total)
	}
	return d, expl
}

func turnoverDelta(teamTOV float64, oppForcingRank int, st *State, t Tuning) float64 {
	extra := teamTOV - st.League.Turnovers.Mean
	loss := -extra * t.PointsPerExtraTurnover
	if oppForcingRank > 0 && oppForcingRank <= t.TurnoverForcingTopRank {
		loss *= t.TurnoverForcingBoost
	}
	return clamp(loss, -t.TurnoverStageClamp, t.TurnoverStageClamp)
}

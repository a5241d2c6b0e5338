package resolver

import (
	"fmt"
	"strings"

	"github.com/courtside/totals-api/internal/models"
)

// defenseStage adjusts each offense for the defense it faces, in two parts:
// a dynamic part scaled by the offense's current form against the opponent's
// defensive rating, and a supplementary tier part read purely off the
// opponent's defensive rank. The tier part is hard-bounded to [-6, +5] no
// matter what rank arrives.
type defenseStage struct{}

func (defenseStage) Name() string { return "defense" }

func (defenseStage) Apply(st *State) (StageDelta, string) {
	if st.Home.Input.Stats == nil || st.Away.Input.Stats == nil {
		return StageDelta{}, "defense skipped: missing team stats"
	}
	t := st.Tuning

	homeDyn := dynamicDefenseDelta(&st.Home, &st.Away, st, t)
	awayDyn := dynamicDefenseDelta(&st.Away, &st.Home, st, t)
	homeTier := DefenseTierAdjustment(st.Away.Input.Stats.Ranks.Defense, t)
	awayTier := DefenseTierAdjustment(st.Home.Input.Stats.Ranks.Defense, t)

	d := StageDelta{Home: homeDyn + homeTier, Away: awayDyn + awayTier}
	expl := fmt.Sprintf("home vs defense rank %d (dyn %+.1f, tier %+.1f); away vs rank %d (dyn %+.1f, tier %+.1f)",
		st.Away.Input.Stats.Ranks.Defense, homeDyn, homeTier,
		st.Home.Input.Stats.Ranks.Defense, awayDyn, awayTier)
	return d, expl
}

// dynamicDefenseDelta compares the opponent's defensive rating to league
// average and lets the offense's form modulate how much of that gap it can
// exploit. A team scoring above its season norm punishes a soft defense
// harder and suffers less against an elite one.
func dynamicDefenseDelta(off, def *Side, st *State, t Tuning) float64 {
	if st.League == nil || st.League.DefensiveRating.Mean <= 0 || def.Input.Stats.DefensiveRating <= 0 {
		return 0
	}
	gap := def.Input.Stats.DefensiveRating - st.League.DefensiveRating.Mean

	form := 1.0
	if recent, ok := recentAverage(off.Input.Recent, t.RecentWindow); ok && off.Input.Stats.Overall.PointsPerGame > 0 {
		form = recent / off.Input.Stats.Overall.PointsPerGame
		form = clamp(form, 0.8, 1.2)
	}

	return clamp(gap*t.DefenseDynamicScale*form, -t.DefenseDynamicClamp, t.DefenseDynamicClamp)
}

// DefenseTierAdjustment maps an opponent defensive rank to a fixed point
// adjustment: elite ranks 1-10 interpolate -6.0..-4.0, average ranks 11-19
// are 0, bad ranks 20-30 interpolate +3.0..+5.0. Exported because the clamp
// bound is part of the documented contract.
func DefenseTierAdjustment(rank int, t Tuning) float64 {
	var adj float64
	switch {
	case rank <= 0:
		adj = 0 // unknown rank, no tier signal
	case rank <= t.DefenseEliteMaxRank:
		pos := float64(rank-1) / float64(t.DefenseEliteMaxRank-1)
		adj = lerp(t.DefenseEliteLow, t.DefenseEliteHigh, pos)
	case rank < t.DefenseBadMinRank:
		adj = 0
	default:
		r := rank
		if r > 30 {
			r = 30
		}
		pos := float64(r-t.DefenseBadMinRank) / float64(30-t.DefenseBadMinRank)
		adj = lerp(t.DefenseBadLow, t.DefenseBadHigh, pos)
	}
	return clamp(adj, t.DefenseTierMin, t.DefenseTierMax)
}

// matchupStage applies fixed scenario rules from the pace and
// matchup-sensitivity tiers. Two fast teams feed each other possessions past
// what either season pace shows; two slow teams grind the game below it. A
// matchup-sensitive offense drawing a top-5 defense gives a little back,
// scaled by its matchup weight.
type matchupStage struct{}

func (matchupStage) Name() string { return "matchup_rules" }

func (matchupStage) Apply(st *State) (StageDelta, string) {
	t := st.Tuning
	var d StageDelta
	var notes []string

	homePace, awayPace := st.Home.paceTier(), st.Away.paceTier()
	switch {
	case homePace == models.PaceFast && awayPace == models.PaceFast:
		d.Home += t.MatchupFastPairBonus
		d.Away += t.MatchupFastPairBonus
		notes = append(notes, "fast-fast tempo bonus")
	case homePace == models.PaceSlow && awayPace == models.PaceSlow:
		d.Home += t.MatchupSlowPairPenalty
		d.Away += t.MatchupSlowPairPenalty
		notes = append(notes, "slow-slow grind penalty")
	}

	d.Home += sensitivityPenalty(&st.Home, &st.Away, t, &notes, "home")
	d.Away += sensitivityPenalty(&st.Away, &st.Home, t, &notes, "away")

	d.Home = clamp(d.Home, -t.MatchupStageClamp, t.MatchupStageClamp)
	d.Away = clamp(d.Away, -t.MatchupStageClamp, t.MatchupStageClamp)

	if len(notes) == 0 {
		return StageDelta{}, "no matchup scenario applies"
	}
	return d, strings.Join(notes, "; ")
}

func sensitivityPenalty(off, def *Side, t Tuning, notes *[]string, side string) float64 {
	if off.matchupTier() != models.MatchupHigh || def.Input.Stats == nil {
		return 0
	}
	rank := def.Input.Stats.Ranks.Defense
	if rank <= 0 || rank > t.MatchupEliteDefRank {
		return 0
	}
	*notes = append(*notes, side+" matchup-sensitive vs elite defense")
	return t.MatchupSensitivePenalty * off.matchupWeight(t)
}

package resolver

import (
	"fmt"
	"strings"

	"github.com/courtside/totals-api/internal/models"
)

// volumeStage rewards and penalizes extreme shot volume. The shot-volume
// score is FGA + 0.5*3PA + OREB. Thresholds only trigger past the extremes
// because raw attempt volume largely lives inside the possession formula
// already; this stage catches identity, not pace. Also grants the small fixed
// bonus for teams ranked top-5 in both field-goal and three-point attempt
// volume.
type volumeStage struct{}

func (volumeStage) Name() string { return "volume_bonuses" }

func (volumeStage) Apply(st *State) (StageDelta, string) {
	if st.Home.Input.Stats == nil && st.Away.Input.Stats == nil {
		return StageDelta{}, "volume skipped: missing team stats"
	}
	var d StageDelta
	var notes []string

	d.Home = volumeDelta(&st.Home, st.Tuning, &notes, "home")
	d.Away = volumeDelta(&st.Away, st.Tuning, &notes, "away")

	if len(notes) == 0 {
		return StageDelta{}, "no volume threshold crossed"
	}
	return d, strings.Join(notes, "; ")
}

func volumeDelta(s *Side, t Tuning, notes *[]string, side string) float64 {
	p := s.Input.Stats
	if p == nil {
		return 0
	}
	var delta float64

	score := p.Shooting.FGA + 0.5*p.Shooting.ThreePA + p.OffensiveRebounds
	switch {
	case score > t.VolumeHighThreshold:
		delta += t.VolumeHighBonus
		*notes = append(*notes, fmt.Sprintf("%s shot volume %.1f > %.0f: %+.0f", side, score, t.VolumeHighThreshold, t.VolumeHighBonus))
	case score > t.VolumeUpperThreshold:
		delta += t.VolumeUpperBonus
		*notes = append(*notes, fmt.Sprintf("%s shot volume %.1f > %.0f: %+.0f", side, score, t.VolumeUpperThreshold, t.VolumeUpperBonus))
	case score < t.VolumeLowThreshold:
		delta += t.VolumeLowPenalty
		*notes = append(*notes, fmt.Sprintf("%s shot volume %.1f < %.0f: %+.0f", side, score, t.VolumeLowThreshold, t.VolumeLowPenalty))
	case score < t.VolumeLowerThreshold:
		delta += t.VolumeLowerPenalty
		*notes = append(*notes, fmt.Sprintf("%s shot volume %.1f < %.0f: %+.0f", side, score, t.VolumeLowerThreshold, t.VolumeLowerPenalty))
	}

	switch {
	case p.Shooting.FTA > t.FTAHighThreshold:
		delta += t.FTAHighBonus
		*notes = append(*notes, fmt.Sprintf("%s FTA %.1f: %+.0f", side, p.Shooting.FTA, t.FTAHighBonus))
	case p.Shooting.FTA > t.FTAMidThreshold:
		delta += t.FTAMidBonus
		*notes = append(*notes, fmt.Sprintf("%s FTA %.1f: %+.0f", side, p.Shooting.FTA, t.FTAMidBonus))
	}

	switch {
	case p.OffensiveRebounds >= t.OREBHighThreshold:
		delta += t.OREBHighBonus
		*notes = append(*notes, fmt.Sprintf("%s OREB %.1f: %+.0f", side, p.OffensiveRebounds, t.OREBHighBonus))
	case p.OffensiveRebounds >= t.OREBMidThreshold:
		delta += t.OREBMidBonus
		*notes = append(*notes, fmt.Sprintf("%s OREB %.1f: %+.0f", side, p.OffensiveRebounds, t.OREBMidBonus))
	}

	if p.Ranks.FGAVolume > 0 && p.Ranks.FGAVolume <= t.VolumeIdentityRank &&
		p.Ranks.ThreePAVolume > 0 && p.Ranks.ThreePAVolume <= t.VolumeIdentityRank {
		delta += t.VolumeIdentityBonus
		*notes = append(*notes, fmt.Sprintf("%s top-%d in FGA and 3PA volume: %+.0f", side, t.VolumeIdentityRank, t.VolumeIdentityBonus))
	}

	return delta
}

// shootoutStage detects games where both teams bring elevated three-point
// volume and efficiency at the same time. One hot shooting team regresses;
// two of them trading threes compounds, which the per-team stages cannot see.
// Bonus is dynamic in the weaker team's signals and applied to the total.
type shootoutStage struct{}

func (shootoutStage) Name() string { return "three_point_shootout" }

func (shootoutStage) Apply(st *State) (StageDelta, string) {
	if st.League == nil || st.League.ThreePA.StdDev <= 0 {
		return StageDelta{}, "shootout skipped: no league three-point reference"
	}
	if st.Home.Input.Stats == nil || st.Away.Input.Stats == nil {
		return StageDelta{}, "shootout skipped: missing team stats"
	}
	t := st.Tuning

	homeVolZ, homeEff := threeSignals(st.Home.Input.Stats, st.League)
	awayVolZ, awayEff := threeSignals(st.Away.Input.Stats, st.League)

	if homeVolZ < t.ShootoutVolumeZ || awayVolZ < t.ShootoutVolumeZ || homeEff <= 0 || awayEff <= 0 {
		return StageDelta{}, "no simultaneous three-point signal"
	}

	// The weaker side bounds the effect: a shootout needs both participants.
	volZ := min(homeVolZ, awayVolZ)
	eff := min(homeEff, awayEff)
	bonus := clamp(t.ShootoutBaseBonus+t.ShootoutVolumeGain*volZ+t.ShootoutEffGain*eff, 0, t.ShootoutMaxBonus)

	return StageDelta{Total: bonus},
		fmt.Sprintf("both teams elevated from three (vol z %.2f, eff +%.3f): +%.1f total", volZ, eff, bonus)
}

// threeSignals returns the team's three-point volume z-score and its
// efficiency edge over the league three-point percentage.
func threeSignals(p *models.TeamStatProfile, league *models.LeagueReference) (volZ, effEdge float64) {
	volZ = (p.Shooting.ThreePA - league.ThreePA.Mean) / league.ThreePA.StdDev
	if p.Shooting.ThreePA > 0 {
		effEdge = p.Shooting.ThreePM/p.Shooting.ThreePA - league.ThreePointPct.Mean
	}
	return volZ, effEdge
}

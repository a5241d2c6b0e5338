package resolver

import "fmt"

type venueClass int

const (
	venueStrong venueClass = iota
	venueNormal
	venueWeak
)

func (v venueClass) String() string {
	switch v {
	case venueStrong:
		return "strong"
	case venueWeak:
		return "weak"
	default:
		return "normal"
	}
}

// homeRoadStage applies the situational home/road edge to the game total.
// Each side is classified Strong/Normal/Weak from how its venue split departs
// from its season scoring (±4 PPG), then a 3x3 matrix is looked up. The
// matrix is deliberately conservative: it is zero unless one side is Strong
// and the other Weak, or exactly one side is non-Normal, so most games get 0.
type homeRoadStage struct{}

func (homeRoadStage) Name() string { return "home_road_edge" }

func (homeRoadStage) Apply(st *State) (StageDelta, string) {
	if st.Home.Input.Stats == nil || st.Away.Input.Stats == nil {
		return StageDelta{}, "home/road edge skipped: missing team stats"
	}
	t := st.Tuning

	hc := classifyVenue(st.Home.Input.Stats.Home.PointsPerGame, st.Home.Input.Stats.Overall.PointsPerGame, t)
	ac := classifyVenue(st.Away.Input.Stats.Away.PointsPerGame, st.Away.Input.Stats.Overall.PointsPerGame, t)

	delta := t.HomeRoadMatrix[hc][ac]
	expl := fmt.Sprintf("home %s at home, away %s on road: %+.1f to total", hc, ac, delta)
	if delta == 0 {
		return StageDelta{}, expl
	}
	return StageDelta{Total: delta}, expl
}

func classifyVenue(venuePPG, seasonPPG float64, t Tuning) venueClass {
	switch {
	case venuePPG == 0 || seasonPPG == 0:
		return venueNormal // split never populated
	case venuePPG-seasonPPG >= t.HomeAwayEdge:
		return venueStrong
	case venuePPG-seasonPPG <= -t.HomeAwayEdge:
		return venueWeak
	default:
		return venueNormal
	}
}

// fatigueStage prices the second night of a back-to-back from the team's own
// historical one-day-rest profile. Needs at least three historical B2B games
// to trust the sample. The offensive delta (usually negative) hits the tired
// team at half weight; the defensive delta credits the opponent, also at half
// weight, and only when the tired team historically allows more -- a team is
// never rewarded for its opponent being tired on defense.
type fatigueStage struct{}

func (fatigueStage) Name() string { return "back_to_back" }

func (fatigueStage) Apply(st *State) (StageDelta, string) {
	var d StageDelta
	homeNote := fatigueSide(&st.Home, st.Tuning, &d.Home, &d.Away)
	awayNote := fatigueSide(&st.Away, st.Tuning, &d.Away, &d.Home)
	return d, "home: " + homeNote + "; away: " + awayNote
}

// fatigueSide applies one team's B2B profile: own points go to ownDelta, the
// defensive giveback goes to oppDelta.
func fatigueSide(s *Side, t Tuning, ownDelta, oppDelta *float64) string {
	if !s.Input.OnShortRest {
		return "not on back-to-back"
	}
	b2b := s.Input.B2B
	if b2b == nil {
		return "no back-to-back history"
	}
	if b2b.Games < t.B2BMinGames {
		return fmt.Sprintf("insufficient sample (%d of %d back-to-back games)", b2b.Games, t.B2BMinGames)
	}

	off := clamp(b2b.PPGDelta*t.B2BOffenseScale, -t.B2BClamp, t.B2BClamp)
	def := clamp(b2b.OppPPGDelta*t.B2BDefenseScale, 0, t.B2BClamp)
	*ownDelta += off
	*oppDelta += def
	return fmt.Sprintf("%d games, offense %+.1f, defense giveback %+.1f", b2b.Games, off, def)
}

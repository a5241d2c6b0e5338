// Package resolver implements the game-total prediction pipeline: true
// possessions from box-score inputs, tier classification against league
// reference distributions, a season/recent baseline blend, and a fixed-order
// sequence of adjustment stages, each of which is recorded in the result so
// every point of the final number can be audited.
//
// The package is pure: no I/O, no shared state, deterministic for fixed
// inputs. Collaborators hand it immutable snapshots and it hands back a
// result object.
package resolver

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/models"
)

// Input is everything one resolution consumes.
type Input struct {
	HomeTeamID string
	AwayTeamID string
	Season     string

	Home   TeamInput
	Away   TeamInput
	League *models.LeagueReference

	Line *float64
}

// Resolver runs the pipeline. Construct once and share freely; it holds only
// immutable tuning, the ordered stage list, and a logger.
type Resolver struct {
	tuning Tuning
	stages []Stage
	logger *zap.SugaredLogger
}

// New builds a Resolver with the default stage order.
func New(tuning Tuning, logger *zap.Logger) *Resolver {
	return NewWithStages(tuning, DefaultStages(), logger)
}

// NewWithStages builds a Resolver with an explicit stage list. Tests use this
// to prove the ordering invariant; production always uses DefaultStages.
func NewWithStages(tuning Tuning, stages []Stage, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	sugar := logger.Sugar()
	guardedStages := make([]Stage, len(stages))
	for i, s := range stages {
		guardedStages[i] = guarded{stage: s, logger: sugar}
	}
	return &Resolver{tuning: tuning, stages: guardedStages, logger: sugar}
}

// Resolve runs the full pipeline for one game and returns the result object.
// Missing data degrades per stage and is reported via the data_quality flags;
// Resolve itself never fails.
func (r *Resolver) Resolve(in Input) *models.PredictionResult {
	st := &State{
		Home:   Side{Input: in.Home},
		Away:   Side{Input: in.Away},
		League: in.League,
		Tuning: r.tuning,
	}

	// Possessions and tiers are independent of each other; both feed the
	// baseline and the stages.
	var homePossOK, awayPossOK bool
	st.Home.Possessions, homePossOK = sidePossessions(in.Home.Stats, r.tuning)
	st.Away.Possessions, awayPossOK = sidePossessions(in.Away.Stats, r.tuning)
	st.Home.PossessionFallback = !homePossOK
	st.Away.PossessionFallback = !awayPossOK

	ensureTiers(&st.Home, in.League, r.tuning)
	ensureTiers(&st.Away, in.League, r.tuning)

	st.Home.Quality = assessQuality(in.Home, homePossOK)
	st.Away.Quality = assessQuality(in.Away, awayPossOK)

	st.Home.Projected = ProjectBaseline(in.Home.Stats, in.Home.Recent, st.Home.Input.Tiers, in.League, r.tuning)
	st.Away.Projected = ProjectBaseline(in.Away.Stats, in.Away.Recent, st.Away.Input.Tiers, in.League, r.tuning)

	records := make([]models.AdjustmentRecord, 0, len(r.stages))
	for _, stage := range r.stages {
		delta, expl := stage.Apply(st)
		st.apply(delta)
		records = append(records, models.AdjustmentRecord{
			Stage:       stage.Name(),
			HomeDelta:   round1(delta.Home),
			AwayDelta:   round1(delta.Away),
			TotalDelta:  round1(delta.Total),
			Explanation: expl,
		})
	}

	total := round1(st.Home.Projected + st.Away.Projected + st.TotalDelta)

	result := &models.PredictionResult{
		ID:             uuid.NewString(),
		HomeTeamID:     in.HomeTeamID,
		AwayTeamID:     in.AwayTeamID,
		Season:         in.Season,
		PredictedTotal: total,
		Breakdown: models.PredictionBreakdown{
			HomeProjected: round1(st.Home.Projected),
			AwayProjected: round1(st.Away.Projected),
			StageDeltas:   records,
		},
		DataQuality: models.TeamQuality{
			Home: st.Home.Quality,
			Away: st.Away.Quality,
		},
		GeneratedAt: time.Now().UTC(),
	}

	if in.Line != nil {
		line := *in.Line
		edge := round1(total - line)
		result.Line = &line
		result.LineEdge = &edge
		result.Recommendation = recommend(edge, r.tuning.EdgeThreshold)
	}

	r.logger.Debugw("Resolved game total",
		"home", in.HomeTeamID, "away", in.AwayTeamID,
		"total", total, "homeQuality", st.Home.Quality, "awayQuality", st.Away.Quality)

	return result
}

func sidePossessions(stats *models.TeamStatProfile, t Tuning) (float64, bool) {
	if stats == nil {
		return t.LeagueAveragePace, false
	}
	return Possessions(stats, t)
}

// ensureTiers substitutes a freshly classified (or neutral) profile when the
// precomputed one is absent, so stages never see a nil tier profile.
func ensureTiers(s *Side, league *models.LeagueReference, t Tuning) {
	if s.Input.Tiers != nil {
		return
	}
	s.Input.Tiers = ClassifyTeam(s.Input.Stats, s.Input.Recent, league, t)
}

func recommend(edge, threshold float64) models.Recommendation {
	switch {
	case edge >= threshold:
		return models.RecommendOver
	case edge <= -threshold:
		return models.RecommendUnder
	default:
		return models.RecommendNoBet
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

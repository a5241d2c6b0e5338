package logic

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtside/totals-api/internal/models"
	"github.com/courtside/totals-api/internal/resolver"
)

// ErrInvalidInput marks malformed team identifiers or season strings. The
// call is rejected before any stage executes.
var ErrInvalidInput = errors.New("invalid input")

var (
	teamIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{2,12}$`)
	seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

var (
	resolutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "totals_resolutions_total",
		Help: "Total number of game-total resolutions",
	})

	resolutionQuality = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "totals_resolution_quality_total",
		Help: "Resolutions by per-team data quality flag",
	}, []string{"quality"})

	resolutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "totals_resolution_duration_seconds",
		Help:    "Duration of a full resolution including data fetch",
		Buckets: prometheus.DefBuckets,
	})
)

type predictionService struct {
	provider StatsProvider
	resolver *resolver.Resolver
	recentN  int
	logger   *zap.SugaredLogger
}

// NewPredictionService wires the stats provider to the pure resolver core.
func NewPredictionService(provider StatsProvider, res *resolver.Resolver, recentN int, logger *zap.Logger) PredictionService {
	if recentN <= 0 {
		recentN = 10
	}
	return &predictionService{
		provider: provider,
		resolver: res,
		recentN:  recentN,
		logger:   logger.Sugar(),
	}
}

func (s *predictionService) ResolveGameTotal(ctx context.Context, homeTeamID, awayTeamID, season string, line *float64) (*models.PredictionResult, error) {
	if err := validateIdentifiers(homeTeamID, awayTeamID, season); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { resolutionDuration.Observe(time.Since(start).Seconds()) }()

	in := resolver.Input{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Season:     season,
		Line:       line,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Home, err = s.fetchTeamInput(gctx, homeTeamID, season)
		return err
	})
	g.Go(func() error {
		var err error
		in.Away, err = s.fetchTeamInput(gctx, awayTeamID, season)
		return err
	})
	g.Go(func() error {
		ref, err := s.provider.GetLeagueReference(gctx, season)
		if err != nil {
			// A missing reference degrades tiers to neutral; only log it.
			s.logger.Warnw("League reference unavailable", "season", season, "error", err)
			return nil
		}
		in.League = ref
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching inputs for %s vs %s: %w", homeTeamID, awayTeamID, err)
	}

	result := s.resolver.Resolve(in)

	resolutionsTotal.Inc()
	resolutionQuality.WithLabelValues(string(result.DataQuality.Home)).Inc()
	resolutionQuality.WithLabelValues(string(result.DataQuality.Away)).Inc()

	return result, nil
}

// fetchTeamInput gathers one team's snapshot. Absent rows come back as nils
// that the resolver's quality guard turns into partial/fallback flags.
func (s *predictionService) fetchTeamInput(ctx context.Context, teamID, season string) (resolver.TeamInput, error) {
	var in resolver.TeamInput

	stats, err := s.provider.GetTeamStats(ctx, teamID, season)
	if err != nil {
		return in, err
	}
	in.Stats = stats

	in.Recent, err = s.provider.GetRecentGames(ctx, teamID, season, s.recentN)
	if err != nil {
		s.logger.Warnw("Recent games unavailable", "team", teamID, "error", err)
		in.Recent = nil
	}

	in.Tiers, err = s.provider.GetTeamTierProfile(ctx, teamID, season)
	if err != nil {
		s.logger.Warnw("Tier profile unavailable", "team", teamID, "error", err)
		in.Tiers = nil
	}

	in.B2B, err = s.provider.GetBackToBackProfile(ctx, teamID, season)
	if err != nil {
		s.logger.Warnw("Back-to-back profile unavailable", "team", teamID, "error", err)
		in.B2B = nil
	}

	in.OnShortRest = onShortRest(in.Recent, time.Now())
	return in, nil
}

// onShortRest reports whether the most recent completed game was last night,
// making the upcoming game the second half of a back-to-back.
func onShortRest(recent []models.GameLine, now time.Time) bool {
	if len(recent) == 0 {
		return false
	}
	since := now.Sub(recent[0].Date)
	return since > 0 && since < 36*time.Hour
}

func validateIdentifiers(homeTeamID, awayTeamID, season string) error {
	if !teamIDPattern.MatchString(homeTeamID) {
		return fmt.Errorf("%w: home team id %q", ErrInvalidInput, homeTeamID)
	}
	if !teamIDPattern.MatchString(awayTeamID) {
		return fmt.Errorf("%w: away team id %q", ErrInvalidInput, awayTeamID)
	}
	if homeTeamID == awayTeamID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if !seasonPattern.MatchString(season) {
		return fmt.Errorf("%w: season %q (want e.g. 2025-26)", ErrInvalidInput, season)
	}
	return nil
}

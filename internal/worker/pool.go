// Package worker implements the daily tier-sync job as a buffered worker
// pool: team/season pairs are enqueued, each worker pulls the team's inputs,
// runs the tier classifier, and writes the resulting profile to Redis (read
// path for the resolver) and Postgres (durability).
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/logic"
	"github.com/courtside/totals-api/internal/models"
	"github.com/courtside/totals-api/internal/resolver"
)

// Prometheus metrics
var (
	teamsSynced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "totals_tier_teams_synced_total",
		Help: "Total number of team tier profiles recomputed",
	})

	syncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "totals_tier_sync_failures_total",
		Help: "Total number of tier sync jobs that failed",
	})

	syncQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "totals_tier_sync_queue_depth",
		Help: "Current depth of the tier sync queue",
	})

	syncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "totals_tier_sync_duration_seconds",
		Help:    "Duration of one team's tier recomputation",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is one team's tier recomputation.
type Job struct {
	TeamID string
	Season string
}

// PoolConfig configures the tier sync pool.
type PoolConfig struct {
	WorkerCount  int
	QueueSize    int
	SyncInterval time.Duration
	Season       string
	RecentWindow int

	Provider logic.StatsProvider
	Pg       logic.PgPool
	Redis    logic.RedisClient
	Tuning   resolver.Tuning
	Logger   *zap.Logger
}

// Pool manages the tier sync workers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a tier sync pool.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = 24 * time.Hour
	}
	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the workers and the periodic full-league sweep.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.sweepLoop()

	p.logger.Infow("Tier sync pool started",
		"workers", p.config.WorkerCount,
		"interval", p.config.SyncInterval,
		"season", p.config.Season,
	)
}

// Stop gracefully shuts down the pool.
func (p *Pool) Stop() {
	p.logger.Info("Stopping tier sync pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Tier sync pool stopped")
}

// Enqueue queues one team for recomputation.
func (p *Pool) Enqueue(job Job) bool {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue tier job (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- job:
		syncQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	case <-p.ctx.Done():
		return false
	default:
		p.logger.Warnw("Tier sync queue full, dropping job", "team", job.TeamID)
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// SweepSeason enqueues every team in the season.
func (p *Pool) SweepSeason(ctx context.Context) error {
	ids, err := p.config.Provider.ListTeamIDs(ctx, p.config.Season)
	if err != nil {
		return fmt.Errorf("listing teams for sweep: %w", err)
	}
	for _, id := range ids {
		p.Enqueue(Job{TeamID: id, Season: p.config.Season})
	}
	p.logger.Infow("Tier sweep enqueued", "teams", len(ids), "season", p.config.Season)
	return nil
}

func (p *Pool) sweepLoop() {
	// One sweep at startup so a fresh deploy has profiles immediately.
	if err := p.SweepSeason(p.ctx); err != nil {
		p.logger.Errorw("Initial tier sweep failed", "error", err)
	}

	ticker := time.NewTicker(p.config.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.SweepSeason(p.ctx); err != nil {
				p.logger.Errorw("Tier sweep failed", "error", err)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			syncQueueDepth.Set(float64(len(p.jobQueue)))

			start := time.Now()
			if err := p.syncTeam(p.ctx, job); err != nil {
				syncFailures.Inc()
				p.logger.Errorw("Tier sync failed", "worker", id, "team", job.TeamID, "error", err)
			} else {
				teamsSynced.Inc()
			}
			syncDuration.Observe(time.Since(start).Seconds())

		case <-p.ctx.Done():
			return
		}
	}
}

// syncTeam recomputes one team's tier profile and persists it.
func (p *Pool) syncTeam(ctx context.Context, job Job) error {
	stats, err := p.config.Provider.GetTeamStats(ctx, job.TeamID, job.Season)
	if err != nil {
		return err
	}
	games, err := p.config.Provider.GetRecentGames(ctx, job.TeamID, job.Season, p.config.RecentWindow)
	if err != nil {
		// Classifier degrades to medium variance/matchup without games.
		p.logger.Warnw("Recent games unavailable for tier sync", "team", job.TeamID, "error", err)
		games = nil
	}
	ref, err := p.config.Provider.GetLeagueReference(ctx, job.Season)
	if err != nil {
		p.logger.Warnw("League reference unavailable for tier sync", "team", job.TeamID, "error", err)
		ref = nil
	}

	profile := resolver.ClassifyTeam(stats, games, ref, p.config.Tuning)
	profile.TeamID = job.TeamID
	profile.Season = job.Season

	return p.persist(ctx, profile)
}

func (p *Pool) persist(ctx context.Context, profile *models.TeamTierProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling tier profile: %w", err)
	}

	if err := p.config.Redis.HSet(ctx, "tier_profiles:"+profile.Season, profile.TeamID, data).Err(); err != nil {
		return fmt.Errorf("writing tier profile to redis: %w", err)
	}

	_, err = p.config.Pg.Exec(ctx, `
		INSERT INTO team_tier_profiles (
			team_id, season, pace_tier, variance_tier, home_away_tier, matchup_tier,
			pace_weight, season_weight, recent_weight, matchup_weight, home_away_weight,
			computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (team_id, season) DO UPDATE SET
			pace_tier = EXCLUDED.pace_tier,
			variance_tier = EXCLUDED.variance_tier,
			home_away_tier = EXCLUDED.home_away_tier,
			matchup_tier = EXCLUDED.matchup_tier,
			pace_weight = EXCLUDED.pace_weight,
			season_weight = EXCLUDED.season_weight,
			recent_weight = EXCLUDED.recent_weight,
			matchup_weight = EXCLUDED.matchup_weight,
			home_away_weight = EXCLUDED.home_away_weight,
			computed_at = EXCLUDED.computed_at
	`, profile.TeamID, profile.Season,
		string(profile.Pace), string(profile.Variance), string(profile.HomeAway), string(profile.Matchup),
		profile.PaceWeight, profile.SeasonWeight, profile.RecentWeight,
		profile.MatchupWeight, profile.HomeAwayWeight, profile.ComputedAt)
	if err != nil {
		return fmt.Errorf("persisting tier profile: %w", err)
	}
	return nil
}

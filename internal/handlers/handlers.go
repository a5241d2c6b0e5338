package handlers

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// TierSyncer is the slice of the sync worker the handlers need.
type TierSyncer interface {
	QueueDepth() int
}

type Config struct {
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	TierSync   TierSyncer
	// Services
	Prediction logic.PredictionService
	Stats      logic.StatsProvider
}

type Handler struct {
	pg         *pgxpool.Pool
	ch         driver.Conn
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	tierSync   TierSyncer
	prediction logic.PredictionService
	stats      logic.StatsProvider
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		tierSync:   cfg.TierSync,
		prediction: cfg.Prediction,
		stats:      cfg.Stats,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/football-sim/internal/config"
	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/domain/season"
	"github.com/riskibarqy/football-sim/internal/infrastructure/publisher"
	"github.com/riskibarqy/football-sim/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-sim/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-sim/internal/infrastructure/sink"
	"github.com/riskibarqy/football-sim/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-sim/internal/platform/cache"
	idgen "github.com/riskibarqy/football-sim/internal/platform/id"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/random"
	"github.com/riskibarqy/football-sim/internal/platform/resilience"
	"github.com/riskibarqy/football-sim/internal/scheduler"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

const redisPingTimeout = 2 * time.Second

// App holds the HTTP server and everything that must be closed with it.
type App struct {
	Server *http.Server
	Career *usecase.CareerService

	clock  *scheduler.MatchClock
	db     *sqlx.DB
	redis  *redis.Client
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	seasonCfg, err := SeasonConfig(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{logger: logger}
	rosters, careers, err := a.openStore(ctx, cfg)
	if err != nil {
		a.closeResources()
		return nil, err
	}

	sinks := match.MultiSink{sink.NewLogSink(logger)}
	if cfg.RedisEnabled {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		if err := a.redis.Ping(pingCtx).Err(); err != nil {
			logger.WarnContext(ctx, "redis unreachable at startup, events will be retried per publish", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		sinks = append(sinks, publisher.NewRedisStreamSink(a.redis, publisher.RedisStreamConfig{
			Stream: cfg.RedisStream,
			Breaker: resilience.BreakerConfig{
				Enabled:          true,
				FailureThreshold: cfg.RedisCircuitFailureCount,
				OpenTimeout:      cfg.RedisCircuitOpenTimeout,
				HalfOpenTrials:   cfg.RedisCircuitHalfOpenMaxReq,
			},
		}, logger))
	}

	var rosterCache *cache.Store[[]player.Player]
	if cfg.CacheEnabled {
		rosterCache = cache.NewStore[[]player.Player](cfg.CacheTTL)
	}

	seed := SimulationSeed(cfg)
	logger.InfoContext(ctx, "simulation configured",
		"seed", seed,
		"fixture_cap", seasonCfg.FixtureCap,
		"store", cfg.StoreDriver,
		"redis", cfg.RedisEnabled,
	)

	a.Career = usecase.NewCareerService(
		rosters,
		nil,
		careers,
		idgen.NewUUIDGenerator(""),
		sinks,
		rosterCache,
		usecase.CareerServiceConfig{Season: seasonCfg, Random: random.NewSeeded(seed)},
		logger,
	)
	projection := usecase.NewProjectionService(rosters, seasonCfg, cfg.SimProjectionWorkers, logger)

	a.clock, err = scheduler.NewMatchClock(a.Career, cfg.SimTickInterval, logger)
	if err != nil {
		a.closeResources()
		return nil, crerr.Wrap(err, "create match clock")
	}
	a.clock.Start()

	a.Career.WarmRosters(ctx)

	handler := httpapi.NewHandler(a.Career, projection, a.clock, logger)
	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config) (player.RosterProvider, career.Repository, error) {
	if cfg.StoreDriver != config.StorePostgres {
		return memory.NewRosterProvider(memory.SeedPlayers()), memory.NewCareerRepository(), nil
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	a.db = db
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return nil, nil, crerr.Wrap(err, "seed players")
	}
	rosters := postgres.NewRosterProvider(postgres.NewPlayerRepository(db), a.logger)
	return rosters, postgres.NewCareerRepository(db), nil
}

// Shutdown stops the match clock and closes the store and broker clients.
// The HTTP server is shut down by the caller.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.clock != nil {
		a.clock.Stop()
		if err := a.clock.Shutdown(); err != nil {
			errs = append(errs, crerr.Wrap(err, "shutdown match clock"))
		}
	}
	if err := a.closeResources(); err != nil {
		errs = append(errs, err)
	}
	a.logger.InfoContext(ctx, "app resources released")
	return errors.Join(errs...)
}

func (a *App) closeResources() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, crerr.Wrap(err, "close redis"))
		}
		a.redis = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, crerr.Wrap(err, "close database"))
		}
		a.db = nil
	}
	return errors.Join(errs...)
}

// SeasonConfig applies the configured fixture cap and rewards to the default
// tier layout.
func SeasonConfig(cfg config.Config) (season.Config, error) {
	out := season.DefaultConfig()
	out.FixtureCap = cfg.SimFixtureCap
	rewards := map[string]int64{
		season.TierChampion:       cfg.SimRewardChampion,
		season.TierUpper:          cfg.SimRewardUpper,
		season.TierMid:            cfg.SimRewardMid,
		season.TierRelegationZone: cfg.SimRewardRelegation,
	}
	for i := range out.Tiers {
		if reward, ok := rewards[out.Tiers[i].Name]; ok {
			out.Tiers[i].Reward = reward
		}
	}
	if err := out.Validate(); err != nil {
		return season.Config{}, fmt.Errorf("invalid season config: %w", err)
	}
	return out, nil
}

// SimulationSeed returns the configured seed, or a time based one when unset.
func SimulationSeed(cfg config.Config) uint64 {
	if cfg.SimSeed != 0 {
		return cfg.SimSeed
	}
	return uint64(time.Now().UnixNano())
}

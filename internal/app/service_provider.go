package app

import (
	authAPI "bowling_backend/internal/api/auth"
	bowlingAPI "bowling_backend/internal/api/bowling"
	"bowling_backend/internal/config"
	"bowling_backend/internal/config/env"
	"bowling_backend/internal/metrics"
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/repository/auth_repo"
	"bowling_backend/internal/repository/bowler_repo"
	"bowling_backend/internal/repository/game_repo"
	"bowling_backend/internal/repository/stats_repo"
	"bowling_backend/internal/service"
	"bowling_backend/internal/service/auth"
	"bowling_backend/internal/service/bowling"
	"bowling_backend/pkg/resp"
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	logger     *zap.Logger
	configPath string

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Metrics
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Bowler bits
	bowlerRepo repository.BowlerRepository

	// Bowling bits
	scoringCfg  config.ScoringConfig
	gameRepo    repository.GameRepository
	statsRepo   repository.StatsRepository
	bowlingServ service.BowlingService
	bowlingHand *bowlingAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(logger *zap.Logger, configPath string) *ServiceProvider {
	return &ServiceProvider{logger: logger, configPath: configPath}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		if maxConns := sp.PgConfig().MaxConns(); maxConns > 0 {
			poolCfg.MaxConns = maxConns
		}

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry())
	}
	return sp.metrics
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) BowlerRepo(ctx context.Context) repository.BowlerRepository {
	if sp.bowlerRepo == nil {
		sp.bowlerRepo = bowler_repo.NewBowlerRepository(sp.DBClient(ctx))
	}
	return sp.bowlerRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.BowlerRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.logger.Named("auth"),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			Logger:     sp.logger,
			SessionTTL: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) ScoringCfg() config.ScoringConfig {
	if sp.scoringCfg == nil {
		cfg, err := env.NewScoringConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get scoring config: " + err.Error())
		}
		sp.scoringCfg = cfg
	}
	return sp.scoringCfg
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.ScoringCfg().StatsWindowSize())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) BowlingService(ctx context.Context) service.BowlingService {
	if sp.bowlingServ == nil {
		sp.bowlingServ = bowling.NewBowlingService(
			sp.ScoringCfg(),
			sp.GameRepository(ctx),
			sp.BowlerRepo(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.Metrics(),
			sp.logger.Named("bowling"),
		)
	}
	return sp.bowlingServ
}

func (sp *ServiceProvider) BowlingHandler(ctx context.Context) *bowlingAPI.Handler {
	if sp.bowlingHand == nil {
		sp.bowlingHand = bowlingAPI.NewHandler(bowlingAPI.HandlerDeps{
			Serv:   sp.BowlingService(ctx),
			Logger: sp.logger,
		})
	}
	return sp.bowlingHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

// Healthz reports whether the database answers a ping
func (sp *ServiceProvider) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := sp.DBClient(r.Context()).Ping(r.Context()); err != nil {
		sp.logger.Warn("health check failed", zap.Error(err))
		resp.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger(sp.logger.Named("http")))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", sp.Healthz)
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Bowling endpoints
		bowlingHandler := sp.BowlingHandler(ctx)
		limiter := middleware.NewIPRateLimiter(sp.ScoringCfg().RateLimit(), sp.ScoringCfg().RateBurst())
		r.Route("/bowling", func(rr chi.Router) {
			rr.With(middleware.RateLimit(limiter)).Post("/score", bowlingHandler.Score)
			rr.Get("/stats", bowlingHandler.Stats)

			rr.Group(func(ar chi.Router) {
				ar.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
				ar.Post("/games", bowlingHandler.RecordGame)
				ar.Get("/games", bowlingHandler.ListGames)
				ar.Get("/games/{id}", bowlingHandler.GetGame)
			})
		})

		sp.router = r
	}
	return sp.router
}

// Close releases the database pool
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/pawararyan169/job-portal/internal/application/auth"
	"github.com/pawararyan169/job-portal/internal/application/jobs"
	"github.com/pawararyan169/job-portal/internal/config"
	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/infrastructure/db/postgres"
	"github.com/pawararyan169/job-portal/internal/infrastructure/memory"
	rabbitmq_pub "github.com/pawararyan169/job-portal/internal/infrastructure/messaging/rabbitmq"
	"github.com/pawararyan169/job-portal/internal/infrastructure/redis"
	"github.com/pawararyan169/job-portal/internal/infrastructure/security"
	"github.com/pawararyan169/job-portal/internal/logger"
	http_handlers "github.com/pawararyan169/job-portal/internal/transport/http/handlers"
	"github.com/pawararyan169/job-portal/internal/transport/http/middleware"
	"github.com/pawararyan169/job-portal/internal/transport/http/response"
	"github.com/pawararyan169/job-portal/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

// Publisher is the union of the event ports the services publish on.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error
	PublishJobPosted(ctx context.Context, evt jobs.JobPostedEvent) error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 2) stores: postgres when configured, in-memory dev fallback otherwise
	var (
		sqlDB    *sql.DB
		userRepo auth.UserRepo
		jobRepo  jobs.JobRepo
	)

	switch {
	case cfg.DBAddr != "":
		db, err := deps.NewDB(cfg.DBAddr)
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		var ok bool
		sqlDB, ok = db.(*sql.DB)
		if !ok {
			runCleanup(cleanupFns)
			return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
		}

		userRepo = postgres.NewUserRepo(sqlDB)
		jobRepo = postgres.NewJobRepo(sqlDB)

	case cfg.Env == "dev":
		logger.Logger.Warn().Msg("DB_ADDR not set; using in-memory stores")
		memUsers := memory.NewUserRepo()
		memJobs := memory.NewJobRepo()
		memory.SeedUsers(context.Background(), memUsers, hasher)
		memory.SeedJobs(context.Background(), memJobs)
		userRepo = memUsers
		jobRepo = memJobs

	default:
		return nil, nil, errors.New("bootstrap: DB_ADDR is required outside dev")
	}

	// 3) redis (best-effort user cache over postgres)
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; user cache disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			if rc, ok := c.(*redis.Client); ok {
				userRepo = redis.NewCachedUserRepo(userRepo, rc, cfg.UserCacheTTL)
			}
		}
	}

	// 4) publisher
	var pub Publisher
	if deps.NewPublisher != nil && cfg.RabbitURL != "" {
		p, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			if cfg.Env == "dev" {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		} else {
			pub = p
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
		}
	}
	if pub == nil {
		pub = memory.NewNoopPublisher()
	}

	// 5) services
	authSvc := auth.NewService(userRepo, hasher, signer, pub, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	jobsSvc := jobs.NewService(jobRepo, pub)

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	jobsH := http_handlers.NewJobsHandler(jobsSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, response.WriteError)
	recruiterMW := middleware.RequireRole(string(domain.RoleRecruiter), response.WriteError)

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:      healthH,
		Auth:        authH,
		Jobs:        jobsH,
		AuthMW:      authMW,
		RecruiterMW: recruiterMW,
		RequestID:   middleware.RequestID,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string) (DBCloser, error) {
			return config.NewDB(addr)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/router"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	jobsadapters "jobboard_backend/internal/feature/jobs/adapters"
	jobshandler "jobboard_backend/internal/feature/jobs/transport/handler"
	jobsusecase "jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/cache"
	"jobboard_backend/internal/platform/config"
	infradb "jobboard_backend/internal/platform/db"
	infraredis "jobboard_backend/internal/platform/redis"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := infradb.OpenDB(cfg.DatabaseURL, cfg.RunMigrations)
	if err != nil {
		log.Fatal(err)
	}

	// Redis (optional: the stats cache degrades to direct store reads)
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_HOST not set. Running without stats cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable. Running without stats cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	jobRepo := jobsadapters.NewJobRepository(db)
	companyRepo := jobsadapters.NewCompanyRepository(db)

	// Stats reads go through the Redis decorator; job mutations invalidate it
	cachedStats := cache.NewCachingStatsRepository(rdb, cfg.StatsCacheTTL, jobRepo, "jobstats")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	jobsUC := jobsusecase.NewJobsUsecase(jobRepo, companyRepo, cachedStats)
	statsUC := jobsusecase.NewStatsUsecase(cachedStats)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	jobsH := jobshandler.NewJobsHandler(jobsUC, statsUC)

	r := router.NewRouter(cfg.JWTSecret, authH, jobsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

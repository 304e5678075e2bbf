package app

import (
	"context"
	"log"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/routes"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	"skillswap/internal/ws"
)

// Container owns every long-lived dependency and the wiring between
// them. Close releases connections in reverse construction order.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Registry *routes.Registry
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	swapRepo := repository.NewPostgresSwapRequestRepository(db)
	creditRepo := repository.NewPostgresCreditRepository(db)
	notifRepo := repository.NewPostgresNotificationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, redisCache)
	skillUC := usecase.NewSkillUsecase(skillRepo, redisCache)
	matchUC := usecase.NewMatchingUsecase(userRepo, skillRepo, redisCache)
	swapUC := usecase.NewSwapUsecase(db, swapRepo, skillRepo, userRepo, creditRepo, notifRepo, notifier)
	creditUC := usecase.NewCreditUsecase(db, creditRepo, userRepo, skillRepo, swapRepo, notifRepo, notifier)
	notifUC := usecase.NewNotificationUsecase(notifRepo)

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(db),
		WS:     ws.NewHandler(hub, jwtSvc, logger),
		V1: v1.Deps{
			AuthMW:       middleware.NewAuthMiddleware(jwtSvc),
			AdminMW:      middleware.NewAdminMiddleware(),
			Auth:         handler.NewAuthHandler(authUC),
			User:         handler.NewUserHandler(userUC, skillUC),
			Skill:        handler.NewSkillHandler(skillUC),
			Match:        handler.NewMatchHandler(matchUC),
			Swap:         handler.NewSwapHandler(swapUC),
			Credit:       handler.NewCreditHandler(creditUC),
			Notification: handler.NewNotificationHandler(notifUC),
			Admin:        handler.NewAdminHandler(userUC, creditUC),
		},
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Registry: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

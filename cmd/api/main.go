package main

import (
	"context"
	"log"

	"summary-share/classifier"
	"summary-share/cmd/api/auth"
	"summary-share/cmd/api/router"
	"summary-share/cmd/api/services"
	"summary-share/internal/logger"
	"summary-share/config"
	"summary-share/db"
	"summary-share/fetcher"
	"summary-share/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(cfg.Database); err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	ctx := context.Background()
	cls, err := classifier.NewClient(ctx, cfg.Classifier)
	if err != nil {
		log.Fatal("failed to initialize classifier: ", err)
	}

	jwtManager, err := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("failed to initialize auth: ", err)
	}

	summaryRepo := repositories.NewSummaryRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())

	summarySvc := services.NewSummaryService(
		summaryRepo,
		userRepo,
		fetcher.NewWebsite(cfg.Fetcher),
		fetcher.NewPDF(),
		cls,
	)
	authSvc := services.NewAuthService(userRepo, jwtManager)

	r := router.New(router.Deps{
		Summaries:      summarySvc,
		Auth:           authSvc,
		JWT:            jwtManager,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("api server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

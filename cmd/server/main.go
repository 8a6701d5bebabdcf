package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ceomapp/ceom/internal/config"
	"github.com/ceomapp/ceom/internal/export/sheets"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
	"github.com/ceomapp/ceom/internal/scheduler"
	"github.com/ceomapp/ceom/internal/server/handlers"
	"github.com/ceomapp/ceom/internal/server/router"
	authsvc "github.com/ceomapp/ceom/internal/service/auth"
	reportingsvc "github.com/ceomapp/ceom/internal/service/reporting"
	"github.com/ceomapp/ceom/pkg/clients/webhook"
	"github.com/ceomapp/ceom/pkg/jwtutil"
	"github.com/ceomapp/ceom/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	tokens := jwtutil.New(jwtutil.Config{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})

	authService := authsvc.NewService(repo, tokens, baseLogger.Named("svc.auth"))

	var notifier webhook.Client
	if cfg.Reporting.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Reporting.WebhookURL)
		baseLogger.Info("report webhook enabled")
	}

	var sheet reportingsvc.RowAppender
	if cfg.Sheets.Enabled() {
		exporter, err := sheets.New(context.Background(), cfg.Sheets, baseLogger.Named("export.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		sheet = exporter
		baseLogger.Info("sheets report export enabled")
	}

	reportingService := reportingsvc.NewService(repo, notifier, sheet, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Auth:       handlers.NewAuthHandler(authService, repo, baseLogger.Named("handlers.auth")),
		Business:   handlers.NewBusinessHandler(repo, baseLogger.Named("handlers.business")),
		Product:    handlers.NewProductHandler(repo, baseLogger.Named("handlers.product")),
		Production: handlers.NewProductionHandler(repo, baseLogger.Named("handlers.production")),
		FixedCost:  handlers.NewFixedCostHandler(repo, baseLogger.Named("handlers.fixedcost")),
		Sales:      handlers.NewSalesHandler(repo, baseLogger.Named("handlers.sales")),
		Finance:    handlers.NewFinanceHandler(repo, baseLogger.Named("handlers.finance")),
		Simulation: handlers.NewSimulationHandler(baseLogger.Named("handlers.simulation")),
	}, tokens, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingService, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

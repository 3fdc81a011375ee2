package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/config"
	"github.com/ermalb/suxhuk-orders/internal/scheduler"
	"github.com/ermalb/suxhuk-orders/internal/server/handlers"
	"github.com/ermalb/suxhuk-orders/internal/server/router"
	backofficesvc "github.com/ermalb/suxhuk-orders/internal/service/backoffice"
	storefrontsvc "github.com/ermalb/suxhuk-orders/internal/service/storefront"
	"github.com/ermalb/suxhuk-orders/pkg/clients/orderapi"
	"github.com/ermalb/suxhuk-orders/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.Debug))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := orderapi.New(cfg.OrderAPI)

	storefrontSvc := storefrontsvc.NewPortalService(apiClient, baseLogger.Named("svc.storefront"))
	backofficeSvc := backofficesvc.NewAdminService(apiClient, baseLogger.Named("svc.backoffice"))

	storefrontHandler := handlers.NewStorefrontHandler(storefrontSvc, baseLogger.Named("handlers.storefront"))
	backofficeHandler := handlers.NewBackofficeHandler(backofficeSvc, baseLogger.Named("handlers.backoffice"))
	engine := router.New(storefrontHandler, backofficeHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Refresh, backofficeSvc, baseLogger.Named("scheduler"))
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

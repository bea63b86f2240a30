package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"islm-sim/internal/api"
	"islm-sim/internal/config"
	"islm-sim/internal/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", "path", cfgPath, "error", err)
	}
	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := cfg.Engine()
	if err != nil {
		logger.Fatal("build engine", "error", err)
	}
	logger.Info("model configured",
		"params", cfg.Params.Name,
		"c0", engine.Params.AutonomousBase,
		"c1", engine.Params.MPC,
		"b1", engine.Params.InvestmentIncomeSensitivity,
		"b2", engine.Params.InvestmentInterestSensitivity,
		"k", engine.Params.MoneyDemandIncomeSensitivity,
		"h", engine.Params.MoneyDemandInterestSensitivity,
		"domain_min", engine.Domain.Min,
		"domain_max", engine.Domain.Max,
		"points", engine.Domain.Points,
	)

	router, err := api.NewRouter(cfg, engine)
	if err != nil {
		logger.Fatal("build router", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting API server", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/satlaunch/satcurve-go/bonding_curve"
	"github.com/satlaunch/satcurve-go/bonding_curve/helpers"
	"github.com/satlaunch/satcurve-go/bonding_curve/shared"
	"github.com/satlaunch/satcurve-go/internal/config"
	"github.com/satlaunch/satcurve-go/internal/handler"
	"github.com/satlaunch/satcurve-go/internal/logging"
	"github.com/satlaunch/satcurve-go/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	launchDoc, err := os.ReadFile(cfg.LaunchConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read launch config: %w", err)
	}
	var curveCfg shared.CurveConfig
	if filepath.Ext(cfg.LaunchConfigPath) == ".bin" {
		curveCfg, err = helpers.ParseLaunchConfigBinary(launchDoc)
	} else {
		curveCfg, err = helpers.ParseLaunchConfig(launchDoc)
	}
	if err != nil {
		return err
	}
	curve, err := bonding_curve.NewCurve(curveCfg)
	if err != nil {
		return err
	}
	logger.Info("curve initialized",
		"x0", curve.X0(), "y0", curve.Y0(), "k", curve.K(), "max_step", curve.MaxStep())

	app := fiber.New()

	quoteService := service.NewQuoteService(logger, curve)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)
	app.Get("/snapshot", quoteHandler.Snapshot())
	app.Get("/mint", quoteHandler.Mint())
	app.Get("/cost", quoteHandler.Cost())
	app.Get("/curve", quoteHandler.Curve())
	app.Post("/simulate", quoteHandler.Simulate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	<-shutdownCtx.Done()
	return nil
}

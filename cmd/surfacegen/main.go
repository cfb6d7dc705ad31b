// Package main is the headless surface generator: it runs the sampling
// pipeline without a window and exports the mesh as OBJ plus a WebP
// color preview.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/surfaceplot/internal/app"
	"github.com/Faultbox/surfaceplot/internal/config"
	"github.com/Faultbox/surfaceplot/internal/export"
	"github.com/Faultbox/surfaceplot/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	coord, err := app.BuildCoordinator(cfg)
	if err != nil {
		return err
	}

	updated := coord.Update()
	b := coord.Buffers()
	xExt, yExt, zExt := coord.Extents()

	logger.Info("surface generated",
		zap.String("function", cfg.Surface.Function),
		zap.Int("u_count", cfg.Grid.UCount),
		zap.Int("v_count", cfg.Grid.VCount),
		zap.Int("vertices", len(b.Positions)/4),
		zap.Int("triangles", b.IndexCount/3),
		zap.Strings("computed", updated),
		zap.Float64("x_min", xExt.Min), zap.Float64("x_max", xExt.Max),
		zap.Float64("y_min", yExt.Min), zap.Float64("y_max", yExt.Max),
		zap.Float64("z_min", zExt.Min), zap.Float64("z_max", zExt.Max),
	)

	if cfg.Export.OBJPath != "" {
		if err := export.SaveOBJ(cfg.Export.OBJPath, b); err != nil {
			return err
		}
		logger.Info("mesh written", zap.String("path", cfg.Export.OBJPath))
	}

	if cfg.Export.PreviewPath != "" {
		if err := export.SavePreview(cfg.Export.PreviewPath, b, cfg.Grid.UCount, cfg.Grid.VCount); err != nil {
			return err
		}
		logger.Info("preview written", zap.String("path", cfg.Export.PreviewPath))
	}

	return nil
}

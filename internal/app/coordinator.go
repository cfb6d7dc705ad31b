// Package app wires configuration into a ready-to-run surface pipeline.
// Both the viewer and the headless generator build their coordinator here.
package app

import (
	"fmt"

	"github.com/Faultbox/surfaceplot/internal/config"
	"github.com/Faultbox/surfaceplot/internal/engine/surface"
	"github.com/Faultbox/surfaceplot/internal/plotfn"
)

// ScaleFactory converts an axis scale config entry into a factory the
// sampler can call with the observed extent.
func ScaleFactory(cfg config.AxisScaleConfig) (surface.ScaleFactory, error) {
	switch cfg.Kind {
	case "", "identity":
		return surface.Identity, nil
	case "linear":
		return surface.Linear(cfg.OutMin, cfg.OutMax), nil
	default:
		return nil, fmt.Errorf("unknown scale kind %q", cfg.Kind)
	}
}

// ColorFunc builds the height-based color accessor from config.
func ColorFunc(cfg config.ColorConfig) (surface.ColorFunc, error) {
	cm, err := plotfn.ColormapByName(cfg.Map)
	if err != nil {
		return nil, err
	}
	return plotfn.HeightColor(cm, cfg.ZMin, cfg.ZMax, cfg.Alpha), nil
}

// BuildCoordinator assembles a coordinator with the configured grid,
// surface function, scales and colormap. The caller still has to run
// Update to materialize the buffers.
func BuildCoordinator(cfg *config.Config) (*surface.Coordinator, error) {
	domain := plotfn.Domain{
		XMin: cfg.Surface.XMin,
		XMax: cfg.Surface.XMax,
		YMin: cfg.Surface.YMin,
		YMax: cfg.Surface.YMax,
	}

	getPosition, err := plotfn.ByName(cfg.Surface.Function, domain)
	if err != nil {
		return nil, fmt.Errorf("surface function: %w", err)
	}

	getColor, err := ColorFunc(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("colormap: %w", err)
	}

	xScale, err := ScaleFactory(cfg.Scales.X)
	if err != nil {
		return nil, fmt.Errorf("x scale: %w", err)
	}
	yScale, err := ScaleFactory(cfg.Scales.Y)
	if err != nil {
		return nil, fmt.Errorf("y scale: %w", err)
	}
	zScale, err := ScaleFactory(cfg.Scales.Z)
	if err != nil {
		return nil, fmt.Errorf("z scale: %w", err)
	}

	params := surface.DefaultParams()
	params.ExcludeInvalidExtent = cfg.Scales.ExcludeInvalidExtent

	coord := surface.NewCoordinator(params)
	coord.SetGrid(cfg.Grid.UCount, cfg.Grid.VCount)
	coord.SetPositionFunc(getPosition)
	coord.SetColorFunc(getColor)
	coord.SetScaleFactories(xScale, yScale, zScale)

	return coord, nil
}

// Package main is the interactive surface viewer: an orbit camera over
// the generated mesh with click-to-pick and live function/colormap
// switching.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/surfaceplot/internal/app"
	"github.com/Faultbox/surfaceplot/internal/config"
	"github.com/Faultbox/surfaceplot/internal/engine/camera"
	"github.com/Faultbox/surfaceplot/internal/engine/input"
	"github.com/Faultbox/surfaceplot/internal/engine/picking"
	"github.com/Faultbox/surfaceplot/internal/engine/renderer"
	"github.com/Faultbox/surfaceplot/internal/engine/scene"
	"github.com/Faultbox/surfaceplot/internal/engine/surface"
	"github.com/Faultbox/surfaceplot/internal/engine/window"
	"github.com/Faultbox/surfaceplot/internal/logger"
	"github.com/Faultbox/surfaceplot/internal/plotfn"
	"github.com/Faultbox/surfaceplot/pkg/math"
)

const (
	windowTitle = "Surface Plot"

	// Vertical field of view in radians (45 degrees).
	fovY = gomath.Pi / 4
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
		logger.Error("viewer failed", zap.Error(err))
		os.Exit(1)
	}
}

// viewer holds the pieces the frame loop mutates.
type viewer struct {
	cfg   *config.Config
	coord *surface.Coordinator
	sr    *scene.SurfaceRenderer
	cam   *camera.OrbitCamera
	pick  *picking.Picker

	getPosition surface.PositionFunc

	functions []string
	funcIdx   int
	colormaps []string
	mapIdx    int
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	drawW, drawH := win.DrawableSize()
	rend, err := renderer.New(renderer.Config{Width: drawW, Height: drawH})
	if err != nil {
		return err
	}

	sr, err := scene.NewSurfaceRenderer()
	if err != nil {
		return fmt.Errorf("creating surface renderer: %w", err)
	}
	defer sr.Destroy()

	pick, err := picking.New(int32(drawW), int32(drawH))
	if err != nil {
		return fmt.Errorf("creating picker: %w", err)
	}
	defer pick.Destroy()

	coord, err := app.BuildCoordinator(cfg)
	if err != nil {
		return err
	}
	coord.SetOnUpdate(func(scales surface.ScaleSet) {
		// Render-space axis ranges, the numbers an axis legend would show.
		xe, ye, ze := coord.Extents()
		logger.Debug("scales rebuilt",
			zap.Float64("x_lo", scales.X.Map(xe.Min)), zap.Float64("x_hi", scales.X.Map(xe.Max)),
			zap.Float64("y_lo", scales.Y.Map(ye.Min)), zap.Float64("y_hi", scales.Y.Map(ye.Max)),
			zap.Float64("z_lo", scales.Z.Map(ze.Min)), zap.Float64("z_hi", scales.Z.Map(ze.Max)),
		)
	})

	v := &viewer{
		cfg:       cfg,
		coord:     coord,
		sr:        sr,
		cam:       camera.NewOrbitCamera(),
		pick:      pick,
		functions: plotfn.Names(),
		colormaps: plotfn.ColormapNames(),
	}
	v.funcIdx = indexOf(v.functions, cfg.Surface.Function)
	v.mapIdx = indexOf(v.colormaps, cfg.Color.Map)
	v.getPosition = currentPositionFunc(cfg)

	v.refresh()
	v.fitCamera()

	logger.Info("viewer ready",
		zap.String("function", cfg.Surface.Function),
		zap.String("colormap", cfg.Color.Map),
	)

	in := input.New()
	dragging := false

	for {
		if in.Update() {
			return nil
		}

		for _, ev := range in.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				dw, dh := win.DrawableSize()
				rend.Resize(dw, dh)
				pick.Resize(int32(dw), int32(dh))

			case input.EventMouseDown:
				if ev.Button == sdl.BUTTON_LEFT {
					dragging = true
				}

			case input.EventMouseUp:
				if ev.Button == sdl.BUTTON_LEFT {
					dragging = false
					v.pickAt(win, ev.MouseX, ev.MouseY)
				}

			case input.EventMouseMove:
				if dragging && (ev.DeltaX != 0 || ev.DeltaY != 0) {
					v.cam.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
				}

			case input.EventMouseWheel:
				v.cam.HandleZoom(float32(ev.Wheel))

			case input.EventKeyDown:
				v.handleKey(ev.Key)
			}
		}

		rend.Clear()
		viewProj := v.viewProj(win)
		v.sr.Draw(viewProj)
		win.SwapBuffers()
	}
}

func (v *viewer) viewProj(win *window.Window) math.Mat4 {
	w, h := win.DrawableSize()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	proj := math.Perspective(fovY, aspect, 0.1, 100)
	return proj.Mul(v.cam.ViewMatrix())
}

// refresh recomputes dirty attributes and uploads only what changed.
func (v *viewer) refresh() {
	updated := v.coord.Update()
	if len(updated) == 0 {
		return
	}

	b := v.coord.Buffers()
	for _, name := range updated {
		switch name {
		case surface.AttrIndices:
			v.sr.UploadIndices(b)
		case surface.AttrPositions:
			v.sr.UploadPositions(b)
		case surface.AttrColors:
			v.sr.UploadColors(b)
		case surface.AttrPickingColors:
			v.sr.UploadPickingColors(b)
		}
	}
	logger.Debug("buffers uploaded", zap.Strings("updated", updated))
}

func (v *viewer) fitCamera() {
	b := v.coord.Buffers()
	if len(b.Positions) == 0 {
		return
	}

	minX, minY, minZ := b.Positions[0], b.Positions[1], b.Positions[2]
	maxX, maxY, maxZ := minX, minY, minZ
	for i := 4; i < len(b.Positions); i += 4 {
		x, y, z := b.Positions[i], b.Positions[i+1], b.Positions[i+2]
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
		minZ, maxZ = min(minZ, z), max(maxZ, z)
	}
	v.cam.FitToBounds(minX, minY, minZ, maxX, maxY, maxZ)
}

// pickAt renders the picking pass and logs the surface point under the
// cursor. Mouse coordinates arrive in window space; the picking buffer
// is drawable-sized, so HiDPI displays need the coordinates rescaled.
func (v *viewer) pickAt(win *window.Window, mouseX, mouseY int) {
	winW, winH := win.GetSize()
	drawW, drawH := win.DrawableSize()
	if winW == 0 || winH == 0 {
		return
	}
	px := int32(mouseX * drawW / winW)
	py := int32(mouseY * drawH / winH)

	restore := v.pick.Begin()
	v.sr.DrawPicking(v.viewProj(win))
	restore()

	res, ok := v.pick.Pick(px, py, v.getPosition)
	if !ok {
		logger.Debug("pick missed the surface")
		return
	}

	logger.Info("picked",
		zap.Float64("u", res.U),
		zap.Float64("v", res.V),
		zap.Float64("x", res.X),
		zap.Float64("y", res.Y),
		zap.Float64("z", res.Z),
	)
}

func (v *viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_TAB, sdl.SCANCODE_F:
		v.funcIdx = (v.funcIdx + 1) % len(v.functions)
		v.cfg.Surface.Function = v.functions[v.funcIdx]
		v.getPosition = currentPositionFunc(v.cfg)
		v.coord.SetPositionFunc(v.getPosition)
		logger.Info("switched function", zap.String("function", v.cfg.Surface.Function))
		v.refresh()
		v.fitCamera()

	case sdl.SCANCODE_C:
		v.mapIdx = (v.mapIdx + 1) % len(v.colormaps)
		v.cfg.Color.Map = v.colormaps[v.mapIdx]
		getColor, err := app.ColorFunc(v.cfg.Color)
		if err != nil {
			logger.Error("colormap rebuild failed", zap.Error(err))
			return
		}
		v.coord.SetColorFunc(getColor)
		logger.Info("switched colormap", zap.String("colormap", v.cfg.Color.Map))
		v.refresh()

	case sdl.SCANCODE_R:
		v.cam = camera.NewOrbitCamera()
		v.fitCamera()
	}
}

func currentPositionFunc(cfg *config.Config) surface.PositionFunc {
	domain := plotfn.Domain{
		XMin: cfg.Surface.XMin,
		XMax: cfg.Surface.XMax,
		YMin: cfg.Surface.YMin,
		YMax: cfg.Surface.YMax,
	}
	f, err := plotfn.ByName(cfg.Surface.Function, domain)
	if err != nil {
		logger.Error("unknown surface function", zap.Error(err))
		return nil
	}
	return f
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

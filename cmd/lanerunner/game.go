package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lanerunner/internal/config"
	"lanerunner/internal/game"
	"lanerunner/internal/graphics"
	"lanerunner/internal/graphics/glcore"
	"lanerunner/internal/graphics/renderables/body"
	"lanerunner/internal/graphics/renderables/tiles"
	"lanerunner/internal/graphics/renderer"
	"lanerunner/internal/input"
	"lanerunner/internal/player"
	"lanerunner/internal/terrain"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

func runGame(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel == "" {
		level, _ := log.ParseLevel(cfg.Log.Level)
		logger.SetLevel(level)
	}
	logger.Info("config loaded", "source", source)

	if cmd.Flags().Changed("fps") {
		cfg.Window.FPSLimit = flagFPS
	}
	if flagNoVSync {
		cfg.Window.VSync = false
	}

	// A signal cancels the loop; the handler waits until GL resources are gone.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	defer close(done)
	closer.Bind(func() {
		cancel()
		<-done
	})

	if err := glfw.Init(); err != nil {
		return &graphics.SurfaceSetupError{Err: err}
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	glctx, err := glcore.New()
	if err != nil {
		return err
	}
	defer glctx.Dispose()
	logger.Info("opengl ready", "version", glctx.Version())

	program, err := graphics.NewQuadProgram(glctx, logger)
	if err != nil {
		return fmt.Errorf("failed to build quad program: %w", err)
	}

	surface := graphics.NewSurface(glctx)
	surface.SetViewport(window.GetFramebufferSize())

	camera := graphics.NewCamera(graphics.SurfaceWidth, graphics.SurfaceHeight)
	cfg.ApplyCamera(camera)

	field := terrain.LaneField{}
	p := player.New(field)
	p.Physics = cfg.PlayerPhysics()
	p.Reset()

	limit := cfg.Window.FPSLimit
	if cfg.Window.VSync && !cmd.Flags().Changed("fps") {
		limit = 0
	}
	limiter := game.NewFPSLimiter(limit)
	budget := limiter.Budget()
	if budget == 0 {
		budget = time.Second / 60
	}

	keys := input.NewKeyState()
	driver := &game.Driver{
		Surface: surface,
		Renderer: renderer.NewRenderer(camera,
			tiles.NewTiles(program, field, cfg.Scene.TileWindow),
			body.NewBody(program),
		),
		Program:     program,
		Player:      p,
		Keys:        keys,
		Bindings:    cfg.Bindings(),
		Logger:      logger,
		FrameBudget: budget,
	}
	defer driver.Dispose()

	setupInputHandlers(window, keys, surface)

	logger.Info("running", "vsync", cfg.Window.VSync, "fps_limit", limiter.Limit())
	err = game.Run(ctx, &glfwHost{window: window}, driver, limiter)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted", "frames", surface.FrameCount())
		return nil
	}
	logger.Info("window closed", "frames", surface.FrameCount())
	return err
}

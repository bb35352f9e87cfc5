package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"checkout3d/internal/app"
	"checkout3d/internal/bridge"
	"checkout3d/internal/checkout"
	"checkout3d/internal/config"
	"checkout3d/internal/overlay"
	"checkout3d/internal/payment"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	addr := flag.String("addr", "", "Listen address (default :8080)")
	themeName := flag.String("theme", "", "Theme preset (midnight, ocean, sunset)")
	amount := flag.String("amount", "", "Charge amount as a decimal string")
	decline := flag.Bool("decline", false, "Simulated gateway declines every charge")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{Addr: *addr, Theme: *themeName, Amount: *amount})
	if *decline {
		cfg.GatewayDecline = true
	}

	log := newLogger(cfg.LogLevel)

	checkoutCfg := checkout.DefaultConfig()
	if cfg.FlipMs > 0 {
		checkoutCfg.FlipDuration = time.Duration(cfg.FlipMs) * time.Millisecond
	}
	if cfg.SuccessHoldMs > 0 {
		checkoutCfg.SuccessHold = time.Duration(cfg.SuccessHoldMs) * time.Millisecond
	}

	gw := &payment.Simulated{
		Latency:    time.Duration(cfg.GatewayLatencyMs) * time.Millisecond,
		DeclineAll: cfg.GatewayDecline,
	}

	// The bridge is both the presentation surface and the event ingress, and
	// the coordinator owns the bus: a deferred surface breaks the wiring
	// cycle. Frames cannot be produced before Run starts, so nothing is lost.
	surface := &deferredSurface{}
	co, err := app.New(app.Config{
		ViewportWidth:  float64(cfg.ViewportWidth),
		ViewportHeight: float64(cfg.ViewportHeight),
		FrameRate:      cfg.FrameRate,
		Amount:         cfg.Amount,
		Theme:          cfg.Theme,
		ParticleCount:  cfg.ParticleCount,
		Checkout:       checkoutCfg,
	}, surface, gw, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialization failed")
	}
	srv := bridge.New(co.Bus(), log)
	surface.inner = srv

	mux := http.NewServeMux()
	srv.Routes(mux)

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: mux}
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := co.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("frame loop stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	log.Info().Msg("shut down")
}

// deferredSurface forwards frames once the real surface is wired in.
type deferredSurface struct {
	inner overlay.Surface
}

func (d *deferredSurface) Apply(l overlay.Layout) {
	if d.inner != nil {
		d.inner.Apply(l)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Command planetaria opens a window and renders the animated starfield and
// planet backdrop with its overlay HUD.
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/swidaryanto/Planetaria/app"
	"github.com/swidaryanto/Planetaria/hud"
	"github.com/swidaryanto/Planetaria/internal/buildinfo"
	"github.com/swidaryanto/Planetaria/internal/config"
	"github.com/swidaryanto/Planetaria/internal/logging"
	"github.com/swidaryanto/Planetaria/render"
	"github.com/swidaryanto/Planetaria/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.LevelError).Error("config: %v", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start fullscreen")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time-derived)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	log := logging.New(logging.ParseLevel(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		log.Error("config: %v", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	sc := scene.New(cfg.Width, cfg.Height, rng)
	game := app.New(sc, render.New(), hud.New(rng), log)

	log.Info("planetaria %s: %dx%d, seed %d", buildinfo.Short(), cfg.Width, cfg.Height, seed)

	ebiten.SetWindowTitle("Planetaria (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Error("run: %v", err)
		os.Exit(1)
	}
	log.Info("shut down cleanly")
}

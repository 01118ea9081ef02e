package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chosenoffset.com/shooter/internal/config"
	"chosenoffset.com/shooter/internal/game"
	"chosenoffset.com/shooter/internal/logger"
	ebitenrender "chosenoffset.com/shooter/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "shooter.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "shooter: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(cfg, renderer, inputMgr, loader, log, engine.IsDesktop())
	if err := manager.Setup(); err != nil {
		log.Error("setup failed", zap.Error(err))
		return err
	}
	defer manager.Teardown()

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Window.TPS)

	log.Info("starting game",
		zap.String("config", configPath),
		zap.Int("tps", cfg.Window.TPS),
	)
	if err := engine.RunGame(manager); err != nil {
		log.Error("game loop failed", zap.Error(err))
		return err
	}

	log.Info("game exited")
	return nil
}

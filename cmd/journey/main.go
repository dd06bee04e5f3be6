//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lowtter/internal/app"
	"lowtter/internal/render"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger, closeLog, err := app.NewLogger(cfg.LogFile, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	world, err := app.NewWorld(*cfg)
	if err != nil {
		logger.Fatal(err)
	}
	renderer := render.NewRenderer(world.Layout, cfg.Journey.FogNear)
	session := world.Start(renderer, app.NewSound(*cfg, logger), logger)
	defer session.Close()

	game := app.New(world, session, renderer)

	ebiten.SetWindowTitle("LOWTTER")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Print(err)
	}
}

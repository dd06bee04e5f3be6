//go:build !ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lowtter/internal/app"
	"lowtter/internal/tty"
)

// Without the ebiten tag the journey runs in the terminal.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	// The screen owns stdout; without -log the log is dropped.
	logger, closeLog, err := app.NewLogger(cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	world, err := app.NewWorld(*cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	composer := tty.NewComposer(world.Layout, cfg.Journey.FogNear)
	session := world.Start(composer, app.NewSound(*cfg, logger), logger)
	defer session.Close()

	host := tty.NewHost(screen, composer, world.Controls, session, cfg.TPS)
	host.SetParameters(world, cfg.HUD)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Printf("exit after %d ticks", world.Stream.Ticks())
	return nil
}

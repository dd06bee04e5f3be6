package main

import (
	"flag"
	"fmt"
	"os"

	"lowtter/internal/app"
)

// loadConfig layers defaults, LOWTTER_* variables, flags and -set values.
func loadConfig(args []string) (*app.Config, error) {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet("journey", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.ApplyOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

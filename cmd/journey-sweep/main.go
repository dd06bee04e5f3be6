package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"lowtter/internal/app"
	"lowtter/internal/journey"
	"lowtter/internal/particles"
	"lowtter/pkg/core"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	steps := flag.Int("steps", 20, "progress grid resolution")
	ticks := flag.Int("ticks", 600, "particle ticks to simulate")
	elapsed := flag.Float64("t", 0, "elapsed seconds used for the camera bob")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyOverrides()

	mapper := journey.NewMapper(cfg.Journey)
	samples, transitions := mapper.Sweep(*steps, *elapsed)

	fmt.Println("progress  cameraZ   cameraY  medium      fogFar  fogColor")
	for _, s := range samples {
		st := s.State
		medium := "air"
		if st.Immersed {
			medium = "underwater"
		}
		fmt.Printf("%8.3f  %8.2f  %7.3f  %-10s  %6.1f  %s\n",
			s.Progress, st.CameraPos.Z(), st.CameraPos.Y(), medium, st.FogFar, st.FogColor)
	}

	fmt.Println("\nTransitions (down then back up):")
	if len(transitions) == 0 {
		fmt.Println("  none")
	}
	for _, tr := range transitions {
		dir := "surface"
		if tr.Immersed {
			dir = "plunge"
		}
		fmt.Printf("  %-7s at progress %.3f (z %.2f)\n", dir, tr.Progress, mapper.CameraZ(tr.Progress))
	}

	stream, err := particles.New(cfg.Particles, core.NewRNG(cfg.Seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < *ticks; i++ {
		stream.Tick()
		for _, p := range stream.Snapshot() {
			lo = math.Min(lo, p.Y())
			hi = math.Max(hi, p.Y())
		}
	}
	pc := stream.Config()
	fmt.Printf("\nWaterfall: %d particles over %d ticks, y in [%.3f, %.3f] (floor %.1f, reset %.1f)\n",
		stream.Len(), stream.Ticks(), lo, hi, pc.YMin, pc.YResetHigh)
}

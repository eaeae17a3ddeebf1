package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-birds/internal/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-birds/internal/view"
	goaktlog "github.com/tochemey/goakt/v3/log"
)

func main() {
	opts, err := simulation.ParseOptions("birds", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	level := goaktlog.InfoLevel
	if opts.Verbose {
		level = goaktlog.DebugLevel
	}
	engine, err := simulation.NewEngine(ctx, opts.Config, goaktlog.New(level, os.Stdout))
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Stop(ctx)

	// ebiten drives the steps: one tick per Update
	if opts.Config.TicksPerSecond > 0 {
		ebiten.SetTPS(opts.Config.TicksPerSecond)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	game := view.NewGame(ctx, engine, opts.Config)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Flocking birds")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

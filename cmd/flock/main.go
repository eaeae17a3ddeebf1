package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-flocking-birds/internal/simulation"
	goaktlog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"
)

// flock runs the simulation without a window and prints the final state as JSON.
func main() {
	opts, err := simulation.ParseOptions("flock", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := goaktlog.WarningLevel
	if opts.Verbose {
		level = goaktlog.DebugLevel
	}
	engine, err := simulation.NewEngine(ctx, opts.Config, goaktlog.New(level, os.Stderr))
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Stop(context.Background())

	if err := engine.Run(ctx, opts.Steps); err != nil {
		engine.System.Logger().Warnf("run interrupted: %v", err)
	}

	snap, err := engine.Snapshot(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(snap.ToProto())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

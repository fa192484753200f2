package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"golang.org/x/exp/slog"

	"onebrc"
)

var (
	numWorkers int
	cpuProfile string
	verbose    bool
)

func init() {
	flag.IntVar(&numWorkers, "workers", runtime.NumCPU(), "number of parallel workers")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "file to write cpu profile to")
	flag.BoolVar(&verbose, "v", false, "log pipeline diagnostics to stderr")
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <measurements file>\n", os.Args[0])
		os.Exit(2)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatalf("unable to create CPU profile: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("unable to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	solver := onebrc.New(
		onebrc.WithWorkers(numWorkers),
		onebrc.WithLogger(logger),
	)

	out, err := solver.Solve(flag.Arg(0))
	if err != nil {
		log.Fatalf("unable to aggregate %s: %v", flag.Arg(0), err)
	}
	os.Stdout.WriteString(out)
}

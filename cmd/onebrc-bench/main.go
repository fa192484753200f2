// Latency harness: aggregates the same file repeatedly while sweeping worker
// counts and prints per-count percentiles.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"

	"onebrc"
)

var (
	file string
	runs int
)

func init() {
	flag.StringVar(&file, "file", "measurements.txt", "measurements file to aggregate")
	flag.IntVar(&runs, "runs", 5, "aggregation runs per worker count")
}

func main() {
	flag.Parse()

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Workers", "Runs", "P50", "P99", "Max").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	for workers := 1; workers <= runtime.NumCPU(); workers *= 2 {
		meter := tachymeter.New(&tachymeter.Config{Size: runs})
		solver := onebrc.New(onebrc.WithWorkers(workers))

		for i := 0; i < runs; i++ {
			start := time.Now()
			if _, err := solver.Solve(file); err != nil {
				log.Fatalf("unable to aggregate %s: %v", file, err)
			}
			meter.AddTime(time.Since(start))
		}

		calc := meter.Calc()
		tbl.AddRow(fmt.Sprintf("%d", workers), runs, calc.Time.P50, calc.Time.P99, calc.Time.Max)
	}

	tbl.Print()
}

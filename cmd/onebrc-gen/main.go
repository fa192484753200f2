// Generates sample measurement files: one <station>;<temperature> record per
// line, gaussian temperatures around per-station baselines, clamped to the
// [-99.9, 99.9] range with one fractional digit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/rand"
)

// Baselines loosely track yearly mean temperatures of real stations so
// generated files resemble the full data set.
var stations = []struct {
	name string
	mean float64
}{
	{"Abha", 18.0},
	{"Abidjan", 26.0},
	{"Abéché", 29.4},
	{"Accra", 26.4},
	{"Addis Ababa", 16.0},
	{"Anchorage", 2.8},
	{"Bergen", 7.7},
	{"Bouaké", 26.0},
	{"Calgary", 4.4},
	{"Dikson", -11.1},
	{"Dushanbe", 14.7},
	{"Erbil", 19.5},
	{"Fairbanks", -2.3},
	{"Hanoi", 23.6},
	{"Harbin", 5.0},
	{"Jakarta", 26.7},
	{"Kuopio", 3.3},
	{"La Paz", 23.7},
	{"Lodwar", 29.3},
	{"Murmansk", 0.6},
	{"Nouakchott", 25.7},
	{"Ouagadougou", 28.3},
	{"Ouarzazate", 18.9},
	{"Reykjavík", 4.3},
	{"San José", 22.6},
	{"Tamale", 27.9},
	{"Ulaanbaatar", -0.4},
	{"Whitehorse", -0.1},
	{"Yakutsk", -8.8},
	{"Yellowknife", -4.3},
	{"Zürich", 9.3},
	{"İzmir", 17.9},
}

var (
	out      string
	rows     int
	seed     uint64
	distinct int
)

func init() {
	flag.StringVar(&out, "out", "measurements.txt", "output file")
	flag.IntVar(&rows, "rows", 1_000_000, "number of records to generate")
	flag.Uint64Var(&seed, "seed", 42, "rng seed")
	flag.IntVar(&distinct, "stations", len(stations), "number of distinct stations to draw from")
}

func main() {
	flag.Parse()
	if distinct < 1 || distinct > len(stations) {
		log.Fatalf("stations must be in [1, %d]", len(stations))
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("unable to create %s: %v", out, err)
	}
	defer f.Close()

	r := rand.New(rand.NewSource(seed))
	w := bufio.NewWriterSize(f, 1<<20)
	for i := 0; i < rows; i++ {
		s := stations[r.Intn(distinct)]
		temp := s.mean + r.NormFloat64()*10
		if temp < -99.9 {
			temp = -99.9
		}
		if temp > 99.9 {
			temp = 99.9
		}
		fmt.Fprintf(w, "%s;%.1f\n", s.name, temp)
	}

	if err := w.Flush(); err != nil {
		log.Fatalf("unable to flush %s: %v", out, err)
	}
}

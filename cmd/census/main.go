package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/MichaelDuPlessis/game-of-life/internal/census"

	"github.com/dustin/go-humanize"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("census: ")

	width := flag.Int("width", 64, "board width")
	height := flag.Int("height", 64, "board height")
	boards := flag.Int("boards", 200, "number of random boards")
	seed := flag.Int64("seed", 1, "first seed; boards use consecutive seeds")
	maxGen := flag.Int("max-gen", 5000, "give up on a board after this many generations")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards evolved concurrently")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *boards <= 0 || *maxGen <= 0 {
		log.Fatal("width, height, boards and max-gen must be positive")
	}

	seeds := make([]int64, *boards)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Evolving %s boards of %dx%d (%d workers, max %s generations)\n",
		humanize.Comma(int64(*boards)), *width, *height, *workers, humanize.Comma(int64(*maxGen)))

	start := time.Now()
	results, err := census.Sweep(ctx, census.Params{
		Width:   *width,
		Height:  *height,
		MaxGen:  *maxGen,
		Workers: *workers,
	}, seeds)
	if err != nil {
		log.Fatal(err)
	}
	s := census.Summarize(results)

	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("settled   %d/%d (%d extinct)\n", s.Settled, s.Boards, s.Extinct)
	fmt.Printf("mean gen  %.1f\n", s.MeanGen)
	if s.Longest.Settled {
		fmt.Printf("longest   seed %d settled at generation %s with %d alive\n",
			s.Longest.Seed, humanize.Comma(int64(s.Longest.Generation)), s.Longest.Population)
	}

	periods := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		fmt.Printf("period %-3d %d\n", p, s.Periods[p])
	}
	if len(s.Unsettled) > 0 {
		fmt.Printf("unsettled seeds: %v\n", s.Unsettled)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/plus3/blockfall/tetra"
)

func main() {
	seed := flag.Uint64("seed", 1, "Sequencer seed for the first game; game n uses seed+n-1.")
	games := flag.Int("games", 1, "The number of games to play.")
	width := flag.Int("width", tetra.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetra.DefaultHeight, "Board height in cells.")
	step := flag.Duration("step", 50*time.Millisecond, "Simulated time per tick.")
	maxTicks := flag.Int64("max-ticks", 1_000_000, "Tick budget per game.")
	realtime := flag.Duration("realtime", 0, "Drive games on a wall-clock ticker at this interval instead of simulated time.")
	verbose := flag.Bool("v", false, "Print clear notifications as they happen.")
	flag.Parse()

	log.Printf("Starting autoplay: %d game(s) on a %dx%d board...", *games, *width, *height)

	var scores stats
	var totalLines int
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		session := tetra.NewSession(*width, *height, *seed+uint64(i))
		runner := tetra.NewRunner(session, tetra.NewAutopilot(tetra.DefaultWeights))

		if *verbose {
			runner.OnResult(func(res tetra.TickResult) {
				for _, note := range res.Notifications {
					log.Println(note)
				}
			})
		}

		if *realtime > 0 {
			runner.Run(context.Background(), *realtime)
		} else {
			for t := int64(0); t < *maxTicks; t++ {
				if runner.Step(*step).GameOver {
					break
				}
			}
		}

		rs := runner.Stats()
		fmt.Printf("game %d: score=%d lines=%d level=%d ticks=%d avg-tick=%s\n",
			i+1, session.Points(), session.LinesCleared(), session.Level(), rs.Ticks, rs.AvgDuration)

		scores.add(session.Points())
		totalLines += session.LinesCleared()
	}

	fmt.Println("\n--- Autoplay Report ---")
	fmt.Printf("Games:       %d\n", *games)
	fmt.Printf("Total time:  %s\n", time.Since(startTime))
	fmt.Printf("Score:       min=%d max=%d avg=%d\n", scores.min, scores.max, scores.avg())
	fmt.Printf("Total lines: %d\n", totalLines)

	log.Println("Autoplay complete.")
}

type stats struct {
	n, min, max, total int
}

func (s *stats) add(v int) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if v > s.max {
		s.max = v
	}
	s.total += v
	s.n++
}

func (s *stats) avg() int {
	if s.n == 0 {
		return 0
	}
	return s.total / s.n
}

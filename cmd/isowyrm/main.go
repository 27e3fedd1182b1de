// Command isowyrm renders one user's contribution chart to an SVG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/isowyrm/isowyrm/internal/contrib"
	"github.com/isowyrm/isowyrm/internal/service"
)

func main() {
	user := flag.String("user", "", "GitHub username to render (required)")
	out := flag.String("out", "", "output path (default <user>-contributions.svg)")
	period := flag.String("period", "full-year", "window: full-year or half-year")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the creature's route")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "isowyrm: -user is required")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = *user + "-contributions.svg"
	}

	lookback, err := service.Lookback(*period)
	if err != nil {
		log.Fatal(err)
	}

	start, end := contrib.Window(time.Now().UTC(), lookback)
	client := &http.Client{Timeout: 20 * time.Second}
	series, err := contrib.Fetch(context.Background(), client, *user, start, end)
	if err != nil {
		log.Fatal(err)
	}

	svg := service.BuildChart(series, *user, *period, *seed)
	if err := os.WriteFile(*out, svg, 0o644); err != nil {
		log.Fatal("Failed to write chart:", err)
	}
	log.Printf("Wrote %s (%d days, seed %d)", *out, len(series.Days), *seed)
}

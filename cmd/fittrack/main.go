package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/claude/fittrack/internal/sensor"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	packages := []sensor.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Type: "XYZ", Data: []float64{100, 1, 70}},
	}

	run(os.Stdout, log, packages)
}

// run processes each package in order, printing one report line per
// successfully decoded workout. An unsupported type is diagnosed and
// skipped; it never aborts the remaining packages.
func run(w io.Writer, log *slog.Logger, packages []sensor.Package) {
	for _, pkg := range packages {
		t, err := sensor.Read(pkg)
		if err != nil {
			log.Warn("skipping package", "type", pkg.Type, "error", err)
			continue
		}
		fmt.Fprintln(w, t.Summary().String())
	}
}

// TetraLog is a 3D truck loading planner.
//
// Packs a cargo manifest into a vehicle bay, respecting delivery order,
// support and fragility, and writes the load plan as PDF, spreadsheet,
// CAD wireframe, JSON and unit labels.
//
// Build:
//
//	go build -o tetralog ./cmd/tetralog
//
// Usage:
//
//	tetralog template manifest.xlsx
//	tetralog pack manifest.xlsx --vehicle truck --format pdf,xlsx,labels
//	tetralog compare manifest.csv
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

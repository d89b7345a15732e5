package internal

import (
	"fmt"
	"time"
)

// How long an instrumented run waits after each step it shows, unless
// configured otherwise.
const DefaultPause = 250 * time.Millisecond

type Config struct {
	// Send intermediate steps (partial hulls, probe segments, merge chains) to
	// the sink. This never changes the result.
	Instrumented bool
	// Wait after each shown step when instrumented
	Pause time.Duration
	// Receives the final hull and a status line, if set
	Sink VisualizationSink
	// Return the hull clockwise instead of counterclockwise
	Clockwise bool
}

type Result struct {
	Hull        Hull
	SortTime    time.Duration
	ComputeTime time.Duration
}

// Compute the convex hull of a non-empty set of points. Invalid input panics
// with a HullError; use HandleHullPanicRecover to turn that into an error.
func ComputeHull(points []*Point, config Config) *Result {
	validatePoints(points)
	in := &instrument{
		sink:         config.Sink,
		instrumented: config.Instrumented,
		pause:        config.Pause,
	}

	sortStart := time.Now()
	sorted := SortPoints(points)
	sortTime := time.Since(sortStart)

	computeStart := time.Now()
	hull := buildSortedHull(sorted, in)
	computeTime := time.Since(computeStart)

	if config.Clockwise {
		hull = hull.Reverse()
	}

	in.showHull(hull, Green)
	in.showText(fmt.Sprintf("Time Elapsed (Convex Hull): %3.3f sec", computeTime.Seconds()))

	return &Result{
		Hull:        hull,
		SortTime:    sortTime,
		ComputeTime: computeTime,
	}
}

func validatePoints(points []*Point) {
	if len(points) == 0 {
		invalidInputf("no points given")
	}
	for i, p := range points {
		if p == nil {
			invalidInputf("point %d is nil", i)
		}
		if !p.IsFinite() {
			invalidInputf("point %d has non-finite coordinates %s", i, p)
		}
	}
}

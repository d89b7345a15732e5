package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/internal"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the convex hull by reading a point cloud and printing its hull.
// Input on stdin should be newline separated points in the form "x y". Blank
// lines are ignored. Alternatively, points can be read from the circles and
// polygons of an SVG file.
var (
	app = kingpin.New("convexhull", "Compute the convex hull of a set of 2D points.")

	svgFile    = app.Flag("svg", "Read points from the circles and polygons of an SVG file instead of stdin.").ExistingFile()
	instrument = app.Flag("instrument", "Show every step of the construction, not just the result.").Bool()
	pause      = app.Flag("pause", "Time to wait after each step shown when instrumented.").Default(convexhull.DefaultPause.String()).Duration()
	pngFile    = app.Flag("png", "Render the points and the hull to a PNG file.").String()
	cat        = app.Flag("imgcat", "Print the render inline in the terminal (iTerm only).").Bool()
	scale      = app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	labels     = app.Flag("labels", "Label points with readable names in the render and the log.").Bool()
	clockwise  = app.Flag("clockwise", "Output the hull clockwise.").Bool()
	profileDir = app.Flag("profile", "Write a CPU profile to this directory.").String()
	verbose    = app.Flag("verbose", "Log every sink event.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	points, err := readInput()
	if err != nil {
		log.WithError(err).Fatal("could not read points")
	}
	log.WithField("count", len(points)).Info("read points")

	logSink := internal.NewLogSink(log.StandardLogger())
	logSink.Names = *labels
	sinks := internal.MultiSink{logSink}

	var canvas *internal.Canvas
	if *pngFile != "" || *cat {
		canvas = internal.NewCanvas(points, *scale)
		canvas.Labels = *labels
		sinks = append(sinks, canvas)
	}

	result, err := convexhull.ComputeHull(points, convexhull.Config{
		Instrumented: *instrument,
		Pause:        *pause,
		Sink:         sinks,
		Clockwise:    *clockwise,
	})
	if err != nil {
		log.WithError(err).Fatal("could not compute hull")
	}

	log.WithFields(log.Fields{
		"vertices": len(result.Hull.Points),
		"area":     result.Hull.Area(),
		"sort":     result.SortTime,
		"compute":  result.ComputeTime,
	}).Info("computed hull")

	for _, p := range result.Hull.Points {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}

	if canvas != nil {
		if err := render(canvas); err != nil {
			log.WithError(err).Fatal("could not render hull")
		}
	}
}

func readInput() ([]*convexhull.Point, error) {
	if *svgFile == "" {
		return readPoints(os.Stdin)
	}
	f, err := os.Open(*svgFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not open svg")
	}
	defer f.Close()
	return internal.ParseSVGPoints(f)
}

func render(canvas *internal.Canvas) error {
	path := *pngFile
	if path == "" {
		path = "/tmp/convexhull.png"
	}
	if *cat {
		return canvas.Cat(path)
	}
	if err := canvas.SavePNG(path); err != nil {
		return err
	}
	log.WithField("path", path).Info("saved render")
	return nil
}

func readPoints(in io.Reader) ([]*convexhull.Point, error) {
	points := []*convexhull.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return points, nil
}

func parsePoint(line string) (*convexhull.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Wrapf(convexhull.ErrInvalidInput, "expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(convexhull.ErrInvalidInput, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(convexhull.ErrInvalidInput, "invalid y value %q", parts[1])
	}
	return &convexhull.Point{X: x, Y: y}, nil
}

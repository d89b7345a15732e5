package internal

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run ComputeHull the way the public API does, converting panics to errors.
func computeHull(points []*Point, config Config) (result *Result, err error) {
	defer func() {
		if recoveredErr := HandleHullPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return ComputeHull(points, config), nil
}

func TestComputeHull(t *testing.T) {
	points := RandomCloud(11, 500, 20)
	result, err := computeHull(points, Config{})
	require.NoError(t, err)
	AssertValidHull(t, points, result.Hull)
	requireSameHull(t, BuildHull(points), result.Hull)
	assert.GreaterOrEqual(t, int64(result.SortTime), int64(0))
	assert.GreaterOrEqual(t, int64(result.ComputeTime), int64(0))
}

func TestComputeHull_InvalidInput(t *testing.T) {
	cases := map[string][]*Point{
		"empty":    {},
		"nil":      nil,
		"nil item": {{0, 0}, nil},
		"NaN":      {{0, 0}, {math.NaN(), 1}},
		"infinity": {{math.Inf(1), 0}},
	}
	for name, points := range cases {
		points := points
		t.Run(name, func(t *testing.T) {
			result, err := computeHull(points, Config{})
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "unexpected error: %v", err)
		})
	}
}

func TestComputeHull_Clockwise(t *testing.T) {
	points := []*Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {1, 1}}
	result, err := computeHull(points, Config{Clockwise: true})
	require.NoError(t, err)
	assert.Equal(t, []*Point{points[1], points[2], points[3], points[0]}, result.Hull.Points)
	assert.False(t, result.Hull.IsCCW())
}

func TestComputeHull_Sink(t *testing.T) {
	points := []*Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {1, 1}}
	sink := &recordingSink{}
	result, err := computeHull(points, Config{Sink: sink})
	require.NoError(t, err)

	// Without instrumentation, only the result is shown
	require.Len(t, sink.events, 2)
	assert.Equal(t, sinkEvent{kind: "add", lines: result.Hull.Segments(), color: Green}, sink.events[0])
	assert.Equal(t, "text", sink.events[1].kind)
	assert.True(t, strings.HasPrefix(sink.events[1].text, "Time Elapsed (Convex Hull): "), sink.events[1].text)
}

func TestComputeHull_Instrumented(t *testing.T) {
	inputs := [][]*Point{
		{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {1, 1}},
		{{5, 5}},
		{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		RandomCloud(5, 200, 10),
		RandomLattice(6, 80, 6),
	}
	for _, points := range inputs {
		plain, err := computeHull(points, Config{})
		require.NoError(t, err)

		sink := &recordingSink{}
		instrumented, err := computeHull(points, Config{Instrumented: true, Sink: sink})
		require.NoError(t, err)

		// Instrumentation never changes the result
		assert.Equal(t, plain.Hull.Points, instrumented.Hull.Points)

		// Every intermediate step is erased again
		assert.Equal(t, sink.count("add")-1, sink.count("clear"))
		require.NotEmpty(t, sink.events)
		assert.Equal(t, "text", sink.events[len(sink.events)-1].kind)
		final := sink.events[len(sink.events)-2]
		assert.Equal(t, "add", final.kind)
		assert.Equal(t, Green, final.color)
	}
}

func TestComputeHull_InstrumentedSteps(t *testing.T) {
	points := []*Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {1, 1}}
	sink := &recordingSink{}
	_, err := computeHull(points, Config{Instrumented: true, Sink: sink})
	require.NoError(t, err)

	// Skip probes, which are erased as soon as they are shown
	var colors []Color
	for i, event := range sink.events {
		if event.kind != "add" {
			continue
		}
		if i+1 < len(sink.events) {
			next := sink.events[i+1]
			if next.kind == "clear" && assert.ObjectsAreEqual(event.lines, next.lines) {
				continue
			}
		}
		colors = append(colors, event.color)
	}
	// Both partial hulls, then both merge chains, then the result
	assert.Equal(t, []Color{Blue, Blue, Red, Red, Green}, colors)
}

func TestComputeHull_InstrumentedCanvas(t *testing.T) {
	points := RandomCloud(9, 100, 10)
	canvas := NewCanvas(points, 10)
	result, err := computeHull(points, Config{Instrumented: true, Sink: canvas})
	require.NoError(t, err)

	// Only the final hull is left on the canvas
	require.Equal(t, 1, canvas.LayerCount())
	assert.Equal(t, result.Hull.Segments(), canvas.layers[0].lines)
	assert.Contains(t, canvas.Status(), "Time Elapsed")
}

// Convex hulls of 2D point sets.
//
// The hull is built by sorting the points, reducing each half of the sorted
// set to a partial hull around its leftmost point, and merging the two partial
// hulls with a monotone chain scan. The result is the list of input points on
// the hull boundary, counterclockwise by default, starting from the point with
// the smallest (x, y).
//
// Optionally, every step can be sent to a VisualizationSink for display. See
// Config.
package convexhull

import "github.com/osuushi/convexhull/internal"

type Point = internal.Point
type Segment = internal.Segment
type Hull = internal.Hull
type Color = internal.Color
type Config = internal.Config
type Result = internal.Result
type VisualizationSink = internal.VisualizationSink

var (
	Red   = internal.Red
	Green = internal.Green
	Blue  = internal.Blue
)

// Wrapped by every error caused by unusable input: no points, nil points, or
// non-finite coordinates.
var ErrInvalidInput = internal.ErrInvalidInput

const DefaultPause = internal.DefaultPause

// Compute the hull of the points, along with how long sorting and building
// took. The points themselves are never modified, and the hull is made of the
// same pointers. Of several equal points, only one appears in the hull.
func ComputeHull(points []*Point, config Config) (result *Result, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ComputeHull(points, config), nil
}

// Shorthand for ComputeHull without a sink, returning just the hull points.
func ConvexHull(points ...*Point) ([]*Point, error) {
	result, err := ComputeHull(points, Config{})
	if err != nil {
		return nil, err
	}
	return result.Hull.Points, nil
}

// Positive when c is left of the directed line a->b, negative when it is
// right, zero when the points are collinear.
func CrossProduct(a, b, c *Point) float64 {
	return internal.CrossProduct(a, b, c)
}

// Slope from origin to point, or positive infinity when the line is vertical.
func SlopeFrom(origin, point *Point) float64 {
	return internal.SlopeFrom(origin, point)
}

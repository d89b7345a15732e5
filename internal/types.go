package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// All points handled by the builder are pointers to the caller's points, and
// the hull is made of those same pointers. A point value is never modified.
type Segment struct {
	Start *Point
	End   *Point
}

// A hull is an implicitly closed polygon boundary. The last point connects
// back to the first.
type Hull struct {
	Points []*Point
}

type PointStack []*Point

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

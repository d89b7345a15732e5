package internal

import "math"

// Relative slack for sanity checks on finished hulls. Hull membership itself
// is decided by the exact sign of CrossProduct.
const Tolerance = 1e-9

// Signed cross product of (b-a) and (c-a). Positive means c is left of the
// directed line a->b (a counterclockwise turn), negative means it is to the
// right, and zero means the three points are collinear.
func CrossProduct(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Slope of the line from origin to point. Vertical lines give positive
// infinity, and so does a point coincident with the origin.
func SlopeFrom(origin, point *Point) float64 {
	if origin.X == point.X {
		return math.Inf(1)
	}
	return (point.Y - origin.Y) / (point.X - origin.X)
}

// Lexicographic ordering, x first, then y. This is the order used everywhere
// points are sorted by coordinate.
func (p *Point) Less(other *Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Coordinate equality. Distinct pointers may be equal points.
func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p *Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The point just below the top of the stack, or nil if there is none.
func (s *PointStack) PeekSecond() *Point {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

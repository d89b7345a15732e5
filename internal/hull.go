package internal

// Closed list of edges, in traversal order. A single point hull has no edges,
// and a two point hull has the segment in both directions.
func (h Hull) Segments() []Segment {
	n := len(h.Points)
	if n < 2 {
		return nil
	}
	segments := make([]Segment, 0, n)
	for i, p := range h.Points {
		segments = append(segments, Segment{p, h.Points[CircularIndex(i+1, n)]})
	}
	return segments
}

// Shoelace area. Positive for counterclockwise hulls.
func (h Hull) SignedArea() float64 {
	var sum float64
	n := len(h.Points)
	for i, p := range h.Points {
		next := h.Points[CircularIndex(i+1, n)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func (h Hull) Area() float64 {
	area := h.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (h Hull) IsCCW() bool {
	return h.SignedArea() > 0
}

// Non-strict containment: points on the boundary are contained. The hull must
// wind counterclockwise. Degenerate hulls only contain points on them.
func (h Hull) ContainsPoint(p *Point) bool {
	switch len(h.Points) {
	case 0:
		return false
	case 1:
		return h.Points[0].Equals(p)
	case 2:
		a, b := h.Points[0], h.Points[1]
		if CrossProduct(a, b, p) != 0 {
			return false
		}
		return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
			p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
	}

	for _, segment := range h.Segments() {
		if CrossProduct(segment.Start, segment.End, p) < 0 {
			return false
		}
	}
	return true
}

func (h Hull) Reverse() Hull {
	reversed := Hull{Points: make([]*Point, 0, len(h.Points))}
	for i := len(h.Points) - 1; i >= 0; i-- {
		reversed.Points = append(reversed.Points, h.Points[i])
	}
	return reversed
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

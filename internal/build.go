package internal

import (
	"math"
	"sort"
)

// Hull construction. The points are sorted and split once into a left and
// right half. Each half is scanned into a partial hull around its leftmost
// point, and the union of the two partial hulls is then scanned again, in
// coordinate order, into the final hull.
//
// Note that the split is not recursive, and the partial hulls are not joined
// by tangents. The merge simply re-derives the hull from the surviving
// candidates, so the halves only serve to thin out interior points first.

// Build the hull of a set of points, without instrumentation.
func BuildHull(points []*Point) Hull {
	return buildSortedHull(SortPoints(points), nil)
}

// Copy the points, sort them by (x, y), and drop coordinate duplicates. The
// first pointer of each run of equal points is the one kept.
func SortPoints(points []*Point) []*Point {
	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	unique := sorted[:0]
	for _, p := range sorted {
		if len(unique) > 0 && unique[len(unique)-1].Equals(p) {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}

// Takes distinct points in (x, y) order.
func buildSortedHull(sorted []*Point, in *instrument) Hull {
	if len(sorted) < 2 {
		return Hull{Points: append([]*Point(nil), sorted...)}
	}

	mid := len(sorted) / 2
	left := reduceHalf(sorted[:mid], in)
	right := reduceHalf(sorted[mid:], in)

	hull := mergeHalves(left, right, in)
	checkConvex(hull)
	return hull
}

// Reduce one half to its partial hull. The first point is the anchor; the rest
// are scanned in order of slope from it.
func reduceHalf(half []*Point, in *instrument) []*Point {
	if len(half) == 0 {
		return nil
	}
	anchor := half[0]
	ordered := make([]*Point, 0, len(half))
	ordered = append(ordered, anchor)
	ordered = append(ordered, half[1:]...)
	rest := ordered[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		a, b := SlopeFrom(anchor, rest[i]), SlopeFrom(anchor, rest[j])
		if a == b {
			return rest[i].Less(rest[j])
		}
		return a < b
	})
	return reduceToChain(ordered, clockwiseTurn, in)
}

// Merge the partial hulls by running the monotone chain over their union,
// forward for the bottom chain and backward for the top chain.
func mergeHalves(left, right []*Point, in *instrument) Hull {
	leftLines := in.showChain(left, Blue)
	rightLines := in.showChain(right, Blue)

	candidates := make([]*Point, 0, len(left)+len(right))
	candidates = append(candidates, left...)
	candidates = append(candidates, right...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})

	forward := reduceToChain(candidates, clockwiseOrCollinearTurn, in)
	forwardLines := in.showChain(forward, Red)

	reversed := make([]*Point, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		reversed = append(reversed, candidates[i])
	}
	backward := reduceToChain(reversed, clockwiseOrCollinearTurn, in)
	backwardLines := in.showChain(backward, Red)

	// Each chain ends where the other one starts
	points := make([]*Point, 0, len(forward)+len(backward)-2)
	points = append(points, forward[:len(forward)-1]...)
	points = append(points, backward[:len(backward)-1]...)

	for _, lines := range [][]Segment{leftLines, rightLines, forwardLines, backwardLines} {
		in.eraseChain(lines)
	}
	return Hull{Points: points}
}

// No consecutive triple of a finished hull may turn right. A right turn is a
// bug in the builder, not bad input. The tolerance is relative to the edge
// lengths so that rounding at the chain junctions is not reported.
func checkConvex(hull Hull) {
	n := len(hull.Points)
	if n < 3 {
		return
	}
	for i, p := range hull.Points {
		next := hull.Points[CircularIndex(i+1, n)]
		after := hull.Points[CircularIndex(i+2, n)]
		scale := math.Hypot(next.X-p.X, next.Y-p.Y) * math.Hypot(after.X-p.X, after.Y-p.Y)
		if CrossProduct(p, next, after) < -Tolerance*scale {
			fatalf("hull is not convex at %s", next)
		}
	}
}

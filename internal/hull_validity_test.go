package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is the convex hull of the points. The rules are:
// 1. Every hull point is one of the input pointers.
// 2. No two hull points are equal.
// 3. Every consecutive triple (cyclically) turns strictly left, so every hull
// point is a vertex.
// 4. Every input point is on or to the left of every hull edge.
//
// Since the hull's vertices are input points and it contains every input
// point, it is the convex hull, and by 3 it holds exactly its vertices.
func AssertValidHull(t *testing.T, points []*Point, hull Hull) {
	t.Helper()

	inputs := make(map[*Point]struct{}, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
	}
	for _, p := range hull.Points {
		_, ok := inputs[p]
		require.True(t, ok, "hull point %s is not an input point", p)
	}

	for i, p := range hull.Points {
		for _, q := range hull.Points[i+1:] {
			require.False(t, p.Equals(q), "hull point %s appears more than once", p)
		}
	}

	n := len(hull.Points)
	require.NotZero(t, n, "hull is empty")
	if n >= 3 {
		for i, p := range hull.Points {
			next := hull.Points[CircularIndex(i+1, n)]
			after := hull.Points[CircularIndex(i+2, n)]
			require.Greater(t, CrossProduct(p, next, after), 0.0, "hull is not strictly convex at %s", next)
		}
	}

	for _, p := range points {
		require.True(t, hull.ContainsPoint(p), "point %s is outside the hull", p)
	}
}

// Hulls start at their smallest point, so two hulls of the same points are
// equal as cyclic sequences iff their coordinates are equal in order.
func requireSameHull(t *testing.T, expected, actual Hull) {
	t.Helper()
	require.Equal(t, len(expected.Points), len(actual.Points), "hull sizes differ")
	for i := range expected.Points {
		require.True(t, expected.Points[i].Equals(actual.Points[i]),
			"hulls differ at %d: %s != %s", i, expected.Points[i], actual.Points[i])
	}
}

func coordinates(points []*Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, *p)
	}
	return result
}

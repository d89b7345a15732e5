package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG whose circle centers and polygon vertices make up the point
// set. If anything goes wrong, it panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ParseSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc fixtures

// Points evenly spaced on a circle, with every other point pulled in so that
// half of them are interior.
func Star(n int, outerRadius, innerRadius float64) []*Point {
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
	}
	return points
}

// A square grid of points. Only the four corners are hull vertices, and every
// other edge point is collinear with them.
func Grid(size int) []*Point {
	var points []*Point
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			points = append(points, &Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// Uniformly random points in a square. The seed makes failures reproducible.
func RandomCloud(seed int64, n int, size float64) []*Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, &Point{X: rng.Float64() * size, Y: rng.Float64() * size})
	}
	return points
}

// Random points snapped to a small integer lattice, so there are plenty of
// duplicates, shared x values and collinear runs.
func RandomLattice(seed int64, n int, size int) []*Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, &Point{X: float64(rng.Intn(size)), Y: float64(rng.Intn(size))})
	}
	return points
}

// Copy of the points in a random order
func Shuffled(seed int64, points []*Point) []*Point {
	rng := rand.New(rand.NewSource(seed))
	result := make([]*Point, len(points))
	copy(result, points)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

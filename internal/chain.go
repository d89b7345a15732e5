package internal

// Facilities for reducing an ordered run of points to a one-sided boundary
// chain. This is the usual monotone chain stack scan: every incoming point
// pops the top of the stack for as long as the top two points and the
// incoming point fail to make a left turn, and is then pushed.
//
// The turn test is the only thing that differs between the per-half scan and
// the final merge scans, so it is passed in.

// Decides from a cross product whether the top of the stack must go.
type popRule func(cross float64) bool

// Pops only on a strict clockwise turn. Collinear points survive.
func clockwiseTurn(cross float64) bool {
	return cross < 0
}

// Pops on clockwise and collinear turns, leaving only strict vertices.
func clockwiseOrCollinearTurn(cross float64) bool {
	return cross <= 0
}

// Reduce points (anchor first, then the rest in scan order) to a partial hull,
// keeping collinear points. Empty and single point input come back unchanged.
func ReduceToChain(points []*Point) []*Point {
	return reduceToChain(points, clockwiseTurn, nil)
}

func reduceToChain(points []*Point, shouldPop popRule, in *instrument) []*Point {
	stack := make(PointStack, 0, len(points))
	for _, p := range points {
		for len(stack) >= 2 {
			top := stack.Peek()
			if !shouldPop(CrossProduct(stack.PeekSecond(), top, p)) {
				break
			}
			// Show the probe that knocked the point off the chain
			in.blinkTangent(Segment{top, p}, Red)
			stack.Pop()
		}
		stack.Push(p)
	}
	return stack
}

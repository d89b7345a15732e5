package internal

import "time"

type Color struct {
	R, G, B uint8
}

var (
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "custom"
}

// A VisualizationSink receives geometry the builder has already computed, for
// display. The builder never reads anything back from it.
type VisualizationSink interface {
	// Draw a polygon or a single probe segment
	AddLines(lines []Segment, color Color)
	// Erase lines previously passed to AddLines
	ClearLines(lines []Segment)
	DisplayStatusText(text string)
}

// Fan out to several sinks in order.
type MultiSink []VisualizationSink

func (m MultiSink) AddLines(lines []Segment, color Color) {
	for _, sink := range m {
		sink.AddLines(lines, color)
	}
}

func (m MultiSink) ClearLines(lines []Segment) {
	for _, sink := range m {
		sink.ClearLines(lines)
	}
}

func (m MultiSink) DisplayStatusText(text string) {
	for _, sink := range m {
		sink.DisplayStatusText(text)
	}
}

// The instrumentation side of the builder. A nil sink turns every call into a
// no-op, and only an instrumented sink sees intermediate steps.
type instrument struct {
	sink         VisualizationSink
	instrumented bool
	pause        time.Duration
}

func (in *instrument) step() bool {
	return in != nil && in.instrumented && in.sink != nil
}

func (in *instrument) wait() {
	if in.pause > 0 {
		time.Sleep(in.pause)
	}
}

func (in *instrument) showTangent(line Segment, color Color) {
	if !in.step() {
		return
	}
	in.sink.AddLines([]Segment{line}, color)
	in.wait()
}

func (in *instrument) eraseTangent(line Segment) {
	if !in.step() {
		return
	}
	in.sink.ClearLines([]Segment{line})
}

func (in *instrument) blinkTangent(line Segment, color Color) {
	in.showTangent(line, color)
	in.eraseTangent(line)
}

// Intermediate hulls are given as open chains, so they are drawn without the
// closing edge.
func (in *instrument) showChain(points []*Point, color Color) []Segment {
	if !in.step() {
		return nil
	}
	lines := chainSegments(points)
	if len(lines) == 0 {
		return nil
	}
	in.sink.AddLines(lines, color)
	in.wait()
	return lines
}

func (in *instrument) eraseChain(lines []Segment) {
	if !in.step() || len(lines) == 0 {
		return
	}
	in.sink.ClearLines(lines)
}

// The final hull and the status text go to any sink, instrumented or not.
func (in *instrument) showHull(hull Hull, color Color) {
	if in == nil || in.sink == nil {
		return
	}
	in.sink.AddLines(hull.Segments(), color)
	if in.instrumented {
		in.wait()
	}
}

func (in *instrument) showText(text string) {
	if in == nil || in.sink == nil {
		return
	}
	in.sink.DisplayStatusText(text)
}

func chainSegments(points []*Point) []Segment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, Segment{points[i-1], points[i]})
	}
	return segments
}

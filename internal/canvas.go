package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexhull/dbg"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const canvasPadding = 40

type canvasLayer struct {
	lines []Segment
	color Color
}

// A Canvas is a VisualizationSink that remembers what is currently drawn and
// renders it to an image on demand.
type Canvas struct {
	// Scale from point units to pixels
	Scale float64
	// Label every point with its debug name
	Labels bool

	points []*Point
	layers []canvasLayer
	status string
}

func NewCanvas(points []*Point, scale float64) *Canvas {
	return &Canvas{Scale: scale, points: points}
}

func (c *Canvas) AddLines(lines []Segment, color Color) {
	c.layers = append(c.layers, canvasLayer{lines: lines, color: color})
}

// Removes the most recent layer with exactly these lines. Unknown lines are
// ignored.
func (c *Canvas) ClearLines(lines []Segment) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if sameLines(c.layers[i].lines, lines) {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

func (c *Canvas) DisplayStatusText(text string) {
	c.status = text
}

func (c *Canvas) Status() string {
	return c.status
}

// Number of line layers currently drawn
func (c *Canvas) LayerCount() int {
	return len(c.layers)
}

func (c *Canvas) Render() *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p *Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range c.points {
		extend(p)
	}
	for _, layer := range c.layers {
		for _, line := range layer.lines {
			extend(line.Start)
			extend(line.End)
		}
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + canvasPadding*2
	height := int(scale*(maxY-minY)) + canvasPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)

	// Translate for padding
	ctx.Translate(canvasPadding, canvasPadding)
	// Scale
	ctx.Scale(scale, scale)
	// Translate to min
	ctx.Translate(-minX, -minY)

	ctx.SetLineWidth(2)
	for _, layer := range c.layers {
		for _, line := range layer.lines {
			ctx.MoveTo(line.Start.X, line.Start.Y)
			ctx.LineTo(line.End.X, line.End.Y)
		}
		ctx.SetRGB255(int(layer.color.R), int(layer.color.G), int(layer.color.B))
		ctx.Stroke()
	}

	// Points and text are drawn in pixel space, so they don't scale or flip
	type marker struct {
		x, y float64
		name string
	}
	markers := make([]marker, 0, len(c.points))
	for _, p := range c.points {
		x, y := ctx.TransformPoint(p.X, p.Y)
		m := marker{x: x, y: y}
		if c.Labels {
			m.name = dbg.Name(p)
		}
		markers = append(markers, m)
	}

	ctx.Push()
	ctx.Identity()
	ctx.SetRGB(1, 1, 1)
	for _, m := range markers {
		ctx.DrawCircle(m.x, m.y, 2.5)
		ctx.Fill()
		if c.Labels {
			ctx.DrawStringAnchored(m.name, m.x+4, m.y-4, 0, 0)
		}
	}
	if c.status != "" {
		ctx.DrawStringAnchored(c.status, 8, 8, 0, 1)
	}
	ctx.Pop()

	return ctx
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.Render().SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save canvas to %q", path)
	}
	return nil
}

// Print the canvas to the terminal (iTerm only).
func (c *Canvas) Cat(path string) error {
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func sameLines(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Start.Equals(b[i].Start) || !a[i].End.Equals(b[i].End) {
			return false
		}
	}
	return true
}

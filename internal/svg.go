package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Reads a point cloud out of an SVG document. This is not a full (or even
// correct) svg reader. Every <circle> contributes its center, and every
// <polygon> contributes all of its points. Coordinates are taken as written,
// so the y axis points down compared to the image.
func ParseSVGPoints(r io.Reader) ([]*Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	var points []*Point
	for _, circleEl := range rootEl.FindAll("circle") {
		x, err := parseCoordinate(circleEl.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cx")
		}
		y, err := parseCoordinate(circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cy")
		}
		points = append(points, &Point{x, y})
	}

	for _, polygonEl := range rootEl.FindAll("polygon") {
		polygonPoints, err := parsePointList(polygonEl.Attributes["points"])
		if err != nil {
			return nil, err
		}
		points = append(points, polygonPoints...)
	}

	if len(points) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no circles or polygons found in svg")
	}
	return points, nil
}

// Parse an svg point list, "x1,y1 x2,y2 ...". Commas and whitespace are
// interchangeable separators.
func parsePointList(pointString string) ([]*Point, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "odd number of coordinates in point list %q", pointString)
	}

	points := make([]*Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, errors.Wrap(err, "invalid x value")
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, errors.Wrap(err, "invalid y value")
		}
		points = append(points, &Point{x, y})
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%q is not a number", s)
	}
	return v, nil
}

package internal

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
	"github.com/sirupsen/logrus"
)

// A VisualizationSink that writes every event to a logger. Line events are
// logged at debug level, status text at info level.
type LogSink struct {
	Logger logrus.FieldLogger
	// Name points with readable debug names instead of coordinates
	Names bool
}

func NewLogSink(logger logrus.FieldLogger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) AddLines(lines []Segment, color Color) {
	s.Logger.WithFields(logrus.Fields{
		"color": colorTag(color),
		"lines": s.describe(lines),
	}).Debug("show lines")
}

func (s *LogSink) ClearLines(lines []Segment) {
	s.Logger.WithField("lines", s.describe(lines)).Debug("erase lines")
}

func (s *LogSink) DisplayStatusText(text string) {
	s.Logger.Info(text)
}

func (s *LogSink) describe(lines []Segment) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if s.Names {
			parts = append(parts, dbg.Name(line.Start)+"-"+dbg.Name(line.End))
		} else {
			parts = append(parts, line.String())
		}
	}
	return strings.Join(parts, " ")
}

func colorTag(color Color) string {
	switch color {
	case Red:
		return aurora.Red(color.String()).String()
	case Green:
		return aurora.Green(color.String()).String()
	case Blue:
		return aurora.Blue(color.String()).String()
	}
	return aurora.Bold(color.String()).String()
}

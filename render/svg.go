package render

import (
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"
)

// fullSweepEps decides when an arc's angular span counts as a whole
// circle and is emitted as a <circle> element instead of a path.
const fullSweepEps = 1e-9

// SVGSurface is a Surface serializing strokes as an SVG document.
// Clear starts the document, Close ends it; strokes in between are
// emitted in call order. Write errors are sticky: the first one is
// kept and returned by Close, later output is suppressed.
type SVGSurface struct {
	w       io.Writer
	viewBox geom.Rect
	style   string
	err     error
}

// NewSVGSurface returns a surface writing to w with the given viewBox.
func NewSVGSurface(w io.Writer, viewBox geom.Rect) *SVGSurface {
	return &SVGSurface{w: w, viewBox: viewBox, style: "stroke:black;stroke-width:1;fill:none"}
}

func (s *SVGSurface) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// Clear implements Surface: it opens the SVG document.
func (s *SVGSurface) Clear() {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, s.viewBox.Min.X, s.viewBox.Min.Y, s.viewBox.Width(), s.viewBox.Height())
}

// Close ends the document and reports the first write error, if any.
func (s *SVGSurface) Close() error {
	s.printf("</svg>\n")
	return s.err
}

// SetStroke implements Surface.
func (s *SVGSurface) SetStroke(color string, width float64) {
	s.style = fmt.Sprintf("stroke:%s;stroke-width:%f;fill:none", color, width)
}

// StrokeArc implements Surface. A sweep covering the whole turn is
// emitted as a circle; anything shorter becomes a single A-command
// path with the large-arc flag chosen from the span.
func (s *SVGSurface) StrokeArc(center geom.Coord, radius, start, end float64) {
	sweep := math.Mod(end-start, 2*math.Pi)
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if sweep >= 2*math.Pi-fullSweepEps {
		s.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n",
			center.X, center.Y, radius, s.style)
		return
	}

	p1 := geom.Coord{X: center.X + radius*math.Cos(start), Y: center.Y + radius*math.Sin(start)}
	p2 := geom.Coord{X: center.X + radius*math.Cos(end), Y: center.Y + radius*math.Sin(end)}
	large := "0"
	if sweep > math.Pi {
		large = "1"
	}
	s.printf("<path d='M%f,%f A%f,%f 0 %s,1 %f,%f' style='%s'/>\n",
		p1.X, p1.Y, radius, radius, large, p2.X, p2.Y, s.style)
}

// StrokeLine implements Surface.
func (s *SVGSurface) StrokeLine(p1, p2 geom.Coord) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='%s'/>\n",
		p1.X, p1.Y, p2.X, p2.Y, s.style)
}

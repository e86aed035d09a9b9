// Package rendertest provides a [render.Surface] that records drawing
// calls, for testing code that draws.
package rendertest

import (
	"image/color"
	"slices"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
)

// Op is one finished drawing operation: a stroke, a fill or a text label.
type Op struct {
	// Kind is "stroke", "fill" or "text".
	Kind  string
	Color color.Color
	// Width and Dash are the stroke parameters in user units.
	Width float64
	Dash  []float64
	// Path holds the path elements in device space.
	Path []patternkit.PathElement
	// Text, At and Size describe a label. At is in device space, Size in
	// user units.
	Text string
	At   patternkit.Point
	Size float64
	// Scale is the uniform scale of the transform in effect.
	Scale float64
}

type state struct {
	aff   patternkit.Affine
	color color.Color
	width float64
	dash  []float64
}

// Recorder is a [render.Surface] that keeps every stroke, fill and label
// together with the paint in effect.
type Recorder struct {
	Ops []Op

	cur   state
	stack []state
	path  []patternkit.PathElement
}

var _ render.Surface = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{cur: state{aff: patternkit.Identity, color: color.Black, width: 1}}
}

// Reset drops all recorded operations and restores the initial state.
func (r *Recorder) Reset() {
	*r = *New()
}

func (r *Recorder) Push() {
	saved := r.cur
	saved.dash = slices.Clone(r.cur.dash)
	r.stack = append(r.stack, saved)
}

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Depth returns the number of unbalanced Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Transform(aff patternkit.Affine) { r.cur.aff = r.cur.aff.Mul(aff) }
func (r *Recorder) SetColor(c color.Color)          { r.cur.color = c }
func (r *Recorder) SetLineWidth(w float64)          { r.cur.width = w }
func (r *Recorder) SetDash(lengths ...float64)      { r.cur.dash = slices.Clone(lengths) }

func (r *Recorder) push(el patternkit.PathElement) {
	r.path = append(r.path, el.Transform(r.cur.aff))
}

func (r *Recorder) MoveTo(p patternkit.Point)          { r.push(patternkit.MoveTo(p)) }
func (r *Recorder) LineTo(p patternkit.Point)          { r.push(patternkit.LineTo(p)) }
func (r *Recorder) QuadTo(c, p patternkit.Point)       { r.push(patternkit.QuadTo(c, p)) }
func (r *Recorder) CubicTo(c1, c2, p patternkit.Point) { r.push(patternkit.CubicTo(c1, c2, p)) }
func (r *Recorder) ClosePath()                         { r.push(patternkit.ClosePath()) }

func (r *Recorder) finish(kind string) {
	r.Ops = append(r.Ops, Op{
		Kind:  kind,
		Color: r.cur.color,
		Width: r.cur.width,
		Dash:  slices.Clone(r.cur.dash),
		Path:  r.path,
		Scale: r.cur.aff.LinearScale(),
	})
	r.path = nil
}

func (r *Recorder) Stroke() { r.finish("stroke") }
func (r *Recorder) Fill()   { r.finish("fill") }

func (r *Recorder) Text(s string, at patternkit.Point, size, ax, ay float64) {
	r.Ops = append(r.Ops, Op{
		Kind:  "text",
		Color: r.cur.color,
		Text:  s,
		At:    at.Transform(r.cur.aff),
		Size:  size,
		Scale: r.cur.aff.LinearScale(),
	})
}

// MeasureText assumes every glyph is 0.6 em wide and 1.2 em tall.
func (r *Recorder) MeasureText(s string, size float64) (w, h float64) {
	return 0.6 * size * float64(len([]rune(s))), 1.2 * size
}

// Texts returns the recorded labels in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the recorded operations of the given kind and color.
func (r *Recorder) Filter(kind string, c color.Color) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind && op.Color == c {
			out = append(out, op)
		}
	}
	return out
}

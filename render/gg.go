package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/patternkit/patternkit"
	"golang.org/x/image/font/gofont/goregular"
)

// Option configures a [GGSurface].
type Option func(*options)

type options struct {
	font       []byte
	background color.Color
}

func defaultOptions() options {
	return options{
		font:       goregular.TTF,
		background: Background,
	}
}

// WithFont sets the TrueType or OpenType font used for labels. The default
// is Go Regular.
func WithFont(ttf []byte) Option {
	return func(o *options) {
		o.font = ttf
	}
}

// WithBackground sets the color [GGSurface.Clear] paints.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

type paint struct {
	color color.Color
	width float64
	dash  []float64
}

type state struct {
	aff   patternkit.Affine
	paint paint
}

// GGSurface is a [Surface] backed by a gg raster context.
//
// The context's own matrix stays at identity. GGSurface maps every
// coordinate, line width, dash length and font size through its current
// transform itself, so strokes and labels come out with the same size at
// any zoom as long as callers scale them by 1/zoom.
type GGSurface struct {
	dc         *gg.Context
	font       *text.FontSource
	faces      map[float64]text.Face
	background color.Color

	cur   state
	stack []state
}

// NewGGSurface returns a w×h pixel surface.
func NewGGSurface(w, h int, opts ...Option) (*GGSurface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	src, err := text.NewFontSource(o.font)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	return &GGSurface{
		dc:         gg.NewContext(w, h),
		font:       src,
		faces:      make(map[float64]text.Face),
		background: o.background,
		cur: state{
			aff:   patternkit.Identity,
			paint: paint{color: color.Black, width: 1},
		},
	}, nil
}

func (s *GGSurface) Width() int         { return s.dc.Width() }
func (s *GGSurface) Height() int        { return s.dc.Height() }
func (s *GGSurface) Image() image.Image { return s.dc.Image() }

// Clear resets the transform and paints the whole surface with the
// background color.
func (s *GGSurface) Clear() {
	s.cur.aff = patternkit.Identity
	s.stack = s.stack[:0]
	s.dc.ClearPath()
	s.dc.ClearWithColor(gg.FromColor(s.background))
}

func (s *GGSurface) Push() {
	saved := s.cur
	saved.paint.dash = slices.Clone(s.cur.paint.dash)
	s.stack = append(s.stack, saved)
}

func (s *GGSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *GGSurface) Transform(aff patternkit.Affine) {
	s.cur.aff = s.cur.aff.Mul(aff)
}

func (s *GGSurface) SetColor(c color.Color) { s.cur.paint.color = c }
func (s *GGSurface) SetLineWidth(w float64) { s.cur.paint.width = w }

func (s *GGSurface) SetDash(lengths ...float64) {
	s.cur.paint.dash = slices.Clone(lengths)
}

func (s *GGSurface) device(p patternkit.Point) (float64, float64) {
	p = p.Transform(s.cur.aff)
	return p.X, p.Y
}

func (s *GGSurface) MoveTo(p patternkit.Point) {
	s.dc.MoveTo(s.device(p))
}

func (s *GGSurface) LineTo(p patternkit.Point) {
	s.dc.LineTo(s.device(p))
}

func (s *GGSurface) QuadTo(c, p patternkit.Point) {
	cx, cy := s.device(c)
	x, y := s.device(p)
	s.dc.QuadraticTo(cx, cy, x, y)
}

func (s *GGSurface) CubicTo(c1, c2, p patternkit.Point) {
	c1x, c1y := s.device(c1)
	c2x, c2y := s.device(c2)
	x, y := s.device(p)
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (s *GGSurface) ClosePath() { s.dc.ClosePath() }

func (s *GGSurface) Stroke() {
	scale := s.cur.aff.LinearScale()
	s.dc.SetColor(s.cur.paint.color)
	s.dc.SetLineWidth(s.cur.paint.width * scale)
	if len(s.cur.paint.dash) > 0 {
		dash := make([]float64, len(s.cur.paint.dash))
		for i, d := range s.cur.paint.dash {
			dash[i] = d * scale
		}
		s.dc.SetDash(dash...)
	} else {
		s.dc.ClearDash()
	}
	if err := s.dc.Stroke(); err != nil {
		patternkit.Logger().Warn("stroke failed", "err", err)
	}
}

func (s *GGSurface) Fill() {
	s.dc.SetColor(s.cur.paint.color)
	if err := s.dc.Fill(); err != nil {
		patternkit.Logger().Warn("fill failed", "err", err)
	}
}

// face returns the label face for a device pixel size. Sizes are rounded to
// a quarter pixel to bound the cache while zooming.
func (s *GGSurface) face(px float64) text.Face {
	px = math.Max(1, math.Round(px*4)/4)
	f, ok := s.faces[px]
	if !ok {
		f = s.font.Face(px)
		s.faces[px] = f
	}
	return f
}

func (s *GGSurface) Text(str string, at patternkit.Point, size, ax, ay float64) {
	if str == "" {
		return
	}
	s.dc.SetFont(s.face(size * s.cur.aff.LinearScale()))
	s.dc.SetColor(s.cur.paint.color)
	x, y := s.device(at)
	// gg anchors vertically on the baseline: ay=1 puts the top at y.
	s.dc.DrawStringAnchored(str, x, y, ax, 1-ay)
}

func (s *GGSurface) MeasureText(str string, size float64) (w, h float64) {
	scale := s.cur.aff.LinearScale()
	if scale == 0 {
		return 0, 0
	}
	s.dc.SetFont(s.face(size * scale))
	w, h = s.dc.MeasureString(str)
	return w / scale, h / scale
}

// SavePNG writes the surface to a PNG file.
func (s *GGSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// EncodePNG writes the surface as PNG to w.
func (s *GGSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the raster context and the label font.
func (s *GGSurface) Close() error {
	err := s.dc.Close()
	if ferr := s.font.Close(); err == nil {
		err = ferr
	}
	return err
}

// Package session ties a piece store, a camera and the active tool into one
// editing session. It routes pointer and keyboard input to the active tool,
// pans and zooms the camera, and renders frames.
//
// A Session is not safe for concurrent use. Input and rendering are meant
// to run on one goroutine, one event at a time.
package session

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/tool"
	"github.com/patternkit/patternkit/viewport"
)

// Modifiers are the modifier keys held during a pointer event.
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
}

// snapToggleKey toggles grid snapping when shortcuts are enabled.
const snapToggleKey = "."

// Session is one editing session over a Store.
type Session struct {
	store    Store
	registry *tool.Registry
	factory  patternkit.Factory
	opts     options

	camera   viewport.Camera
	selected []string
	hovered  string
	snap     bool
	rulers   bool
	active   tool.Tool

	spaceHeld bool
	panning   bool
	panLast   patternkit.Point

	cursor    patternkit.Point
	hasCursor bool

	zoomTimer *time.Timer
}

var _ tool.Context = (*Session)(nil)

// New returns a session editing the pieces in store.
func New(store Store, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = tool.DefaultRegistry()
	}
	s := &Session{
		store:    store,
		registry: o.registry,
		opts:     o,
		camera:   o.camera,
		snap:     o.snap,
		rulers:   o.rulers,
	}
	t, err := s.registry.New(o.initial, s)
	if err != nil {
		return nil, fmt.Errorf("initial tool: %w", err)
	}
	s.active = t
	return s, nil
}

// Close stops a pending zoom notification and discards the active tool's
// draft.
func (s *Session) Close() {
	if s.zoomTimer != nil {
		s.zoomTimer.Stop()
		s.zoomTimer = nil
	}
	s.active.Cleanup()
}

func (s *Session) Camera() viewport.Camera      { return s.camera }
func (s *Session) Pieces() []patternkit.Piece   { return s.store.Pieces() }
func (s *Session) SelectedIDs() []string        { return s.selected }
func (s *Session) IsSelected(id string) bool    { return slices.Contains(s.selected, id) }
func (s *Session) HoveredID() string            { return s.hovered }
func (s *Session) SnapEnabled() bool            { return s.snap }
func (s *Session) Factory() *patternkit.Factory { return &s.factory }
func (s *Session) SetHovered(id string)         { s.hovered = id }
func (s *Session) ActiveTool() tool.Tool        { return s.active }
func (s *Session) RulersVisible() bool          { return s.rulers }
func (s *Session) SetRulers(visible bool)       { s.rulers = visible }
func (s *Session) SetSnap(enabled bool)         { s.snap = enabled }
func (s *Session) ZoomPercent() int             { return s.camera.PercentZoom() }

// ScreenToWorld converts a screen position with the current camera.
func (s *Session) ScreenToWorld(p patternkit.Point) patternkit.Point {
	return s.camera.ScreenToWorld(p.X, p.Y)
}

// SetCamera replaces the camera, clamping its zoom.
func (s *Session) SetCamera(c viewport.Camera) {
	c = c.Clamp()
	zoomed := c.Zoom != s.camera.Zoom
	s.camera = c
	if zoomed {
		s.notifyZoom()
	}
}

// ToggleSnap flips grid snapping and returns the new state.
func (s *Session) ToggleSnap() bool {
	s.snap = !s.snap
	return s.snap
}

// CursorWorld returns the world position of the pointer rounded to a tenth
// of a millimetre, as shown in a status bar. ok is false before the first
// pointer event.
func (s *Session) CursorWorld() (p patternkit.Point, ok bool) {
	if !s.hasCursor {
		return patternkit.Point{}, false
	}
	w := s.camera.ScreenToWorld(s.cursor.X, s.cursor.Y)
	return patternkit.Pt(math.Round(w.X*10)/10, math.Round(w.Y*10)/10), true
}

func (s *Session) CreatePiece(p patternkit.Piece) {
	patternkit.Logger().Debug("store create", "id", p.ID, "name", p.Name)
	if err := s.store.Create(p); err != nil {
		patternkit.Logger().Warn("creating piece", "id", p.ID, "err", err)
	}
}

func (s *Session) UpdatePiece(id string, p patternkit.Piece) {
	patternkit.Logger().Debug("store update", "id", id)
	if err := s.store.Update(id, p); err != nil {
		patternkit.Logger().Warn("updating piece", "id", id, "err", err)
	}
}

func (s *Session) DeletePiece(id string) {
	patternkit.Logger().Debug("store delete", "id", id)
	if err := s.store.Delete(id); err != nil {
		patternkit.Logger().Warn("deleting piece", "id", id, "err", err)
	}
	s.selected = slices.DeleteFunc(s.selected, func(sel string) bool { return sel == id })
	if s.hovered == id {
		s.hovered = ""
	}
}

func (s *Session) SelectPiece(id string) {
	s.selected = []string{id}
}

func (s *Session) TogglePiece(id string) {
	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return
	}
	s.selected = append(s.selected, id)
}

func (s *Session) ClearSelection() {
	s.selected = nil
}

// SetActiveTool switches to the tool of kind k. Unknown kinds are logged
// and ignored.
func (s *Session) SetActiveTool(k tool.Kind) {
	if err := s.SwitchTool(k); err != nil {
		patternkit.Logger().Warn("switching tool", "tool", k, "err", err)
	}
}

// SwitchTool discards the active tool, running its Cleanup, and makes a
// fresh tool of kind k active. Switching to the active kind starts over
// with a fresh tool too.
func (s *Session) SwitchTool(k tool.Kind) error {
	if !slices.Contains(s.registry.Kinds(), k) {
		return fmt.Errorf("%w %q", tool.ErrUnknownTool, k)
	}
	s.active.Cleanup()
	t, err := s.registry.New(k, s)
	if err != nil {
		return err
	}
	patternkit.Logger().Debug("tool switched", "from", s.active.Kind(), "to", k)
	s.active = t
	s.hovered = ""
	return nil
}

func (s *Session) state(screen patternkit.Point, mods Modifiers, b tool.Button) tool.PointerState {
	return tool.PointerState{
		World:  s.camera.ScreenToWorld(screen.X, screen.Y),
		Screen: screen,
		Shift:  mods.Shift,
		Alt:    mods.Alt,
		Ctrl:   mods.Ctrl,
		Button: b,
	}
}

// PointerDown handles a button press at a screen position. The middle
// button, or the left one while Space is held, starts panning instead of
// reaching the tool.
func (s *Session) PointerDown(screen patternkit.Point, mods Modifiers, b tool.Button) {
	s.cursor, s.hasCursor = screen, true
	if b == tool.ButtonMiddle || (b == tool.ButtonLeft && s.spaceHeld) {
		s.panning = true
		s.panLast = screen
		return
	}
	s.active.PointerDown(s.state(screen, mods, b))
}

func (s *Session) PointerMove(screen patternkit.Point, mods Modifiers, b tool.Button) {
	s.cursor, s.hasCursor = screen, true
	if s.panning {
		d := screen.Sub(s.panLast)
		s.camera = s.camera.Pan(d.X, d.Y)
		s.panLast = screen
		return
	}
	s.active.PointerMove(s.state(screen, mods, b))
}

func (s *Session) PointerUp(screen patternkit.Point, mods Modifiers, b tool.Button) {
	s.cursor, s.hasCursor = screen, true
	if s.panning {
		s.panning = false
		return
	}
	s.active.PointerUp(s.state(screen, mods, b))
}

func (s *Session) DoubleClick(screen patternkit.Point, mods Modifiers) {
	if s.panning {
		return
	}
	s.active.DoubleClick(s.state(screen, mods, tool.ButtonLeft))
}

// KeyDown handles a key press. key is a [tool.Key] name such as "Enter" or
// a single printable character. Space arms panning; with shortcuts enabled
// tool letters switch tools and "." toggles snapping. Every other key goes
// to the active tool.
func (s *Session) KeyDown(key string) {
	if tool.Key(key) == tool.KeySpace {
		s.spaceHeld = true
		return
	}
	if s.opts.shortcuts {
		if key == snapToggleKey {
			patternkit.Logger().Debug("snap toggled", "enabled", s.ToggleSnap())
			return
		}
		if k, ok := tool.KindForShortcut(key); ok && slices.Contains(s.registry.Kinds(), k) {
			s.SetActiveTool(k)
			return
		}
	}
	s.active.KeyDown(tool.Key(key))
}

func (s *Session) KeyUp(key string) {
	if tool.Key(key) == tool.KeySpace {
		s.spaceHeld = false
	}
}

// Wheel zooms one step around a screen position. A positive delta zooms
// out.
func (s *Session) Wheel(screen patternkit.Point, delta float64) {
	before := s.camera.Zoom
	s.camera = s.camera.ZoomAtPoint(screen.X, screen.Y, delta)
	if s.camera.Zoom != before {
		s.notifyZoom()
	}
}

// notifyZoom restarts the debounce timer of the zoom observer.
func (s *Session) notifyZoom() {
	fn := s.opts.zoomObserver
	if fn == nil {
		return
	}
	if s.zoomTimer != nil {
		s.zoomTimer.Stop()
	}
	pct := s.camera.PercentZoom()
	s.zoomTimer = time.AfterFunc(s.opts.zoomDebounce, func() { fn(pct) })
}

// Cursor returns the pointer cursor to show.
func (s *Session) Cursor() tool.Cursor {
	switch {
	case s.panning:
		return tool.CursorGrabbing
	case s.spaceHeld:
		return tool.CursorGrab
	}
	return s.active.Cursor()
}

// Render draws one w×h frame: the grid, the pieces, the active tool's
// overlay and, if visible, the rulers.
func (s *Session) Render(surf render.Surface, w, h float64) {
	render.Clear(surf, w, h)
	render.DrawGrid(surf, s.camera, w, h)
	render.DrawPieces(surf, s.camera, s.Pieces(), s.IsSelected, s.hovered)
	s.active.DrawOverlay(surf, s.camera)
	if s.rulers {
		render.DrawRulers(surf, s.camera, w, h, s.cursor, s.hasCursor)
	}
}

// Status summarizes the session for logs and status lines.
func (s *Session) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tool=%s zoom=%d%% pieces=%d selected=%d", s.active.Kind(), s.ZoomPercent(), len(s.Pieces()), len(s.selected))
	if s.snap {
		b.WriteString(" snap")
	}
	return b.String()
}

package session

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/render/rendertest"
	"github.com/patternkit/patternkit/tool"
	"github.com/patternkit/patternkit/viewport"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var (
	pt      = patternkit.Pt
	noMods  Modifiers
	leftBtn = tool.ButtonLeft
)

func newSession(t *testing.T, store Store, opts ...Option) *Session {
	t.Helper()
	s, err := New(store, opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func click(s *Session, p patternkit.Point) {
	s.PointerDown(p, noMods, leftBtn)
	s.PointerUp(p, noMods, leftBtn)
}

func TestMemStore(t *testing.T) {
	var f patternkit.Factory
	a, b := f.DefaultRectangle(), f.DefaultRectangle()
	st := NewMemStore(a)

	if err := st.Create(b); err != nil {
		t.Fatal(err)
	}
	if err := st.Create(b); !errors.Is(err, ErrDuplicatePiece) {
		t.Errorf("got %v, want ErrDuplicatePiece", err)
	}
	diff(t, []patternkit.Piece{a, b}, st.Pieces())

	moved := a.Translate(patternkit.Vec(5, 0))
	moved.ID = "ignored"
	if err := st.Update(a.ID, moved); err != nil {
		t.Fatal(err)
	}
	got := st.Pieces()
	diff(t, a.ID, got[0].ID)
	diff(t, pt(5, 0), got[0].Origin)

	if err := st.Delete(a.ID); err != nil {
		t.Fatal(err)
	}
	diff(t, 1, st.Len())
	if err := st.Delete(a.ID); !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("got %v, want ErrPieceNotFound", err)
	}
	if err := st.Update("nope", a); !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("got %v, want ErrPieceNotFound", err)
	}
}

func TestMemStoreCopies(t *testing.T) {
	var f patternkit.Factory
	a := f.DefaultRectangle()
	st := NewMemStore(a)
	a.Outline[0].End = pt(-1, -1)
	diff(t, pt(200, 0), st.Pieces()[0].Outline[0].End)
}

func TestDrawThroughSession(t *testing.T) {
	st := NewMemStore()
	s := newSession(t, st, WithInitialTool(tool.Line), WithCamera(viewport.Camera{X: 100, Y: 50, Zoom: 2}))

	click(s, pt(100, 50))
	click(s, pt(300, 50))
	s.KeyDown("Enter")

	pieces := st.Pieces()
	diff(t, 1, len(pieces))
	diff(t, pt(0, 0), pieces[0].Origin)
	diff(t, []patternkit.Segment{patternkit.LineSeg(pt(100, 0))}, pieces[0].Outline)
	diff(t, []string{pieces[0].ID}, s.SelectedIDs())
}

func TestSwitchToolDiscardsDraft(t *testing.T) {
	st := NewMemStore()
	s := newSession(t, st, WithInitialTool(tool.Line))

	click(s, pt(0, 0))
	click(s, pt(100, 0))
	s.KeyDown("p")
	diff(t, tool.Pen, s.ActiveTool().Kind())
	s.KeyDown("L")
	diff(t, tool.Line, s.ActiveTool().Kind())
	s.KeyDown("Enter")
	diff(t, 0, st.Len())

	if err := s.SwitchTool("lasso"); !errors.Is(err, tool.ErrUnknownTool) {
		t.Errorf("got %v, want ErrUnknownTool", err)
	}
	diff(t, tool.Line, s.ActiveTool().Kind())
}

func TestSnapShortcut(t *testing.T) {
	s := newSession(t, NewMemStore())
	diff(t, false, s.SnapEnabled())
	s.KeyDown(".")
	diff(t, true, s.SnapEnabled())

	s = newSession(t, NewMemStore(), WithShortcuts(false), WithSnap(true))
	s.KeyDown(".")
	s.KeyDown("m")
	diff(t, true, s.SnapEnabled())
	diff(t, tool.Select, s.ActiveTool().Kind())
}

func TestPan(t *testing.T) {
	st := NewMemStore()
	s := newSession(t, st, WithInitialTool(tool.Line))

	s.PointerDown(pt(10, 10), noMods, tool.ButtonMiddle)
	diff(t, tool.CursorGrabbing, s.Cursor())
	s.PointerMove(pt(30, 40), noMods, tool.ButtonMiddle)
	s.PointerUp(pt(30, 40), noMods, tool.ButtonMiddle)
	diff(t, viewport.Camera{X: 20, Y: 30, Zoom: 1}, s.Camera())

	s.KeyDown("Space")
	diff(t, tool.CursorGrab, s.Cursor())
	s.PointerDown(pt(0, 0), noMods, leftBtn)
	s.PointerMove(pt(-20, 0), noMods, leftBtn)
	s.PointerUp(pt(-20, 0), noMods, leftBtn)
	s.KeyUp("Space")
	diff(t, viewport.Camera{X: 0, Y: 30, Zoom: 1}, s.Camera())
	diff(t, tool.CursorCrosshair, s.Cursor())

	// Panning never reaches the tool.
	s.KeyDown("Enter")
	diff(t, 0, st.Len())
}

func TestWheelDebouncesZoomObserver(t *testing.T) {
	got := make(chan int, 4)
	s := newSession(t, NewMemStore(),
		WithZoomDebounce(10*time.Millisecond),
		WithZoomObserver(func(pct int) { got <- pct }),
	)

	for range 3 {
		s.Wheel(pt(100, 100), -1)
	}
	diff(t, 133, s.ZoomPercent())
	diff(t, pt(100, 100), s.ScreenToWorld(pt(100, 100)), approxPoint)

	select {
	case pct := <-got:
		diff(t, 133, pct)
	case <-time.After(time.Second):
		t.Fatal("zoom observer not called")
	}
	select {
	case pct := <-got:
		t.Errorf("unexpected second notification %d", pct)
	case <-time.After(50 * time.Millisecond):
	}
}

var approxPoint = cmp.Comparer(func(a, b patternkit.Point) bool {
	return a.Distance(b) < 1e-9
})

type failingStore struct{ MemStore }

func (*failingStore) Create(patternkit.Piece) error { return errors.New("disk full") }

func TestStoreErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	patternkit.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { patternkit.SetLogger(nil) })

	s := newSession(t, &failingStore{}, WithInitialTool(tool.Line))
	click(s, pt(0, 0))
	click(s, pt(10, 0))
	s.KeyDown("Enter")

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("store error not logged: %q", buf.String())
	}
	s.UpdatePiece("nope", patternkit.Piece{})
	if !strings.Contains(buf.String(), ErrPieceNotFound.Error()) {
		t.Errorf("store error not logged: %q", buf.String())
	}
}

func TestSelectionAndDoubleClick(t *testing.T) {
	var f patternkit.Factory
	a, b := f.DefaultRectangle(), f.DefaultRectangle()
	st := NewMemStore(a, b)
	s := newSession(t, st)

	click(s, pt(100, 100))
	s.PointerDown(pt(300, 100), Modifiers{Shift: true}, leftBtn)
	s.PointerUp(pt(300, 100), Modifiers{Shift: true}, leftBtn)
	diff(t, []string{a.ID, b.ID}, s.SelectedIDs())

	s.DeletePiece(a.ID)
	diff(t, []string{b.ID}, s.SelectedIDs())

	s.DoubleClick(pt(300, 100), noMods)
	diff(t, tool.NodeEdit, s.ActiveTool().Kind())
	diff(t, []string{b.ID}, s.SelectedIDs())
}

func TestRender(t *testing.T) {
	var f patternkit.Factory
	st := NewMemStore(f.DefaultRectangle(), f.DefaultRectangle())
	s := newSession(t, st, WithInitialTool(tool.Measure))
	click(s, pt(0, 0))
	click(s, pt(30, 40))

	rec := rendertest.New()
	s.Render(rec, 800, 600)
	diff(t, 0, rec.Depth())
	texts := rec.Texts()
	for _, want := range []string{"Piece 1", "Piece 2", "50.0 mm"} {
		if !strings.Contains(strings.Join(texts, "\n"), want) {
			t.Errorf("frame lacks %q: %q", want, texts)
		}
	}
	if len(rec.Filter("fill", render.RulerBackground)) == 0 {
		t.Error("rulers not drawn")
	}

	rec.Reset()
	s.SetRulers(false)
	s.Render(rec, 800, 600)
	diff(t, 0, len(rec.Filter("fill", render.RulerBackground)))
}

func TestCursorWorld(t *testing.T) {
	s := newSession(t, NewMemStore(), WithCamera(viewport.Camera{Zoom: 3}))
	_, ok := s.CursorWorld()
	diff(t, false, ok)

	s.PointerMove(pt(10, 20), noMods, leftBtn)
	p, ok := s.CursorWorld()
	diff(t, true, ok)
	diff(t, pt(3.3, 6.7), p)
}

func TestRotateKeyReachesSelectTool(t *testing.T) {
	var f patternkit.Factory
	a := f.DefaultRectangle()
	st := NewMemStore(a)
	s := newSession(t, st)

	click(s, pt(100, 100))
	s.KeyDown("r")
	diff(t, tool.Select, s.ActiveTool().Kind())
	diff(t, pt(250, 50), st.Pieces()[0].Origin, approxPoint)
}

package session

import (
	"time"

	"github.com/patternkit/patternkit/tool"
	"github.com/patternkit/patternkit/viewport"
)

// DefaultZoomDebounce is how long the zoom must stay unchanged before zoom
// observers are told about it.
const DefaultZoomDebounce = 50 * time.Millisecond

// Option configures a Session during creation.
//
// Example:
//
//	s, err := session.New(store,
//		session.WithSnap(true),
//		session.WithZoomObserver(func(pct int) { fmt.Println(pct, "%") }),
//	)
type Option func(*options)

type options struct {
	snap         bool
	rulers       bool
	shortcuts    bool
	registry     *tool.Registry
	initial      tool.Kind
	camera       viewport.Camera
	zoomObserver func(percent int)
	zoomDebounce time.Duration
}

func defaultOptions() options {
	return options{
		rulers:       true,
		shortcuts:    true,
		initial:      tool.Select,
		camera:       viewport.NewCamera(),
		zoomDebounce: DefaultZoomDebounce,
	}
}

// WithSnap sets whether grid snapping starts enabled. It is off by default.
func WithSnap(enabled bool) Option {
	return func(o *options) {
		o.snap = enabled
	}
}

// WithRulers sets whether Render draws rulers. They are on by default.
func WithRulers(visible bool) Option {
	return func(o *options) {
		o.rulers = visible
	}
}

// WithShortcuts sets whether KeyDown handles the single-letter tool
// shortcuts and the snap toggle.
func WithShortcuts(enabled bool) Option {
	return func(o *options) {
		o.shortcuts = enabled
	}
}

// WithRegistry replaces the default tool registry.
func WithRegistry(r *tool.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithInitialTool sets the tool that is active when the session starts.
func WithInitialTool(k tool.Kind) Option {
	return func(o *options) {
		o.initial = k
	}
}

// WithCamera sets the initial camera.
func WithCamera(c viewport.Camera) Option {
	return func(o *options) {
		o.camera = c.Clamp()
	}
}

// WithZoomObserver registers fn to be told the zoom percentage once the
// zoom settles. fn runs on its own goroutine.
func WithZoomObserver(fn func(percent int)) Option {
	return func(o *options) {
		o.zoomObserver = fn
	}
}

// WithZoomDebounce overrides DefaultZoomDebounce.
func WithZoomDebounce(d time.Duration) Option {
	return func(o *options) {
		o.zoomDebounce = d
	}
}

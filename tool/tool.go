// Package tool implements the interactive editing tools. A tool turns
// pointer and keyboard input into draft geometry, draws that draft as an
// overlay, and commits finished pieces through a [Context].
//
// Tools are short lived: a new one is constructed every time the active
// tool changes and the old one's Cleanup discards any uncommitted draft.
package tool

import (
	"github.com/patternkit/patternkit"
	"github.com/patternkit/patternkit/render"
	"github.com/patternkit/patternkit/viewport"
)

// Kind identifies a tool.
type Kind string

const (
	Select   Kind = "select"
	NodeEdit Kind = "node-edit"
	Pen      Kind = "pen"
	Line     Kind = "line"
	Curve    Kind = "curve"
	Measure  Kind = "measure"
)

func (k Kind) String() string { return string(k) }

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PointerState is one pointer event.
type PointerState struct {
	// World is the pointer position in world millimetres and Screen the
	// same position in screen pixels.
	World  patternkit.Point
	Screen patternkit.Point
	Shift  bool
	// Alt is the duplicate modifier of the select tool.
	Alt    bool
	Ctrl   bool
	Button Button
}

// Key names a keyboard key.
type Key string

const (
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
	KeySpace     Key = "Space"

	// KeyRotate and KeyRotateBack turn the selection in the select tool.
	KeyRotate     Key = "r"
	KeyRotateBack Key = "R"
)

// Cursor is the pointer cursor a tool asks for.
type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorPointer   Cursor = "pointer"
	CursorGrab      Cursor = "grab"
	CursorGrabbing  Cursor = "grabbing"
	CursorCrosshair Cursor = "crosshair"
)

// Context is what a tool sees of the editing session. Pieces and selection
// are owned by the session; tools read them fresh on every event and change
// them only through these calls.
type Context interface {
	Camera() viewport.Camera
	Pieces() []patternkit.Piece
	// SelectedIDs returns the selection in the order pieces were selected.
	SelectedIDs() []string
	IsSelected(id string) bool
	HoveredID() string
	SnapEnabled() bool
	// Factory names and identifies newly drawn pieces.
	Factory() *patternkit.Factory

	CreatePiece(p patternkit.Piece)
	UpdatePiece(id string, p patternkit.Piece)
	DeletePiece(id string)
	// SelectPiece replaces the selection with id.
	SelectPiece(id string)
	// TogglePiece adds id to the selection or removes it.
	TogglePiece(id string)
	ClearSelection()
	// SetHovered sets the hovered piece; the empty string means none.
	SetHovered(id string)
	SetActiveTool(k Kind)
}

// Tool is an interactive tool. All methods are called from the session's
// input and render loop, never concurrently.
type Tool interface {
	Kind() Kind
	PointerDown(st PointerState)
	PointerMove(st PointerState)
	PointerUp(st PointerState)
	DoubleClick(st PointerState)
	KeyDown(k Key)
	// DrawOverlay draws the tool's draft and feedback. s is in screen
	// space; the tool applies cam itself.
	DrawOverlay(s render.Surface, cam viewport.Camera)
	Cursor() Cursor
	// Cleanup discards all draft state.
	Cleanup()
}

func findPiece(ctx Context, id string) (patternkit.Piece, bool) {
	for _, p := range ctx.Pieces() {
		if p.ID == id {
			return p, true
		}
	}
	return patternkit.Piece{}, false
}

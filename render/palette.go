package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

func rgba(r, g, b uint8, a float64) color.Color {
	return gg.RGBA2(float64(r)/255, float64(g)/255, float64(b)/255, a).Color()
}

func hex(s string) color.Color { return gg.Hex(s).Color() }

// Frame colors.
var (
	Background   = hex("ffffff")
	GridMinor    = rgba(128, 128, 128, 0.1)
	GridMajor    = rgba(128, 128, 128, 0.25)
	OriginMarker = rgba(200, 60, 60, 0.4)

	Outline         = hex("d4d4d8")
	OutlineHovered  = hex("a1a1aa")
	OutlineSelected = hex("ec4899")
	FillSelected    = rgba(236, 72, 153, 0.06)
	GrainLine       = hex("71717a")
	Notch           = hex("ec4899")
	PieceName       = hex("a1a1aa")

	RulerBackground = hex("f5f5f5")
	RulerText       = hex("71717a")
	RulerTick       = hex("a1a1aa")
	RulerBorder     = hex("d4d4d8")
	RulerCursor     = hex("ec4899")
)

// Overlay colors used by the tools.
var (
	DraftPoint      = hex("ec4899")
	DraftPointFirst = hex("f472b6")
	PreviewLine     = rgba(236, 72, 153, 0.6)
	HandleLine      = rgba(236, 72, 153, 0.3)
	HandleDot       = hex("ec4899")
	DistanceBg      = rgba(0, 0, 0, 0.75)
	DistanceText    = hex("ffffff")
	CloseIndicator  = rgba(236, 72, 153, 0.3)
	SnapIndicator   = rgba(59, 130, 246, 0.6)
	Ghost           = rgba(236, 72, 153, 0.5)

	AnchorSelected   = hex("db2777")
	AnchorBorder     = hex("ffffff")
	AnchorUnselected = rgba(236, 72, 153, 0.4)
	HandleSelected   = hex("ec4899")
	HandleUnselected = rgba(236, 72, 153, 0.35)
)

package watermark

import (
	"fmt"
	"image"
	"strings"
)

// DefaultMargin is the inset in pixels between the text and the image edge.
const DefaultMargin = 10

// Anchor is one of the nine symbolic watermark positions.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "top_left",
	TopCenter:    "top_center",
	TopRight:     "top_right",
	MiddleLeft:   "middle_left",
	MiddleCenter: "middle_center",
	MiddleRight:  "middle_right",
	BottomLeft:   "bottom_left",
	BottomCenter: "bottom_center",
	BottomRight:  "bottom_right",
}

// Anchors lists every anchor in declaration order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchorNames))
	for i := range anchorNames {
		out[i] = Anchor(i)
	}
	return out
}

// Valid reports whether a is one of the nine declared anchors.
func (a Anchor) Valid() bool {
	return a >= TopLeft && a <= BottomRight
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor accepts names such as "bottom_right", "bottom-right" or
// "BOTTOM_RIGHT".
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown position %q, want one of %s",
		ErrInvalidConfig, s, strings.Join(anchorNames[:], ", "))
}

// Place returns the text origin for the given anchor: X is the left edge of
// the text and Y its baseline. The result is not clamped to the image, so
// text larger than the image yields negative or off-canvas coordinates.
func Place(imageW, imageH, textW, textH int, anchor Anchor, margin int) image.Point {
	left := margin
	center := (imageW - textW) / 2
	right := imageW - textW - margin

	top := margin + textH
	middle := (imageH + textH) / 2
	bottom := imageH - margin

	switch anchor {
	case TopLeft:
		return image.Pt(left, top)
	case TopCenter:
		return image.Pt(center, top)
	case TopRight:
		return image.Pt(right, top)
	case MiddleLeft:
		return image.Pt(left, middle)
	case MiddleCenter:
		return image.Pt(center, middle)
	case MiddleRight:
		return image.Pt(right, middle)
	case BottomLeft:
		return image.Pt(left, bottom)
	case BottomCenter:
		return image.Pt(center, bottom)
	case BottomRight:
		return image.Pt(right, bottom)
	}
	panic(fmt.Sprintf("watermark: place with invalid anchor %d", int(anchor)))
}

// Package signature captures, stores and loads hand-drawn signature images.
package signature

import (
	"image"
)

// Canvas dimensions of a signature, in pixels.
const (
	CanvasWidth  = 400
	CanvasHeight = 150
)

// Role identifies whose signature an image is.
type Role string

const (
	Subcontractor Role = "subcontractor"
	Foreman       Role = "foreman"
)

// Roles lists the signature roles in document order.
var Roles = []Role{Subcontractor, Foreman}

// Caption is the label printed above the signature in the sign-off document.
func (r Role) Caption() string {
	switch r {
	case Subcontractor:
		return "Subcontractor Signature:"
	case Foreman:
		return "CH Foreman Signature:"
	default:
		return string(r) + " Signature:"
	}
}

// IsBlank reports whether img has no pixel that differs from its background.
// The background is the colour at the canvas origin, which covers both the
// transparent canvas of the drawing pad and solid white scans.
func IsBlank(img image.Image) bool {
	if img == nil {
		return true
	}
	b := img.Bounds()
	if b.Empty() {
		return true
	}
	br, bg, bb, ba := img.At(b.Min.X, b.Min.Y).RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r != br || g != bg || bl != bb || a != ba {
				return false
			}
		}
	}
	return true
}

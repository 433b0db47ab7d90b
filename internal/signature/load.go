package signature

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for supplied signature scans
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// LoadFile decodes a signature image from disk and fits it onto the signature canvas.
// A blank image yields nil.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signature %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature %s: %w", path, err)
	}
	if IsBlank(src) {
		return nil, nil
	}
	return Normalize(src), nil
}

// Normalize scales img to fit the signature canvas, preserving aspect ratio and
// centring it on a transparent background. Images already at canvas size are
// copied unchanged.
func Normalize(img image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	sb := img.Bounds()
	if sb.Dx() == CanvasWidth && sb.Dy() == CanvasHeight {
		draw.Draw(dst, dst.Bounds(), img, sb.Min, draw.Src)
		return dst
	}

	w, h := CanvasWidth, sb.Dy()*CanvasWidth/max(sb.Dx(), 1)
	if h > CanvasHeight {
		w, h = sb.Dx()*CanvasHeight/max(sb.Dy(), 1), CanvasHeight
	}
	w, h = max(w, 1), max(h, 1)
	off := image.Pt((CanvasWidth-w)/2, (CanvasHeight-h)/2)
	draw.CatmullRom.Scale(dst, image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}, img, sb, draw.Over, nil)
	return dst
}

// LoadPair loads the two independent signatures concurrently.
// An empty path means the signature was not given.
func LoadPair(ctx context.Context, subcontractorPath, foremanPath string) (sub, foreman image.Image, err error) {
	g, gCtx := errgroup.WithContext(ctx)

	load := func(path string, out *image.Image) func() error {
		return func() error {
			if path == "" {
				return nil
			}
			if err := gCtx.Err(); err != nil {
				return err
			}
			img, err := LoadFile(path)
			if err != nil {
				return err
			}
			*out = img
			return nil
		}
	}

	g.Go(load(subcontractorPath, &sub))
	g.Go(load(foremanPath, &foreman))

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sub, foreman, nil
}

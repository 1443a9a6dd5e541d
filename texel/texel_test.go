package texel

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImageFlipsRows(t *testing.T) {
	// 1x2 image: red on top, blue on the bottom.
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	img := FromImage(src)
	if img.Width != 1 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 1x2", img.Width, img.Height)
	}
	if len(img.Pix) != 8 {
		t.Fatalf("len(Pix) = %d, want 8", len(img.Pix))
	}
	// GL row order: bottom row first, so blue leads.
	if img.Pix[2] != 255 {
		t.Errorf("first row not blue: %v", img.Pix[:4])
	}
	if img.Pix[4] != 255 {
		t.Errorf("second row not red: %v", img.Pix[4:])
	}
}

func TestFromImageNonRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img := FromImage(src)
	if img.Width != 3 || img.Height != 3 || len(img.Pix) != 36 {
		t.Fatalf("got %dx%d with %d bytes", img.Width, img.Height, len(img.Pix))
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Sub-images carry a non-zero origin; the conversion must repack
	// from the bounds, not from pixel (0,0).
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.SetRGBA(2, 2, color.RGBA{G: 255, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	img := FromImage(sub)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", img.Width, img.Height)
	}
	// (2,2) is the top-left of the sub-image, so after the flip it is
	// the start of the last row.
	if img.Pix[4*2+1] != 255 {
		t.Errorf("green texel not at expected position: %v", img.Pix)
	}
}

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 128, G: 64, B: 32, A: 255})
		}
	}
	for _, filter := range []Filter{Nearest, Bilinear, CatmullRom} {
		img := Resize(src, 4, 2, filter)
		if img.Width != 4 || img.Height != 2 {
			t.Fatalf("filter %d: size = %dx%d, want 4x2", filter, img.Width, img.Height)
		}
		if len(img.Pix) != 4*2*4 {
			t.Fatalf("filter %d: len(Pix) = %d", filter, len(img.Pix))
		}
		// Uniform input stays uniform under any filter.
		if img.Pix[0] != img.Pix[len(img.Pix)-4] {
			t.Errorf("filter %d: non-uniform output from uniform input", filter)
		}
	}
}

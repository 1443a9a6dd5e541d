// Package texel converts images to texture upload data. GL expects
// tightly packed rows with the first row at the bottom, which is the
// opposite of image.Image's top-down convention; the conversion here
// handles both the flip and premultiplied RGBA8 packing. Pure CPU, no
// GL dependency.
package texel

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image is upload-ready RGBA8 texel data: tightly packed, bottom-up
// rows, 4 bytes per texel. Pass Pix to ActiveTexture.Image2D with
// format RGBA and type UNSIGNED_BYTE.
type Image struct {
	Width, Height int
	Pix           []byte
}

// FromImage converts src to upload data at its own size.
func FromImage(src image.Image) Image {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	return flip(rgba)
}

// Filter selects the scaler used by Resize.
type Filter uint8

const (
	// Nearest picks the nearest source texel. Fastest, blocky.
	Nearest Filter = iota
	// Bilinear interpolates linearly. Good default for downscaling.
	Bilinear
	// CatmullRom is a cubic filter. Best quality, slowest.
	CatmullRom
)

func (f Filter) scaler() xdraw.Scaler {
	switch f {
	case Nearest:
		return xdraw.NearestNeighbor
	case Bilinear:
		return xdraw.ApproxBiLinear
	default:
		return xdraw.CatmullRom
	}
}

// Resize scales src to width x height and converts it to upload data.
func Resize(src image.Image, width, height int, filter Filter) Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	filter.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return flip(dst)
}

// flip repacks an RGBA image into tight bottom-up rows.
func flip(src *image.RGBA) Image {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	rowLen := w * 4
	pix := make([]byte, rowLen*h)
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+rowLen]
		dstRow := pix[(h-1-y)*rowLen : (h-y)*rowLen]
		copy(dstRow, srcRow)
	}
	return Image{Width: w, Height: h, Pix: pix}
}

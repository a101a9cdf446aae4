package video

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA converts src to a new *image.RGBA whose bounds start at (0, 0).
// Conversion from YCbCr is lossy.
func ToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if srcRGBA, ok := src.(*image.RGBA); ok {
		// Row by row, the source stride may be wider than the image.
		rowLen := 4 * bounds.Dx()
		for y := 0; y < bounds.Dy(); y++ {
			i := srcRGBA.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], srcRGBA.Pix[i:i+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

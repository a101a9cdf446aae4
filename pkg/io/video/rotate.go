package video

import (
	"image"

	"github.com/pion/freezeframe/pkg/frame"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate turns src clockwise by degrees about its centre and returns the result
// with bounds starting at (0, 0). 90 and 270 swap width and height. A zero
// rotation returns src itself when it is already an *image.RGBA at the origin.
// A nil interpolator means InterpolatorNearestNeighbor, which moves every
// pixel exactly.
func Rotate(src image.Image, degrees int, interpolator Interpolator) (*image.RGBA, error) {
	degrees, err := frame.NormalizeRotation(degrees)
	if err != nil {
		return nil, err
	}

	if interpolator == nil {
		interpolator = InterpolatorNearestNeighbor
	}

	sr := src.Bounds()
	if degrees == 0 {
		if rgba, ok := src.(*image.RGBA); ok && sr.Min == (image.Point{}) {
			return rgba, nil
		}
		return ToRGBA(src), nil
	}

	w, h := float64(sr.Dx()), float64(sr.Dy())
	minX, minY := float64(sr.Min.X), float64(sr.Min.Y)

	var s2d f64.Aff3
	var dst *image.RGBA
	switch degrees {
	case 90:
		// (x, y) -> (h - y, x)
		s2d = f64.Aff3{0, -1, h + minY, 1, 0, -minX}
		dst = image.NewRGBA(image.Rect(0, 0, sr.Dy(), sr.Dx()))
	case 180:
		// (x, y) -> (w - x, h - y)
		s2d = f64.Aff3{-1, 0, w + minX, 0, -1, h + minY}
		dst = image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	case 270:
		// (x, y) -> (y, w - x)
		s2d = f64.Aff3{0, 1, -minY, -1, 0, w + minX}
		dst = image.NewRGBA(image.Rect(0, 0, sr.Dy(), sr.Dx()))
	}

	interpolator.Transform(dst, s2d, src, sr, draw.Src, nil)
	return dst, nil
}

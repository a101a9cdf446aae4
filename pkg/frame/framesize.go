package frame

import (
	"fmt"
	"math"
)

// FrameSize returns the number of bytes a frame occupies in the given format.
// Chroma dimensions are rounded up so odd sizes keep their last column and row.
func FrameSize(f Format, width, height int) (int, error) {
	switch f {
	case FormatI420, FormatNV21, FormatYUV420, "":
		return frameSize420(width, height)
	case FormatMJPEG:
		return 0, fmt.Errorf("%s is a compressed format, its size is unknown", f)
	default:
		return 0, fmt.Errorf("%s is not supported", f)
	}
}

func frameSize420(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("dimensions must be positive, got %dx%d", width, height)
	}

	cw, ch := chromaSize(width, height)
	luma, ok := mulInt(width, height)
	if !ok {
		return 0, fmt.Errorf("%dx%d overflows the frame size", width, height)
	}
	chroma, ok := mulInt(cw, ch)
	if ok {
		chroma, ok = mulInt(chroma, 2)
	}
	if !ok || luma > math.MaxInt-chroma {
		return 0, fmt.Errorf("%dx%d overflows the frame size", width, height)
	}
	return luma + chroma, nil
}

func chromaSize(width, height int) (int, int) {
	return width/2 + width%2, height/2 + height%2
}

// mulInt multiplies two non-negative ints and reports whether the product fits.
func mulInt(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

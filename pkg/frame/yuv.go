package frame

import (
	"fmt"
	"image"
)

func decodeI420(frame []byte, width, height int) (image.Image, error) {
	cri, err := frameSize420(width, height)
	if err != nil {
		return nil, err
	}
	cw, _ := chromaSize(width, height)
	yi := width * height
	cbi := yi + (cri-yi)/2

	if cri > len(frame) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}

// decodeNV21 splits the interleaved chroma of an NV21 frame. Every chroma pair
// is stored V first, then U.
func decodeNV21(frame []byte, width, height int) (image.Image, error) {
	ci, err := frameSize420(width, height)
	if err != nil {
		return nil, err
	}
	cw, ch := chromaSize(width, height)
	yi := width * height

	if ci > len(frame) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	cb := make([]byte, cw*ch)
	cr := make([]byte, cw*ch)
	for i, j := yi, 0; i < ci; i, j = i+2, j+1 {
		cr[j] = frame[i]
		cb[j] = frame[i+1]
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}

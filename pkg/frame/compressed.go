package frame

import (
	"bytes"
	"image"
	"image/jpeg"
)

// DefaultJPEGQuality is the quality used for intermediate encodes. It trades
// detail for size and speed; the result is only ever decoded again.
const DefaultJPEGQuality = 50

func decodeMJPEG(frame []byte, width, height int) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(frame))
}

// EncodeJPEG compresses img at the given quality. Quality is clamped to [1, 100].
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package frame

import (
	"github.com/pion/freezeframe/pkg/io"
)

// Plane order of a YUV420 PlanarImage.
const (
	PlaneY = 0
	PlaneU = 1
	PlaneV = 2
)

// InterleavedSample is the byte layout a semiplanar encoder expects: luma,
// then the V plane, then the U plane.
type InterleavedSample []byte

// SampleSize returns the number of bytes Interleave will produce for img.
func SampleSize(img *PlanarImage) int {
	return img.Plane(PlaneY).Remaining() + img.Plane(PlaneV).Remaining() + img.Plane(PlaneU).Remaining()
}

// Interleave copies the planes of a YUV420 image into a new buffer in Y, V, U
// order. Camera planes come out as U then V, so the chroma planes are swapped
// here to form NV21.
func Interleave(img *PlanarImage) (InterleavedSample, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Format == FormatMJPEG {
		return nil, invalidf("%s can't be interleaved", img.Format)
	}

	sample := make(InterleavedSample, SampleSize(img))
	if _, err := InterleaveInto(sample, img); err != nil {
		return nil, err
	}
	return sample, nil
}

// InterleaveInto writes the Y, V, U planes of img into dst and returns the number
// of bytes written. If dst is too small, an *io.InsufficientBufferError is returned
// and dst is left untouched.
func InterleaveInto(dst []byte, img *PlanarImage) (int, error) {
	size := SampleSize(img)
	if len(dst) < size {
		return 0, &io.InsufficientBufferError{RequiredSize: size}
	}

	var n int
	for _, i := range [...]int{PlaneY, PlaneV, PlaneU} {
		written, err := io.Copy(dst[n:], img.Plane(i).Bytes())
		if err != nil {
			return 0, err
		}
		n += written
	}
	return n, nil
}

package freezeframe

import (
	"image"

	"github.com/pion/freezeframe/pkg/frame"
	"github.com/pion/freezeframe/pkg/io/video"
)

// FrameNormalizer turns a camera frame into an upright RGBA image.
type FrameNormalizer interface {
	Normalize(img *frame.PlanarImage) (*image.RGBA, error)
}

// Normalizer is the default FrameNormalizer. It keeps no state between calls, so
// a single Normalizer can serve many goroutines as long as each passes its own
// frame.
type Normalizer struct {
	quality      int
	direct       bool
	interpolator video.Interpolator
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithQuality sets the JPEG quality of the intermediate encode. It is clamped to
// [1, 100].
func WithQuality(quality int) NormalizerOption {
	return func(n *Normalizer) {
		n.quality = quality
	}
}

// WithDirectConversion converts YCbCr straight to RGBA instead of going through
// a JPEG encode and decode.
func WithDirectConversion() NormalizerOption {
	return func(n *Normalizer) {
		n.direct = true
	}
}

// WithInterpolator sets the resampler used for rotation.
func WithInterpolator(interpolator video.Interpolator) NormalizerOption {
	return func(n *Normalizer) {
		n.interpolator = interpolator
	}
}

var (
	nv21Decoder = mustDecoder(frame.FormatNV21)
	jpegDecoder = mustDecoder(frame.FormatMJPEG)

	defaultNormalizer = NewNormalizer()
)

func mustDecoder(f frame.Format) frame.Decoder {
	d, err := frame.NewDecoder(f)
	if err != nil {
		panic(err)
	}
	return d
}

// NewNormalizer creates a Normalizer. By default it round-trips through JPEG at
// frame.DefaultJPEGQuality and rotates with nearest neighbour sampling.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		quality:      frame.DefaultJPEGQuality,
		interpolator: video.InterpolatorNearestNeighbor,
	}
	for _, o := range opts {
		o(n)
	}

	if n.quality < 1 {
		n.quality = 1
	} else if n.quality > 100 {
		n.quality = 100
	}
	if n.interpolator == nil {
		n.interpolator = video.InterpolatorNearestNeighbor
	}
	return n
}

// Normalize converts img with the default Normalizer.
func Normalize(img *frame.PlanarImage) (*image.RGBA, error) {
	return defaultNormalizer.Normalize(img)
}

// Normalize converts img to an upright RGBA image. It returns a
// *frame.InvalidFrameError for malformed input and a *frame.DecodeError when
// the compressed intermediate can't be decoded. img is not released; that is
// left to the caller.
func (n *Normalizer) Normalize(img *frame.PlanarImage) (*image.RGBA, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	var decoded image.Image
	var err error
	switch img.Format {
	case frame.FormatMJPEG:
		decoded, err = n.decodeCompressed(img)
	default:
		decoded, err = n.decodePlanar(img)
	}
	if err != nil {
		return nil, err
	}

	return video.Rotate(decoded, img.Rotation, n.interpolator)
}

func (n *Normalizer) decodePlanar(img *frame.PlanarImage) (image.Image, error) {
	sample, err := frame.Interleave(img)
	if err != nil {
		return nil, err
	}

	ycbcr, err := nv21Decoder.Decode(sample, img.Width, img.Height)
	if err != nil {
		return nil, &frame.InvalidFrameError{Reason: err.Error()}
	}

	if n.direct {
		return ycbcr, nil
	}

	encoded, err := frame.EncodeJPEG(ycbcr, n.quality)
	if err != nil {
		return nil, &frame.InvalidFrameError{Reason: err.Error()}
	}

	decoded, err := jpegDecoder.Decode(encoded, img.Width, img.Height)
	if err != nil {
		return nil, &frame.DecodeError{Err: err}
	}
	return decoded, nil
}

func (n *Normalizer) decodeCompressed(img *frame.PlanarImage) (image.Image, error) {
	decoded, err := jpegDecoder.Decode(img.Plane(0).Bytes(), img.Width, img.Height)
	if err != nil {
		return nil, &frame.DecodeError{Err: err}
	}
	return decoded, nil
}

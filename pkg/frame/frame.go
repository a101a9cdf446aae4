package frame

import (
	"image"
	"sync"
)

type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, error)
}

// DecoderFunc is a proxy type for Decoder
type decoderFunc func(frame []byte, width, height int) (image.Image, error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, error) {
	return f(frame, width, height)
}

// Plane is a single color plane of a captured image.
type Plane struct {
	Data []byte
}

// Remaining returns the number of readable bytes in the plane. A nil plane has none.
func (p *Plane) Remaining() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// Bytes returns the plane contents. A nil plane has none.
func (p *Plane) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.Data
}

// PlanarImage is one frame as delivered by the camera. For FormatYUV420 Planes
// holds Y, U and V in that order. For FormatMJPEG Planes holds one plane with
// the compressed bytes.
type PlanarImage struct {
	Width, Height int
	Format        Format
	Planes        []*Plane
	// Rotation is the clockwise angle, in degrees, needed to make the image upright.
	Rotation int
	// Release returns the underlying buffers to the camera. Use Close instead of
	// calling it directly.
	Release func()

	once sync.Once
}

// NewYUV420 wraps the three planes of a YUV 4:2:0 image.
func NewYUV420(width, height, rotation int, y, u, v []byte) *PlanarImage {
	return &PlanarImage{
		Width:    width,
		Height:   height,
		Format:   FormatYUV420,
		Planes:   []*Plane{{Data: y}, {Data: u}, {Data: v}},
		Rotation: rotation,
	}
}

// NewMJPEG wraps a compressed still capture.
func NewMJPEG(width, height, rotation int, data []byte) *PlanarImage {
	return &PlanarImage{
		Width:    width,
		Height:   height,
		Format:   FormatMJPEG,
		Planes:   []*Plane{{Data: data}},
		Rotation: rotation,
	}
}

// Close releases the image back to its producer. Only the first call has an
// effect. It is safe to call on a nil image.
func (img *PlanarImage) Close() {
	if img == nil {
		return
	}
	img.once.Do(func() {
		if img.Release != nil {
			img.Release()
		}
	})
}

// Plane returns the i-th plane or nil when it does not exist.
func (img *PlanarImage) Plane(i int) *Plane {
	if i < 0 || i >= len(img.Planes) {
		return nil
	}
	return img.Planes[i]
}

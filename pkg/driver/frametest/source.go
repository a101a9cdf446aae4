// Package frametest provides a synthetic camera that produces color bar frames
// in the layout a mobile camera analysis stream delivers.
package frametest

import (
	"context"
	"image"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/freezeframe/internal/logging"
	"github.com/pion/freezeframe/pkg/frame"
	"github.com/pion/freezeframe/pkg/io"
	"github.com/pion/freezeframe/pkg/io/video"
)

var logger = logging.NewLogger("frametest")

// captureQuality is the JPEG quality of still captures.
const captureQuality = 95

var colors = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// Source generates frames. Next and Capture may be called from any goroutine.
type Source struct {
	prop     video.Property
	rotation int

	mu     sync.Mutex
	yBase  []byte
	cbBase []byte
	crBase []byte
	random *rand.Rand

	produced atomic.Int64
	released atomic.Int64
}

// NewSource creates a Source for the given size. rotation is attached to every
// frame as-is. A zero FrameRate means 30; a negative one panics.
func NewSource(p video.Property, rotation int) *Source {
	if p.Width <= 0 || p.Height <= 0 {
		panic("frametest: width and height must be positive")
	}
	if p.FrameRate < 0 {
		panic("frametest: frame rate must not be negative")
	}
	if p.FrameRate == 0 {
		p.FrameRate = 30
	}

	cw, ch := (p.Width+1)/2, (p.Height+1)/2
	s := &Source{
		prop:     p,
		rotation: rotation,
		yBase:    make([]byte, p.Width*p.Height),
		cbBase:   make([]byte, cw*ch),
		crBase:   make([]byte, cw*ch),
		random:   rand.New(rand.NewSource(0)),
	}

	hColorBarEnd := p.Height * 3 / 4
	wGradationEnd := p.Width * 5 / 7
	for y := 0; y < p.Height; y++ {
		yi := p.Width * y
		ci := cw * (y / 2)
		for x := 0; x < p.Width; x++ {
			cb, cr := byte(128), byte(128)
			switch {
			case y < hColorBarEnd:
				// Color bar
				c := x * 7 / p.Width
				s.yBase[yi+x] = uint8(uint16(colors[c][0]) * 75 / 100)
				cb, cr = colors[c][1], colors[c][2]
			case x < wGradationEnd:
				// Gray gradation
				s.yBase[yi+x] = uint8(x * 255 / wGradationEnd)
			}
			s.cbBase[ci+x/2] = cb
			s.crBase[ci+x/2] = cr
		}
	}

	return s
}

// Property returns the size and rate of the generated frames.
func (s *Source) Property() video.Property {
	return s.prop
}

// Next returns a new frame. The chroma planes are two views, one byte apart, of
// a single V0 U0 V1 U1 ... buffer: the V plane starts at V0 and the U plane at
// U0. Each is one byte short of the whole interleaved chroma, the way a
// semiplanar sensor exposes its chroma.
func (s *Source) Next() *frame.PlanarImage {
	img := s.image()

	n := len(img.Cb)
	u := make([]byte, 2*n-1)
	v := make([]byte, 2*n-1)
	for i := 0; i < n; i++ {
		v[2*i] = img.Cr[i]
		u[2*i] = img.Cb[i]
		if i+1 < n {
			v[2*i+1] = img.Cb[i]
			u[2*i+1] = img.Cr[i+1]
		}
	}

	return s.track(frame.NewYUV420(s.prop.Width, s.prop.Height, s.rotation, img.Y, u, v))
}

// Capture returns a still capture of the current scene, compressed as JPEG.
func (s *Source) Capture() (*frame.PlanarImage, error) {
	data, err := frame.EncodeJPEG(s.image(), captureQuality)
	if err != nil {
		return nil, err
	}
	return s.track(frame.NewMJPEG(s.prop.Width, s.prop.Height, s.rotation, data)), nil
}

// Outstanding returns how many frames were handed out and not yet released.
func (s *Source) Outstanding() int64 {
	return s.produced.Load() - s.released.Load()
}

// Pump puts a new frame into frames at the source frame rate until ctx ends.
// Frames that are replaced before anyone takes them are released by the
// mailbox drop callback, see Release.
func (s *Source) Pump(ctx context.Context, frames *io.Mailbox[*frame.PlanarImage]) error {
	tick := time.NewTicker(time.Duration(float32(time.Second) / s.prop.FrameRate))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			stats := frames.Stats()
			logger.Debugf("pump stopped after %d frames, %d dropped", stats.Puts, stats.Drops)
			return ctx.Err()
		case <-tick.C:
		}

		if !frames.Put(s.Next()) {
			return io.ErrMailboxClosed
		}
	}
}

// Release closes a frame. It matches the drop callback of io.NewMailbox.
func Release(img *frame.PlanarImage) {
	img.Close()
}

func (s *Source) track(img *frame.PlanarImage) *frame.PlanarImage {
	s.produced.Add(1)
	img.Release = func() {
		s.released.Add(1)
	}
	return img
}

func (s *Source) image() *image.YCbCr {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.prop
	yy := make([]byte, len(s.yBase))
	cb := make([]byte, len(s.cbBase))
	cr := make([]byte, len(s.crBase))
	copy(yy, s.yBase)
	copy(cb, s.cbBase)
	copy(cr, s.crBase)

	hColorBarEnd := p.Height * 3 / 4
	wGradationEnd := p.Width * 5 / 7
	for y := hColorBarEnd; y < p.Height; y++ {
		yi := p.Width * y
		for x := wGradationEnd; x < p.Width; x++ {
			// Noise
			yy[yi+x] = uint8(s.random.Int31n(2) * 255)
		}
	}

	return &image.YCbCr{
		Y:              yy,
		YStride:        p.Width,
		Cb:             cb,
		Cr:             cr,
		CStride:        (p.Width + 1) / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, p.Width, p.Height),
	}
}

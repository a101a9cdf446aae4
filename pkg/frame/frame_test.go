package frame

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	y, u, v := []byte{1, 2, 3, 4}, []byte{5}, []byte{6}

	cases := map[string]struct {
		img   *PlanarImage
		valid bool
	}{
		"Valid":          {img: NewYUV420(2, 2, 0, y, u, v), valid: true},
		"ZeroFormat":     {img: &PlanarImage{Width: 2, Height: 2, Planes: []*Plane{{y}, {u}, {v}}}, valid: true},
		"Rotated":        {img: NewYUV420(2, 2, 270, y, u, v), valid: true},
		"FullTurn":       {img: NewYUV420(2, 2, 360, y, u, v), valid: true},
		"MJPEG":          {img: NewMJPEG(2, 2, 90, []byte{0xFF}), valid: true},
		"Nil":            {img: nil},
		"ZeroWidth":      {img: NewYUV420(0, 2, 0, y, u, v)},
		"NegativeHeight": {img: NewYUV420(2, -1, 0, y, u, v)},
		"EmptyLuma":      {img: NewYUV420(2, 2, 0, nil, u, v)},
		"EmptyChroma":    {img: NewYUV420(2, 2, 0, y, u, []byte{})},
		"AbsentPlane":    {img: &PlanarImage{Width: 2, Height: 2, Planes: []*Plane{{y}, nil, {v}}}},
		"MissingPlane":   {img: &PlanarImage{Width: 2, Height: 2, Planes: []*Plane{{y}, {u}}}},
		"OddRotation":    {img: NewYUV420(2, 2, 45, y, u, v)},
		"UnknownFormat":  {img: &PlanarImage{Width: 2, Height: 2, Format: "RGB24", Planes: []*Plane{{y}}}},
		"EmptyMJPEG":     {img: NewMJPEG(2, 2, 0, nil)},
		"SizeOverflow":   {img: NewYUV420(math.MaxInt/2, math.MaxInt/2, 0, y, u, v)},
		"MaxWidth":       {img: NewYUV420(math.MaxInt, 1, 0, y, u, v)},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := c.img.Validate()
			if c.valid {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}

			var e *InvalidFrameError
			if !errors.As(err, &e) {
				t.Fatalf("Expected InvalidFrameError, got %v", err)
			}
		})
	}
}

func TestNormalizeRotation(t *testing.T) {
	cases := map[int]int{
		0:    0,
		90:   90,
		180:  180,
		270:  270,
		360:  0,
		-90:  270,
		-180: 180,
		630:  270,
	}

	for in, expected := range cases {
		got, err := NormalizeRotation(in)
		if err != nil {
			t.Fatalf("%d: Unexpected error: %v", in, err)
		}
		if got != expected {
			t.Errorf("%d: expected %d, got %d", in, expected, got)
		}
	}

	for _, in := range []int{1, 45, -30, 359} {
		if _, err := NormalizeRotation(in); err == nil {
			t.Errorf("%d: expected an error", in)
		}
	}
}

func TestDimensions(t *testing.T) {
	cases := map[int][2]int{
		0:   {4, 2},
		90:  {2, 4},
		180: {4, 2},
		270: {2, 4},
	}

	for rotation, expected := range cases {
		img := &PlanarImage{Width: 4, Height: 2, Rotation: rotation}
		if w, h := img.Dimensions(); w != expected[0] || h != expected[1] {
			t.Errorf("%d: expected %dx%d, got %dx%d", rotation, expected[0], expected[1], w, h)
		}
	}
}

func TestClose(t *testing.T) {
	var released int
	img := NewYUV420(2, 2, 0, []byte{1, 2, 3, 4}, []byte{5}, []byte{6})
	img.Release = func() { released++ }

	img.Close()
	img.Close()
	if released != 1 {
		t.Fatalf("Expected release to run once, ran %d times", released)
	}

	var nilImg *PlanarImage
	nilImg.Close()

	// No release function is fine too.
	NewMJPEG(1, 1, 0, []byte{1}).Close()
}

func TestPlane(t *testing.T) {
	img := NewMJPEG(1, 1, 0, []byte{1, 2})

	if n := img.Plane(0).Remaining(); n != 2 {
		t.Fatalf("Expected 2 bytes, got %d", n)
	}
	if p := img.Plane(1); p != nil {
		t.Fatalf("Expected no second plane, got %v", p)
	}
	if p := img.Plane(-1); p.Remaining() != 0 || p.Bytes() != nil {
		t.Fatal("Expected a missing plane to be empty")
	}
}

func TestFormatString(t *testing.T) {
	var f Format
	if f.String() != "YUV420" {
		t.Fatalf("Expected the zero format to be YUV420, got %s", f)
	}
	if FormatNV21.String() != "NV21" {
		t.Fatalf("Expected NV21, got %s", FormatNV21)
	}
}

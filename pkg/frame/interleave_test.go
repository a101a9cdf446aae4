package frame

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/pion/freezeframe/pkg/io"
)

func TestInterleave(t *testing.T) {
	img := NewYUV420(4, 2, 0,
		[]byte{1, 2, 3, 4, 5, 6, 7, 8},
		[]byte{9, 10},
		[]byte{11, 12},
	)

	sample, err := Interleave(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := InterleavedSample{1, 2, 3, 4, 5, 6, 7, 8, 11, 12, 9, 10}
	if !reflect.DeepEqual(expected, sample) {
		t.Errorf("Wrong interleave result,\nexpected:\n%v\ngot:\n%v", expected, sample)
	}
}

func TestInterleaveLayout(t *testing.T) {
	sizes := map[string][3]int{
		"Planar":     {16, 4, 4},
		"Semiplanar": {16, 7, 7},
		"Uneven":     {6, 1, 2},
	}

	for name, sz := range sizes {
		sz := sz
		t.Run(name, func(t *testing.T) {
			y := bytes.Repeat([]byte{0x10}, sz[0])
			u := bytes.Repeat([]byte{0x20}, sz[1])
			v := bytes.Repeat([]byte{0x30}, sz[2])

			sample, err := Interleave(NewYUV420(4, 4, 0, y, u, v))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			ySize, uSize, vSize := len(y), len(u), len(v)
			if len(sample) != ySize+uSize+vSize {
				t.Fatalf("Expected %d bytes, got %d", ySize+uSize+vSize, len(sample))
			}
			if !bytes.Equal(sample[:ySize], y) {
				t.Error("Expected the sample to start with the luma plane")
			}
			if !bytes.Equal(sample[ySize:ySize+vSize], v) {
				t.Error("Expected the V plane right after luma")
			}
			if !bytes.Equal(sample[ySize+vSize:], u) {
				t.Error("Expected the U plane last")
			}
		})
	}
}

func TestInterleaveDoesNotAlias(t *testing.T) {
	y := []byte{1, 2, 3, 4}
	img := NewYUV420(2, 2, 0, y, []byte{5}, []byte{6})

	sample, err := Interleave(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sample[0] = 0xFF
	if y[0] != 1 {
		t.Fatal("Expected the sample to be a copy of the planes")
	}
}

func TestInterleaveInto(t *testing.T) {
	img := NewYUV420(2, 2, 0, []byte{1, 2, 3, 4}, []byte{5}, []byte{6})

	_, err := InterleaveInto(make([]byte, 5), img)
	var e *io.InsufficientBufferError
	if !errors.As(err, &e) {
		t.Fatalf("Expected InsufficientBufferError, got %v", err)
	}
	if e.RequiredSize != 6 {
		t.Fatalf("Expected required size 6, got %d", e.RequiredSize)
	}

	dst := make([]byte, 8)
	n, err := InterleaveInto(dst, img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 6 {
		t.Fatalf("Expected 6 bytes written, got %d", n)
	}
	if !reflect.DeepEqual(dst, []byte{1, 2, 3, 4, 6, 5, 0, 0}) {
		t.Fatalf("Unexpected buffer content %v", dst)
	}
}

func TestInterleaveInvalid(t *testing.T) {
	cases := map[string]*PlanarImage{
		"EmptyLuma":  NewYUV420(4, 2, 0, []byte{}, []byte{9, 10}, []byte{11, 12}),
		"ZeroWidth":  NewYUV420(0, 2, 0, []byte{1}, []byte{2}, []byte{3}),
		"Compressed": NewMJPEG(4, 2, 0, []byte{0xFF, 0xD8}),
	}

	for name, img := range cases {
		img := img
		t.Run(name, func(t *testing.T) {
			var e *InvalidFrameError
			if _, err := Interleave(img); !errors.As(err, &e) {
				t.Fatalf("Expected InvalidFrameError, got %v", err)
			}
		})
	}
}

func BenchmarkInterleave(b *testing.B) {
	const width, height = 1920, 1080
	ySize := width * height
	img := NewYUV420(width, height, 0, make([]byte, ySize), make([]byte, ySize/2-1), make([]byte, ySize/2-1))

	for i := 0; i < b.N; i++ {
		if _, err := Interleave(img); err != nil {
			b.Fatal(err)
		}
	}
}

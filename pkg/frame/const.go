package frame

type Format string

const (
	// YUV Formats

	// FormatYUV420 is the three plane Y, U, V layout delivered by camera analysis
	// streams. Chroma planes may be semiplanar views into the same buffer.
	FormatYUV420 Format = "YUV420"
	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"

	// Compressed Formats

	// FormatMJPEG https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPEG"
)

// String returns the format name. The zero value reports FormatYUV420.
func (f Format) String() string {
	if f == "" {
		return string(FormatYUV420)
	}
	return string(f)
}

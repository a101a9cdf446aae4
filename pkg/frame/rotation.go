package frame

// NormalizeRotation maps a clockwise rotation in degrees onto {0, 90, 180, 270}.
// Angles that are not a multiple of 90 return an InvalidFrameError.
func NormalizeRotation(degrees int) (int, error) {
	if degrees%90 != 0 {
		return 0, invalidf("rotation must be a multiple of 90, got %d", degrees)
	}

	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees, nil
}

// Validate checks that img has positive dimensions, the planes its format needs
// and a supported rotation.
func (img *PlanarImage) Validate() error {
	if img == nil {
		return invalidf("frame is nil")
	}

	if img.Width <= 0 || img.Height <= 0 {
		return invalidf("dimensions must be positive, got %dx%d", img.Width, img.Height)
	}

	var planes int
	switch img.Format {
	case "", FormatYUV420:
		planes = 3
		if _, err := frameSize420(img.Width, img.Height); err != nil {
			return invalidf("%v", err)
		}
	case FormatMJPEG:
		planes = 1
	default:
		return invalidf("%s is not supported", img.Format)
	}

	if len(img.Planes) != planes {
		return invalidf("%s needs %d planes, got %d", img.Format, planes, len(img.Planes))
	}

	for i, p := range img.Planes {
		if p == nil {
			return invalidf("plane %d is absent", i)
		}
		if p.Remaining() <= 0 {
			return invalidf("plane %d is empty", i)
		}
	}

	_, err := NormalizeRotation(img.Rotation)
	return err
}

// Dimensions returns the size of img once its rotation has been applied.
func (img *PlanarImage) Dimensions() (width, height int) {
	rotation, err := NormalizeRotation(img.Rotation)
	if err == nil && (rotation == 90 || rotation == 270) {
		return img.Height, img.Width
	}
	return img.Width, img.Height
}

package freezeframe

import (
	"github.com/pion/freezeframe/pkg/frame"
)

// Capturer handles the results of deliberate still captures. Every successful
// capture is normalized and published.
type Capturer struct {
	options
	display *Display
}

// NewCapturer creates a Capturer that publishes to display.
func NewCapturer(display *Display, opts ...Option) *Capturer {
	return &Capturer{
		options: newOptions("capturer", opts),
		display: display,
	}
}

// OnCaptureSuccess normalizes img, publishes it and closes img.
func (c *Capturer) OnCaptureSuccess(img *frame.PlanarImage) (Snapshot, error) {
	defer img.Close()

	bitmap, err := c.normalizer.Normalize(img)
	if err != nil {
		c.logger.Errorf("failed to normalize captured frame: %v", err)
		return Snapshot{}, err
	}

	snapshot := c.snapshot(SourceCapture, bitmap)
	c.display.Publish(snapshot)
	c.logger.Infof("published capture %s (%dx%d)", snapshot.ID, bitmap.Rect.Dx(), bitmap.Rect.Dy())
	return snapshot, nil
}

// OnCaptureError records a capture the camera could not complete.
func (c *Capturer) OnCaptureError(err error) {
	c.logger.Errorf("photo capture failed: %v", err)
}

package freezeframe

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/pion/freezeframe/pkg/io"
)

// Source tells which path produced a Snapshot.
type Source int

const (
	// SourceAnalysis marks a frame frozen from the analysis stream.
	SourceAnalysis Source = iota
	// SourceCapture marks a deliberate still capture.
	SourceCapture
)

func (s Source) String() string {
	switch s {
	case SourceAnalysis:
		return "analysis"
	case SourceCapture:
		return "capture"
	default:
		return "unknown"
	}
}

// Snapshot is a normalized image ready to be shown.
type Snapshot struct {
	ID     uuid.UUID
	Source Source
	Image  *image.RGBA
	Taken  time.Time
}

// Display holds the snapshot the UI should be showing. Only the most recent
// publish is kept.
type Display = io.Latest[Snapshot]

// NewDisplay creates an empty Display.
func NewDisplay() *Display {
	return io.NewLatest[Snapshot]()
}

package freezeframe

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/pion/freezeframe/pkg/frame"
	"github.com/pion/freezeframe/pkg/io"
)

// Analyzer watches the continuous analysis stream. Frames are normally closed
// untouched; after Freeze, the next frame is normalized and published to the
// display.
type Analyzer struct {
	options
	display *Display

	frozen    atomic.Bool
	frames    atomic.Uint64
	converted atomic.Uint64
	failed    atomic.Uint64
}

// AnalyzerStats counts what an Analyzer has seen.
type AnalyzerStats struct {
	Frames    uint64
	Converted uint64
	Failed    uint64
}

// NewAnalyzer creates an Analyzer that publishes to display.
func NewAnalyzer(display *Display, opts ...Option) *Analyzer {
	return &Analyzer{
		options: newOptions("analyzer", opts),
		display: display,
	}
}

// Freeze asks for the next analyzed frame to be published. Calling it again
// before a frame arrives still yields a single frame.
func (a *Analyzer) Freeze() {
	a.frozen.Store(true)
}

// Frozen reports whether a freeze is waiting for a frame.
func (a *Analyzer) Frozen() bool {
	return a.frozen.Load()
}

// Analyze handles one frame from the stream and always closes it. It returns
// the conversion error when the frame was the frozen one and could not be
// normalized. The freeze is consumed either way.
func (a *Analyzer) Analyze(img *frame.PlanarImage) error {
	defer img.Close()
	a.frames.Add(1)

	if !a.frozen.CompareAndSwap(true, false) {
		return nil
	}

	bitmap, err := a.normalizer.Normalize(img)
	if err != nil {
		a.failed.Add(1)
		a.logger.Warnf("dropping frozen frame: %v", err)
		return err
	}

	snapshot := a.snapshot(SourceAnalysis, bitmap)
	a.display.Publish(snapshot)
	a.converted.Add(1)
	a.logger.Debugf("published frozen frame %s (%dx%d)", snapshot.ID, bitmap.Rect.Dx(), bitmap.Rect.Dy())
	return nil
}

// Run takes frames from the mailbox until it is closed or ctx ends. Conversion
// errors don't stop the loop; the next frame supersedes a failed one.
func (a *Analyzer) Run(ctx context.Context, frames *io.Mailbox[*frame.PlanarImage]) error {
	for {
		img, err := frames.Take(ctx)
		if errors.Is(err, io.ErrMailboxClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		_ = a.Analyze(img)
	}
}

// Stats returns the counters of the Analyzer.
func (a *Analyzer) Stats() AnalyzerStats {
	return AnalyzerStats{
		Frames:    a.frames.Load(),
		Converted: a.converted.Load(),
		Failed:    a.failed.Load(),
	}
}

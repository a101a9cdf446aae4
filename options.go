package freezeframe

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/pion/freezeframe/internal/logging"
	pionlogging "github.com/pion/logging"
)

type options struct {
	normalizer FrameNormalizer
	logger     pionlogging.LeveledLogger
	now        func() time.Time
}

// Option configures an Analyzer or a Capturer.
type Option func(*options)

// WithNormalizer replaces the default Normalizer.
func WithNormalizer(normalizer FrameNormalizer) Option {
	return func(o *options) {
		o.normalizer = normalizer
	}
}

// WithLogger replaces the scope logger.
func WithLogger(logger pionlogging.LeveledLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(scope string, opts []Option) options {
	o := options{
		normalizer: defaultNormalizer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewLogger(scope)
	}
	return o
}

func (o *options) snapshot(source Source, img *image.RGBA) Snapshot {
	return Snapshot{
		ID:     uuid.New(),
		Source: source,
		Image:  img,
		Taken:  o.now(),
	}
}

package worldcal

import "log/slog"

// Structured logging keys and component names.
const (
	logKeyComponent = "component"
	logKeyEntry     = "entry"
	logKeyReason    = "reason"
	logKeyCount     = "count"
	logKeyValue     = "value"

	compJapaneseEras = "japanese_eras"
	compHijri        = "hijri"
)

// Option configures calendars created by [New] and the constructors that
// accept options.
type Option func(*options)

type options struct {
	eraSource        EraSource
	hijriAdjustments HijriAdjustmentSource
	logger           *slog.Logger
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithEraSource supplies Japanese era overrides. Invalid override data is
// logged and the compiled-in eras are used instead.
func WithEraSource(src EraSource) Option {
	return func(o *options) { o.eraSource = src }
}

// WithHijriAdjustmentSource supplies the day adjustment of the Hijri
// calendar. It is read once, at construction.
func WithHijriAdjustmentSource(src HijriAdjustmentSource) Option {
	return func(o *options) { o.hijriAdjustments = src }
}

// WithLogger sets the logger used to report fallbacks. The default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

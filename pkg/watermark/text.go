package watermark

import "photowatermark/pkg/log"

// FallbackText is drawn when a file carries no capture date.
const FallbackText = "Watermark"

// TextResolver picks the text to draw on an image.
type TextResolver struct {
	dates  DateSource
	logger log.Logger
}

// NewTextResolver creates a TextResolver backed by dates.
func NewTextResolver(dates DateSource, logger log.Logger) *TextResolver {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &TextResolver{dates: dates, logger: logger}
}

// Resolve returns the capture date of path, or FallbackText when there is none.
func (r *TextResolver) Resolve(path string) string {
	if date, ok := r.dates.CaptureDate(path); ok {
		return date
	}
	r.logger.Warn("no capture date, using fallback text",
		log.String("path", path), log.String("text", FallbackText))
	return FallbackText
}

package watermark

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"photowatermark/pkg/log"
)

const (
	exifTimeLayout = "2006:01:02 15:04:05"
	dateLayout     = "2006-01-02"
)

// DateSource returns the capture date of an image file formatted as
// YYYY-MM-DD. The boolean is false when no date is available, which is an
// expected outcome rather than an error.
type DateSource interface {
	CaptureDate(path string) (string, bool)
}

// ExifDateResolver reads DateTimeOriginal from a file's EXIF block.
type ExifDateResolver struct {
	logger log.Logger
}

// NewExifDateResolver creates a resolver logging through logger.
func NewExifDateResolver(logger log.Logger) *ExifDateResolver {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &ExifDateResolver{logger: logger}
}

// CaptureDate implements DateSource. The stored local time is formatted as
// is; no timezone conversion happens.
func (r *ExifDateResolver) CaptureDate(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		r.logger.Debug("open for exif failed", log.String("path", path), log.Err(err))
		return "", false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		r.logger.Debug("no exif data", log.String("path", path), log.Err(err))
		return "", false
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		r.logger.Debug("no DateTimeOriginal tag", log.String("path", path), log.Err(err))
		return "", false
	}
	raw, err := tag.StringVal()
	if err != nil {
		r.logger.Debug("DateTimeOriginal not a string", log.String("path", path), log.Err(err))
		return "", false
	}
	t, err := time.Parse(exifTimeLayout, strings.TrimSpace(strings.TrimRight(raw, "\x00")))
	if err != nil {
		r.logger.Debug("unparsable DateTimeOriginal", log.String("path", path), log.String("value", raw), log.Err(err))
		return "", false
	}
	return t.Format(dateLayout), true
}

// Package watermark stamps a single line of text onto photos.
//
// The text is the photo's EXIF capture date formatted as YYYY-MM-DD, or
// FallbackText when the photo carries none. A Processor takes a Config naming
// an image file or a directory, writes watermarked copies into a sibling
// "<dir>_watermark" directory and leaves the originals untouched:
//
//	res, err := watermark.Run(watermark.DefaultConfig("holiday"),
//		watermark.WithLogger(logger))
//
// Files are processed one at a time. A file that cannot be decoded, drawn or
// written is reported in Result.Failures and the run carries on.
package watermark

// Run validates cfg and processes its input with a new Processor.
func Run(cfg Config, opts ...Option) (Result, error) {
	p, err := NewProcessor(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return p.Run()
}

package watermark

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
}

var jpgBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// IsImageName reports whether name carries one of the supported image
// extensions, compared case-insensitively. A bare ".jpg" has no extension.
func IsImageName(name string) bool {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if len(ext) == len(base) {
		return false
	}
	return imageExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// openImage decodes path into a private buffer that can be drawn on.
func openImage(path string) (draw.Image, imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, 0, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	return cloneForDrawing(img), format, nil
}

// cloneForDrawing copies img into a drawable buffer of the same kind where
// that matters for re-encoding: paletted images keep their palette and
// 16-bit images keep their depth, so pixels the text does not touch encode
// back unchanged. Everything else becomes NRGBA.
func cloneForDrawing(img image.Image) draw.Image {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Paletted:
		dst := image.NewPaletted(b, append(color.Palette(nil), src.Palette...))
		copyRows(dst.Pix, dst.Stride, src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy())
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA64(b)
		copyRows(dst.Pix, dst.Stride, src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), 8*b.Dx(), b.Dy())
		return dst
	case *image.RGBA64, *image.Gray16:
		dst := image.NewRGBA64(b)
		draw.Draw(dst, b, img, b.Min, draw.Src)
		return dst
	}
	return imaging.Clone(img)
}

func copyRows(dst []uint8, dstStride int, src []uint8, srcStride, srcOff, rowLen, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:y*dstStride+rowLen], src[srcOff+y*srcStride:srcOff+y*srcStride+rowLen])
	}
}

// saveImage encodes img in format to path. The data is written to a
// temporary file in the same directory and renamed into place, so a failed
// encode never leaves a truncated output behind.
func saveImage(img image.Image, path string, format imaging.Format, jpegQuality int) (err error) {
	if format == imaging.JPEG {
		img = flattenToRGB(img, jpgBackground)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = imaging.Encode(tmp, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func flattenToRGB(img image.Image, bg color.NRGBA) image.Image {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Over)
	return rgba
}

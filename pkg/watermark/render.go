package watermark

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"photowatermark/pkg/log"
)

// Renderer draws a single line of text onto an image.
type Renderer struct {
	font   *opentype.Font
	margin int
}

// NewRenderer parses the font at fontPath, falling back to the embedded Go
// Bold face when fontPath is empty or unusable.
func NewRenderer(fontPath string, logger log.Logger) (*Renderer, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	fnt, err := loadFontWithFallback(fontPath, logger)
	if err != nil {
		return nil, err
	}
	return &Renderer{font: fnt, margin: DefaultMargin}, nil
}

// textSize returns the advance width of text and the line height (ascent
// plus descent) of the face at size.
func (r *Renderer) textSize(text string, size int) (int, int, error) {
	face, err := r.newFace(size)
	if err != nil {
		return 0, 0, err
	}
	defer face.Close()
	w, h := measure(face, text)
	return w, h, nil
}

// Render draws text onto dst at the position chosen by anchor and returns
// the ink bounds of what was drawn. Paletted destinations map the blended
// text colour to their nearest palette entry.
func (r *Renderer) Render(dst draw.Image, text string, size int, c color.NRGBA, anchor Anchor) (image.Rectangle, error) {
	face, err := r.newFace(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer face.Close()

	textW, textH := measure(face, text)
	b := dst.Bounds()
	pt := Place(b.Dx(), b.Dy(), textW, textH, anchor, r.margin).Add(b.Min)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	ink, _ := d.BoundString(text)
	d.DrawString(text)

	return image.Rect(ink.Min.X.Floor(), ink.Min.Y.Floor(), ink.Max.X.Ceil(), ink.Max.Y.Ceil()), nil
}

func (r *Renderer) newFace(size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", size)
	}
	return opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func measure(face font.Face, text string) (int, int) {
	m := face.Metrics()
	return fixedToInt(font.MeasureString(face, text)), fixedToInt(m.Ascent + m.Descent)
}

func loadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

func loadFontWithFallback(path string, logger log.Logger) (*opentype.Font, error) {
	if strings.TrimSpace(path) != "" {
		fnt, err := loadFont(path)
		if err == nil {
			return fnt, nil
		}
		logger.Warn("failed to load font, falling back to Go Bold", log.String("font", path), log.Err(err))
	}
	return opentype.Parse(gobold.TTF)
}

func fixedToInt(v fixed.Int26_6) int {
	return int(math.Ceil(float64(v) / 64.0))
}

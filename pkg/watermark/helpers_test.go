package watermark

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"photowatermark/pkg/log"
)

type logEntry struct {
	level  string
	msg    string
	fields []log.Field
}

// recordingLogger captures every event so tests can assert on which events
// fired and at which level.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) add(level, msg string, fields []log.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (r *recordingLogger) Debug(msg string, fields ...log.Field) { r.add("debug", msg, fields) }
func (r *recordingLogger) Info(msg string, fields ...log.Field)  { r.add("info", msg, fields) }
func (r *recordingLogger) Warn(msg string, fields ...log.Field)  { r.add("warn", msg, fields) }
func (r *recordingLogger) Error(msg string, fields ...log.Field) { r.add("error", msg, fields) }

func (r *recordingLogger) count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

// mentions reports whether any event carries a field value containing s.
func (r *recordingLogger) mentions(s string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		for _, f := range e.fields {
			if v, ok := f.Value.(string); ok && strings.Contains(v, s) {
				return true
			}
		}
	}
	return false
}

type fakeDates struct {
	date string
	ok   bool
}

func (f fakeDates) CaptureDate(string) (string, bool) { return f.date, f.ok }

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, color.NRGBA{200, 220, 240, 255})); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	writeFile(t, path, buf.Bytes())
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// jpegWithDateTimeOriginal builds a JPEG whose APP1 segment holds a minimal
// big-endian TIFF structure: IFD0 with an Exif IFD pointer and an Exif IFD
// with a single DateTimeOriginal entry.
func jpegWithDateTimeOriginal(t *testing.T, value string) []byte {
	t.Helper()
	var body bytes.Buffer
	if err := jpeg.Encode(&body, solidImage(64, 48, color.NRGBA{90, 90, 90, 255}), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	str := append([]byte(value), 0)
	be := binary.BigEndian
	tiff := new(bytes.Buffer)
	put16 := func(v uint16) { _ = binary.Write(tiff, be, v) }
	put32 := func(v uint32) { _ = binary.Write(tiff, be, v) }

	tiff.WriteString("MM")
	put16(42)
	put32(8)
	// IFD0 at 8: one entry, ends at 26.
	put16(1)
	put16(0x8769)
	put16(4)
	put32(1)
	put32(26)
	put32(0)
	// Exif IFD at 26: one entry, ends at 44.
	put16(1)
	put16(0x9003)
	put16(2)
	put32(uint32(len(str)))
	put32(44)
	put32(0)
	tiff.Write(str)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&out, be, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(body.Bytes()[2:])
	return out.Bytes()
}

package watermark

import (
	"errors"
	"image"
	"testing"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   image.Point
	}{
		{TopLeft, image.Pt(10, 30)},
		{TopCenter, image.Pt(450, 30)},
		{TopRight, image.Pt(890, 30)},
		{MiddleLeft, image.Pt(10, 410)},
		{MiddleCenter, image.Pt(450, 410)},
		{MiddleRight, image.Pt(890, 410)},
		{BottomLeft, image.Pt(10, 790)},
		{BottomCenter, image.Pt(450, 790)},
		{BottomRight, image.Pt(890, 790)},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			got := Place(1000, 800, 100, 20, tt.anchor, DefaultMargin)
			if got != tt.want {
				t.Errorf("Place(%v) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestPlaceCoversEveryAnchor(t *testing.T) {
	if got := len(Anchors()); got != 9 {
		t.Fatalf("len(Anchors()) = %d, want 9", got)
	}
	seen := map[image.Point]bool{}
	for _, a := range Anchors() {
		seen[Place(1000, 800, 100, 20, a, DefaultMargin)] = true
	}
	if len(seen) != 9 {
		t.Errorf("distinct placements = %d, want 9", len(seen))
	}
}

// Text wider than the image is not clamped: the origin goes negative.
func TestPlaceOversizedTextIsNotClamped(t *testing.T) {
	got := Place(100, 50, 300, 80, MiddleCenter, DefaultMargin)
	if want := image.Pt(-100, 65); got != want {
		t.Errorf("Place = %v, want %v", got, want)
	}
	got = Place(100, 50, 300, 80, BottomRight, DefaultMargin)
	if want := image.Pt(-210, 40); got != want {
		t.Errorf("Place = %v, want %v", got, want)
	}
}

func TestPlaceInvalidAnchorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid anchor")
		}
	}()
	Place(10, 10, 1, 1, Anchor(42), DefaultMargin)
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{in: "bottom_right", want: BottomRight},
		{in: "BOTTOM_RIGHT", want: BottomRight},
		{in: "top-center", want: TopCenter},
		{in: " Middle_Left ", want: MiddleLeft},
		{in: "center", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("ParseAnchor(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnchor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnchorStringRoundTrip(t *testing.T) {
	for _, a := range Anchors() {
		got, err := ParseAnchor(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAnchor(%q) = %v, %v", a.String(), got, err)
		}
	}
	if s := Anchor(-1).String(); s != "Anchor(-1)" {
		t.Errorf("String() = %q", s)
	}
}

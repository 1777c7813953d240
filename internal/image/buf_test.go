package image

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 100, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewImageBuf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", buf.Width(), tt.width)
			}
			if buf.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", buf.Height(), tt.height)
			}
			if c := buf.NRGBAAt(tt.width-1, tt.height-1); c != (color.NRGBA{}) {
				t.Errorf("new buffer pixel = %v, want transparent", c)
			}
		})
	}
}

func TestImageBuf_Clone(t *testing.T) {
	original, err := NewImageBuf(10, 10)
	if err != nil {
		t.Fatalf("Failed to create original: %v", err)
	}

	want := color.NRGBA{R: 255, G: 128, B: 64, A: 200}
	original.ToStdImage().SetNRGBA(5, 5, want)

	clone := original.Clone()

	if clone.Width() != original.Width() || clone.Height() != original.Height() {
		t.Error("Clone dimensions don't match")
	}
	if got := clone.NRGBAAt(5, 5); got != want {
		t.Errorf("clone pixel = %v, want %v", got, want)
	}

	// Modify clone and verify original is unchanged
	clone.Fill(color.NRGBA{})
	if got := original.NRGBAAt(5, 5); got != want {
		t.Error("Modifying clone affected original")
	}
}

func TestImageBuf_RowBytes(t *testing.T) {
	buf, _ := NewImageBuf(10, 10)

	row := buf.rowBytes(5)
	if len(row) != 40 { // 10 * 4 bytes per pixel
		t.Errorf("rowBytes(5) length = %d, want 40", len(row))
	}

	if buf.rowBytes(-1) != nil {
		t.Error("rowBytes(-1) should return nil")
	}
	if buf.rowBytes(10) != nil {
		t.Error("rowBytes(10) should return nil")
	}
}

func TestImageBuf_NRGBAAt(t *testing.T) {
	buf, _ := NewImageBuf(10, 10)
	want := color.NRGBA{R: 200, G: 150, B: 100, A: 50}
	buf.ToStdImage().SetNRGBA(5, 5, want)

	if got := buf.NRGBAAt(5, 5); got != want {
		t.Errorf("NRGBAAt(5, 5) = %v, want %v", got, want)
	}
	if got := buf.NRGBAAt(4, 5); got != (color.NRGBA{}) {
		t.Errorf("NRGBAAt(4, 5) = %v, want transparent", got)
	}

	outside := [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}}
	for _, p := range outside {
		if got := buf.NRGBAAt(p[0], p[1]); got != (color.NRGBA{}) {
			t.Errorf("NRGBAAt(%d, %d) = %v, want transparent", p[0], p[1], got)
		}
	}
}

func TestImageBuf_Fill(t *testing.T) {
	buf, _ := NewImageBuf(7, 3)
	c := color.NRGBA{R: 100, G: 150, B: 200, A: 250}

	buf.Fill(c)

	for y := range 3 {
		for x := range 7 {
			if got := buf.NRGBAAt(x, y); got != c {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func BenchmarkNewImageBuf(b *testing.B) {
	for b.Loop() {
		_, _ = NewImageBuf(1920, 1080)
	}
}

func BenchmarkImageBuf_Fill(b *testing.B) {
	buf, _ := NewImageBuf(1920, 1080)
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	for b.Loop() {
		buf.Fill(c)
	}
}

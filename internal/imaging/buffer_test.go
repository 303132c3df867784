package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image filled with one color
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{255, 128, 64, 255})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if buf.Width() != 40 || buf.Height() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", buf.Width(), buf.Height())
	}

	r, g, b, a := buf.RGBA(20, 15)
	if r != 255 || g != 128 || b != 64 || a != 255 {
		t.Errorf("RGBA(20,15): got (%d,%d,%d,%d), want (255,128,64,255)", r, g, b, a)
	}
}

func TestFromImage_Pattern(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(3, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(3, 1, color.RGBA{10, 20, 30, 40})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	tests := []struct {
		name       string
		x, y       int
		r, g, b, a uint8
	}{
		{"top-left red", 0, 0, 255, 0, 0, 255},
		{"top-right green", 3, 0, 0, 255, 0, 255},
		{"bottom-left blue", 0, 1, 0, 0, 255, 255},
		{"unset pixel zero", 1, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := buf.RGBA(tt.x, tt.y)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA(%d,%d): got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.x, tt.y, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// An image whose bounds do not start at (0,0) must still map its
	// top-left pixel to buffer coordinate (0,0).
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.Set(5, 7, color.RGBA{1, 2, 3, 255})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", buf.Width(), buf.Height())
	}
	r, g, b, _ := buf.RGBA(0, 0)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("RGBA(0,0): got (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestFromImage_SixteenBit(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 2, 2))
	img.SetRGBA64(0, 0, color.RGBA64{R: 0xFFFF, G: 0x8080, B: 0x0000, A: 0xFFFF})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	r, g, b, a := buf.RGBA(0, 0)
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("RGBA(0,0): got (%d,%d,%d,%d), want (255,128,0,255)", r, g, b, a)
	}
}

func TestFromImage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil image", nil},
		{"zero area", image.NewRGBA(image.Rect(0, 0, 0, 0))},
		{"zero width", image.NewRGBA(image.Rect(0, 0, 0, 10))},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 10, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromImage(tt.img)
			if err == nil {
				t.Fatal("FromImage should fail")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error should wrap ErrInvalidInput, got: %v", err)
			}
		})
	}
}

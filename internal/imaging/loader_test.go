package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImage writes a solid-color PNG into t's temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestNewBufferCache(t *testing.T) {
	cache := NewBufferCache(Options{})
	if cache == nil {
		t.Fatal("NewBufferCache returned nil")
	}
	if cache.buffers == nil {
		t.Fatal("NewBufferCache did not initialize buffers map")
	}
}

func TestBufferCache_Load(t *testing.T) {
	cache := NewBufferCache(Options{})
	path := createTestImage(t, 100, 50, color.RGBA{255, 0, 0, 255})

	buf1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if buf1.Width() != 100 || buf1.Height() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", buf1.Width(), buf1.Height())
	}

	r, g, b, _ := buf1.RGBA(50, 25)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("pixel: got (%d,%d,%d), want (255,0,0)", r, g, b)
	}

	// Second load must come from the cache
	buf2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if buf1 != buf2 {
		t.Error("second Load should return the cached buffer")
	}
}

func TestBufferCache_LoadErrors(t *testing.T) {
	cache := NewBufferCache(Options{})

	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}

	notImage := filepath.Join(t.TempDir(), "not-image.png")
	if err := os.WriteFile(notImage, []byte("definitely not a PNG"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(notImage); err == nil {
		t.Error("Load should fail for a non-image file")
	}
}

func TestBufferCache_EvictAndClear(t *testing.T) {
	cache := NewBufferCache(Options{})
	path := createTestImage(t, 10, 10, color.RGBA{0, 0, 255, 255})

	buf1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	buf2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if buf1 == buf2 {
		t.Error("Load after Evict should decode a fresh buffer")
	}

	cache.Clear()
	buf3, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if buf2 == buf3 {
		t.Error("Load after Clear should decode a fresh buffer")
	}

	// Evicting an unknown path is a no-op
	cache.Evict("never-loaded.png")
}

func TestBufferCache_ConcurrentLoad(t *testing.T) {
	cache := NewBufferCache(Options{})
	path := createTestImage(t, 20, 20, color.RGBA{0, 255, 0, 255})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestDecode_MaxDimension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	tests := []struct {
		name       string
		maxDim     int
		wantWidth  int
		wantHeight int
	}{
		{"no limit", 0, 100, 50},
		{"limit above size", 200, 100, 50},
		{"limit shrinks, aspect kept", 50, 50, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Decode(bytes.NewReader(data.Bytes()), Options{MaxDimension: tt.maxDim})
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if buf.Width() != tt.wantWidth || buf.Height() != tt.wantHeight {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					buf.Width(), buf.Height(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestDecode_BlurPreservesDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	buf, err := Decode(bytes.NewReader(data.Bytes()), Options{BlurRadius: 2})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if buf.Width() != 30 || buf.Height() != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", buf.Width(), buf.Height())
	}

	// Blurring a solid color must not change interior pixels
	r, g, b, _ := buf.RGBA(15, 10)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("interior pixel after blur: got (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

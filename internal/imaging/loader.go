package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Options controls the normalization applied while loading an image into a
// PixelBuffer. The zero value disables all normalization.
type Options struct {
	// MaxDimension, when positive, downscales any image whose longest side
	// exceeds it so that the longest side equals MaxDimension. Aspect ratio
	// is preserved. Downscaling is deterministic: the same input always
	// produces the same buffer.
	MaxDimension int

	// BlurRadius, when positive, applies a Gaussian blur with this radius
	// before conversion. A small radius (1-2) suppresses sensor noise and
	// JPEG artifacts that would otherwise fragment regions.
	BlurRadius float64
}

// BufferCache provides thread-safe caching of loaded pixel buffers to avoid
// redundant disk reads and decodes.
//
// Buffers are keyed by the exact path string passed to Load. Different paths
// to the same file (relative vs absolute) result in separate entries.
// Cached buffers remain in memory until Evict or Clear is called.
//
// BufferCache is safe for concurrent use by multiple goroutines.
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*PixelBuffer
	opts    Options
}

// NewBufferCache creates an empty cache that applies opts to every image it
// loads. The returned cache is ready for immediate use and is safe for
// concurrent access.
func NewBufferCache(opts Options) *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*PixelBuffer),
		opts:    opts,
	}
}

// Load retrieves a buffer from the cache or loads it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The cache's
// Options are applied before conversion, so the cached buffer is already
// normalized.
func (c *BufferCache) Load(path string) (*PixelBuffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	buf, err := Decode(f, c.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache, freeing the associated memory.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*PixelBuffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path. If the path is
// not cached, Evict does nothing.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Decode reads one image from r, applies opts, and converts the result to a
// PixelBuffer. It is the uncached counterpart of BufferCache.Load for
// callers that already hold a byte stream.
func Decode(r io.Reader, opts Options) (*PixelBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(normalize(img, opts))
}

// normalize applies the configured downscale and denoise steps.
//
// Downscaling uses Lanczos resampling via the imaging package; denoising
// uses a Gaussian blur from bild. Both are pure functions of their input,
// preserving the engine's determinism guarantee.
func normalize(img image.Image, opts Options) image.Image {
	if opts.MaxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
			img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		}
	}
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	return img
}

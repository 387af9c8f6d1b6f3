package output

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageWriter collects pixels in an RGBA buffer and saves it as a PNG file.
// Colors are on a 0..255 scale and are clamped on write.
type ImageWriter struct {
	path string
	img  *image.RGBA
}

// NewImageWriter creates an nx by ny black image that flushes to path
func NewImageWriter(path string, nx, ny int) *ImageWriter {
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &ImageWriter{path: path, img: img}
}

// Resolution returns the image size in pixels
func (w *ImageWriter) Resolution() (nx, ny int) {
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}

// WritePixel sets one pixel. Distinct pixels may be written concurrently.
func (w *ImageWriter) WritePixel(col, row int, c core.Vec3) {
	c = c.Clamp(0, 255)
	w.img.SetRGBA(col, row, color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255})
}

// Flush encodes the image as PNG, creating the parent directory if needed
func (w *ImageWriter) Flush() error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := gg.NewContextForRGBA(w.img).SavePNG(w.path); err != nil {
		return fmt.Errorf("save %s: %w", w.path, err)
	}
	return nil
}

// Path returns the file the image is saved to
func (w *ImageWriter) Path() string {
	return w.path
}

// Image returns the underlying buffer
func (w *ImageWriter) Image() *image.RGBA {
	return w.img
}

// AverageLuminance returns the mean Rec. 709 relative luminance of img in [0, 1]
func AverageLuminance(img image.Image) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}

	total := 0.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(bl)/0xffff
		}
	}
	return total / float64(b.Dx()*b.Dy())
}

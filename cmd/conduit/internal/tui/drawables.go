package tui

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/charmbracelet/lipgloss"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// drawableExts are tried in order when a drawable name has no extension.
var drawableExts = []string{".png", ".webp", ".bmp", ".tiff"}

// Drawables loads images by name and renders them as terminal thumbnails.
// Thumbnails are cached per name.
type Drawables struct {
	fsys  fs.FS
	width int

	mu    sync.Mutex
	cache map[string][]string
}

// NewDrawables returns a loader reading from fsys. Thumbnails are width
// cells wide. A nil fsys makes every lookup fail.
func NewDrawables(fsys fs.FS, width int) *Drawables {
	if width <= 0 {
		width = 8
	}
	return &Drawables{fsys: fsys, width: width, cache: make(map[string][]string)}
}

// Thumbnail returns the lines of the thumbnail of the drawable called name.
// The returned slice is a copy.
func (d *Drawables) Thumbnail(name string) ([]string, error) {
	if d == nil {
		return nil, fmt.Errorf("drawable %q: no drawables configured", name)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if lines, ok := d.cache[name]; ok {
		return append([]string(nil), lines...), nil
	}
	img, err := d.decode(name)
	if err != nil {
		return nil, err
	}
	lines := halfBlocks(scale(img, d.width))
	d.cache[name] = lines
	return append([]string(nil), lines...), nil
}

func (d *Drawables) decode(name string) (image.Image, error) {
	if d.fsys == nil {
		return nil, fmt.Errorf("drawable %q: %w", name, fs.ErrNotExist)
	}
	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range drawableExts {
			candidates = append(candidates, name+ext)
		}
	}
	for _, file := range candidates {
		f, err := d.fsys.Open(file)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("drawable %q: %w", name, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("drawable %q: %w", name, fs.ErrNotExist)
}

// scale resizes img to width pixels, keeping the aspect ratio. The height
// is rounded up to an even number so every cell covers two pixels.
func scale(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := 2
	if b.Dx() > 0 {
		height = max(2, (b.Dy()*width/b.Dx()+1)&^1)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// halfBlocks renders two pixel rows per line using the upper half block,
// with the top pixel as foreground and the bottom pixel as background.
func halfBlocks(img *image.RGBA) []string {
	b := img.Bounds()
	var lines []string
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var line string
		for x := b.Min.X; x < b.Max.X; x++ {
			line += lipgloss.NewStyle().
				Foreground(hex(img.At(x, y))).
				Background(hex(img.At(x, y+1))).
				Render("▀")
		}
		lines = append(lines, line)
	}
	return lines
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

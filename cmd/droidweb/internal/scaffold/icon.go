package scaffold

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Density is one launcher icon bucket.
type Density struct {
	Name string
	Size int
}

// Densities lists the mipmap buckets with their launcher icon size in pixels.
var Densities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// IconName is the launcher icon resource referenced by the manifest.
const IconName = "ic_launcher.png"

// DecodeIcon reads a PNG source icon.
func DecodeIcon(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("icon has empty bounds")
	}
	return img, nil
}

// DefaultIcon returns the placeholder launcher icon: a blue tile with a
// white frame.
func DefaultIcon() image.Image {
	const size = 192
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	blue := color.RGBA{0x34, 0x98, 0xdb, 0xff}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	draw.Draw(img, img.Bounds(), &image.Uniform{blue}, image.Point{}, draw.Src)

	inner := image.Rect(size/4, size/4, size*3/4, size*3/4)
	draw.Draw(img, inner, &image.Uniform{white}, image.Point{}, draw.Src)
	draw.Draw(img, inner.Inset(size/16), &image.Uniform{blue}, image.Point{}, draw.Src)
	return img
}

// Resize scales src to a size x size square.
func Resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// WriteIcons writes src as mipmap-<density>/ic_launcher.png under resDir
// for every density. Densities are written concurrently.
func WriteIcons(resDir string, src image.Image) ([]string, error) {
	paths := make([]string, len(Densities))

	var g errgroup.Group
	for i, d := range Densities {
		dir := filepath.Join(resDir, "mipmap-"+d.Name)
		dest := filepath.Join(dir, IconName)
		paths[i] = dest

		d := d
		g.Go(func() error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			f, err := os.Create(dest)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", dest, err)
			}
			if err := png.Encode(f, Resize(src, d.Size)); err != nil {
				f.Close()
				return fmt.Errorf("failed to encode %s: %w", dest, err)
			}
			return f.Close()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// HasIcons reports whether every density already has a launcher icon.
func HasIcons(resDir string) bool {
	for _, d := range Densities {
		if _, err := os.Stat(filepath.Join(resDir, "mipmap-"+d.Name, IconName)); err != nil {
			return false
		}
	}
	return true
}

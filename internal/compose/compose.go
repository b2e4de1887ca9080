// Package compose renders the composited view (background photo plus optional
// sticker) and rasterizes it into files or data URLs.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/state"
	"github.com/jask/stickersmash/internal/sticker"
)

// StickerSize is the edge length of the overlaid sticker in view units.
const StickerSize = 40

// StickerOrigin is the top-left corner of the sticker within the view.
var StickerOrigin = image.Pt((capability.ViewWidth-StickerSize)/2, 90)

var ErrUnknownSticker = errors.New("unknown sticker")

type Compositor struct {
	Catalog *sticker.Catalog
	// Placeholder is shown when no photo has been picked. Nil uses the built-in gradient.
	Placeholder image.Image
	// CacheDir receives the files produced by Rasterize.
	CacheDir string
}

// Compose draws scene at the view's logical size.
func (c *Compositor) Compose(scene state.Scene) (*image.RGBA, error) {
	view := image.Rect(0, 0, capability.ViewWidth, capability.ViewHeight)
	dst := image.NewRGBA(view)

	bg, err := c.background(scene.Background)
	if err != nil {
		return nil, err
	}
	drawCover(dst, bg)

	if scene.Sticker != "" {
		s, ok := c.Catalog.Lookup(scene.Sticker)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSticker, scene.Sticker)
		}
		art, err := s.Image()
		if err != nil {
			return nil, fmt.Errorf("sticker %s: %w", scene.Sticker, err)
		}
		target := image.Rectangle{Min: StickerOrigin, Max: StickerOrigin.Add(image.Pt(StickerSize, StickerSize))}
		xdraw.CatmullRom.Scale(dst, target, art, art.Bounds(), draw.Over, nil)
	}
	return dst, nil
}

func (c *Compositor) background(ref state.ImageRef) (image.Image, error) {
	if ref == "" {
		if c.Placeholder != nil {
			return c.Placeholder, nil
		}
		return Placeholder(), nil
	}
	return LoadImage(string(ref))
}

// LoadImage decodes the image behind uri. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func LoadImage(uri string) (image.Image, error) {
	path, err := capability.PathFromURI(uri)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// drawCover scales src to fill dst completely, cropping the overflow evenly.
func drawCover(dst *image.RGBA, src image.Image) {
	db := dst.Bounds()
	sb := CoverCrop(src.Bounds(), db.Dx(), db.Dy())
	xdraw.CatmullRom.Scale(dst, db, src, sb, draw.Src, nil)
}

// CoverCrop returns the centered sub-rectangle of b with the aspect ratio w:h.
func CoverCrop(b image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || b.Empty() {
		return b
	}
	bw, bh := b.Dx(), b.Dy()
	// Compare bw/bh with w/h without floating point.
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

// Placeholder is the default background: a dark vertical gradient with a soft
// horizon band, sized to the view.
func Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, capability.ViewWidth, capability.ViewHeight))
	top := color.RGBA{R: 0x25, G: 0x29, B: 0x2e, A: 0xff}
	bottom := color.RGBA{R: 0x4a, G: 0x6f, B: 0x8a, A: 0xff}
	h := capability.ViewHeight
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		if y > h*2/3 && y < h*2/3+6 {
			row = color.RGBA{R: 0xf2, G: 0xb8, B: 0x6b, A: 0xff}
		}
		draw.Draw(img, image.Rect(0, y, capability.ViewWidth, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

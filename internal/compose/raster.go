package compose

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/state"
)

// Rasterize composes scene, scales it to opts and writes it into CacheDir.
// Quality 1 produces a lossless PNG; anything lower produces a JPEG.
func (c *Compositor) Rasterize(ctx context.Context, scene state.Scene, opts capability.RasterOptions) (string, error) {
	img, err := c.render(ctx, scene, opts)
	if err != nil {
		return "", err
	}
	if c.CacheDir == "" {
		return "", fmt.Errorf("rasterize: cache dir not configured")
	}
	if err := os.MkdirAll(c.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir cache dir: %w", err)
	}
	ext := ".jpg"
	if opts.Quality >= 1 {
		ext = ".png"
	}
	path := filepath.Join(c.CacheDir, "capture-"+uuid.NewString()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create capture: %w", err)
	}
	if err := Encode(f, img, opts.Quality); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close capture: %w", err)
	}
	return capability.FileURI(path), nil
}

// RasterizeDOM composes scene and returns it as a JPEG data URL.
func (c *Compositor) RasterizeDOM(ctx context.Context, scene state.Scene, opts capability.RasterOptions) (string, error) {
	img, err := c.render(ctx, scene, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality(opts.Quality)}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (c *Compositor) render(ctx context.Context, scene state.Scene, opts capability.RasterOptions) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := c.Compose(scene)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	w, h := OutputSize(opts)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		return img, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// OutputSize resolves the pixel size for opts, keeping the view's aspect ratio
// for any dimension left at zero.
func OutputSize(opts capability.RasterOptions) (int, int) {
	w, h := opts.Width, opts.Height
	switch {
	case w <= 0 && h <= 0:
		return capability.ViewWidth, capability.ViewHeight
	case w <= 0:
		w = (h*capability.ViewWidth + capability.ViewHeight/2) / capability.ViewHeight
	case h <= 0:
		h = (w*capability.ViewHeight + capability.ViewWidth/2) / capability.ViewWidth
	}
	return max(1, w), max(1, h)
}

// Encode writes img as PNG when quality is 1 or more, JPEG otherwise.
func Encode(w io.Writer, img image.Image, quality float64) error {
	if quality >= 1 {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality(quality)}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// JPEGQuality maps a 0..1 quality onto the encoder's 1..100 scale.
func JPEGQuality(q float64) int {
	v := int(q*100 + 0.5)
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

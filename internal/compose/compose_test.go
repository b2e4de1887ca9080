package compose

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/state"
	"github.com/jask/stickersmash/internal/sticker"
)

func solidPNG(t *testing.T, dir string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func newCompositor(t *testing.T) *Compositor {
	t.Helper()
	return &Compositor{Catalog: sticker.NewCatalog(sticker.Builtins()...), CacheDir: t.TempDir()}
}

func near(a, b uint32) bool {
	d := int(a>>8) - int(b>>8)
	return d > -4 && d < 4
}

func TestComposePlaceholderWithoutBackground(t *testing.T) {
	c := newCompositor(t)
	img, err := c.Compose(state.Scene{})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 320, 440), img.Bounds())

	want := Placeholder().At(10, 10)
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := img.At(10, 10).RGBA()
	require.True(t, near(wr, gr) && near(wg, gg) && near(wb, gb), "placeholder pixel mismatch")
}

func TestComposeCoversViewWithPhoto(t *testing.T) {
	c := newCompositor(t)
	path := solidPNG(t, t.TempDir(), 1000, 500, color.RGBA{G: 200, A: 255})

	img, err := c.Compose(state.Scene{Background: state.ImageRef(capability.FileURI(path))})
	require.NoError(t, err)
	for _, pt := range []image.Point{{0, 0}, {319, 439}, {160, 300}} {
		_, g, _, a := img.At(pt.X, pt.Y).RGBA()
		require.True(t, near(a, 0xffff), "pixel %v not opaque", pt)
		require.True(t, near(g, 200<<8), "pixel %v not covered by photo", pt)
	}
}

func TestComposeDrawsStickerAtOrigin(t *testing.T) {
	c := newCompositor(t)
	path := solidPNG(t, t.TempDir(), 64, 64, color.RGBA{B: 255, A: 255})

	plain, err := c.Compose(state.Scene{Background: state.ImageRef(path)})
	require.NoError(t, err)
	withSticker, err := c.Compose(state.Scene{Background: state.ImageRef(path), Sticker: "emoji1"})
	require.NoError(t, err)

	center := StickerOrigin.Add(image.Pt(StickerSize/2, StickerSize/2+6))
	require.NotEqual(t, plain.At(center.X, center.Y), withSticker.At(center.X, center.Y))
	require.Equal(t, plain.At(5, 5), withSticker.At(5, 5))
}

func TestComposeUnknownSticker(t *testing.T) {
	c := newCompositor(t)
	_, err := c.Compose(state.Scene{Sticker: "emoji42"})
	require.True(t, errors.Is(err, ErrUnknownSticker))
}

func TestComposeMissingBackground(t *testing.T) {
	c := newCompositor(t)
	_, err := c.Compose(state.Scene{Background: "/does/not/exist.png"})
	require.Error(t, err)
}

func TestRasterizeFullQualityWritesPNG(t *testing.T) {
	c := newCompositor(t)
	uri, err := c.Rasterize(context.Background(), state.Scene{Sticker: "emoji3"}, capability.RasterOptions{Height: 440, Quality: 1})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "file://"))

	path, err := capability.PathFromURI(uri)
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 320, cfg.Width)
	require.Equal(t, 440, cfg.Height)
}

func TestRasterizeLowerQualityWritesScaledJPEG(t *testing.T) {
	c := newCompositor(t)
	uri, err := c.Rasterize(context.Background(), state.Scene{}, capability.RasterOptions{Height: 880, Quality: 0.5})
	require.NoError(t, err)
	path, err := capability.PathFromURI(uri)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	require.Equal(t, 640, cfg.Width)
	require.Equal(t, 880, cfg.Height)
}

func TestRasterizeRequiresCacheDir(t *testing.T) {
	c := &Compositor{Catalog: sticker.NewCatalog()}
	_, err := c.Rasterize(context.Background(), state.Scene{}, capability.RasterOptions{Quality: 1})
	require.Error(t, err)
}

func TestRasterizeHonoursCancelledContext(t *testing.T) {
	c := newCompositor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.RasterizeDOM(ctx, state.Scene{}, capability.RasterOptions{Quality: 0.95})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRasterizeDOMReturnsJPEGDataURL(t *testing.T) {
	c := newCompositor(t)
	dataURL, err := c.RasterizeDOM(context.Background(), state.Scene{Sticker: "emoji2"}, capability.RasterOptions{Quality: 0.95, Width: 320, Height: 440})
	require.NoError(t, err)

	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 320, 440), img.Bounds())
}

func TestOutputSize(t *testing.T) {
	cases := []struct {
		opts capability.RasterOptions
		w, h int
	}{
		{capability.RasterOptions{}, 320, 440},
		{capability.RasterOptions{Height: 440}, 320, 440},
		{capability.RasterOptions{Height: 220}, 160, 220},
		{capability.RasterOptions{Width: 640}, 640, 880},
		{capability.RasterOptions{Width: 100, Height: 100}, 100, 100},
	}
	for _, tc := range cases {
		w, h := OutputSize(tc.opts)
		if w != tc.w || h != tc.h {
			t.Errorf("OutputSize(%+v) = %dx%d, want %dx%d", tc.opts, w, h, tc.w, tc.h)
		}
	}
}

func TestCoverCrop(t *testing.T) {
	wide := CoverCrop(image.Rect(0, 0, 1000, 440), 320, 440)
	require.Equal(t, image.Rect(340, 0, 660, 440), wide)

	tall := CoverCrop(image.Rect(0, 0, 320, 1000), 320, 440)
	require.Equal(t, image.Rect(0, 280, 320, 720), tall)

	same := CoverCrop(image.Rect(0, 0, 640, 880), 320, 440)
	require.Equal(t, image.Rect(0, 0, 640, 880), same)
}

func TestJPEGQuality(t *testing.T) {
	require.Equal(t, 95, JPEGQuality(0.95))
	require.Equal(t, 100, JPEGQuality(1))
	require.Equal(t, 1, JPEGQuality(0))
	require.Equal(t, 100, JPEGQuality(3))
}

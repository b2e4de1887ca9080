package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/state"
)

const halfBlock = "▀"

// previewSize fits the view's aspect ratio into maxCols x maxRows cells. Each
// cell holds two square pixels stacked vertically.
func previewSize(maxCols, maxRows int) (int, int) {
	if maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	rows := maxRows
	cols := rows * 2 * capability.ViewWidth / capability.ViewHeight
	if cols > maxCols {
		cols = maxCols
		rows = cols * capability.ViewHeight / (2 * capability.ViewWidth)
	}
	return max(1, cols), max(1, rows)
}

// renderHalfBlocks scales img down to cols x rows cells.
func renderHalfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := small.RGBAAt(x, 2*y)
			bottom := small.RGBAAt(x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render(halfBlock))
		}
	}
	return b.String()
}

// thumbnail flattens a possibly transparent sticker onto bg before rendering.
func thumbnail(img image.Image, cols, rows int, bg color.RGBA) string {
	if img == nil {
		return ""
	}
	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
	return renderHalfBlocks(flat, cols, rows)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

type previewKey struct {
	scene      state.Scene
	cols, rows int
}

// previewCache keeps the last rendered preview so redraws that do not change
// the scene or the terminal size skip compositing.
type previewCache struct {
	key   previewKey
	out   string
	err   error
	valid bool
}

func (c *previewCache) get(composer Composer, scene state.Scene, cols, rows int) (string, error) {
	key := previewKey{scene: scene, cols: cols, rows: rows}
	if c.valid && c.key == key {
		return c.out, c.err
	}
	img, err := composer.Compose(scene)
	out := ""
	if err == nil {
		out = renderHalfBlocks(img, cols, rows)
	}
	c.key, c.out, c.err, c.valid = key, out, err, true
	return out, err
}

package sticker

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/jask/stickersmash/internal/state"
)

// ArtworkSize is the edge length of built-in sticker artwork in pixels.
const ArtworkSize = 128

var (
	faceYellow = color.RGBA{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}
	faceEdge   = color.RGBA{R: 0xe0, G: 0x9b, B: 0x12, A: 0xff}
	ink        = color.RGBA{R: 0x3b, G: 0x2a, B: 0x1a, A: 0xff}
	heartRed   = color.RGBA{R: 0xe8, G: 0x2b, B: 0x4a, A: 0xff}
	lensBlack  = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	mouthDark  = color.RGBA{R: 0x7a, G: 0x1f, B: 0x2b, A: 0xff}
)

type builtinFace struct {
	ref      state.StickerRef
	name     string
	keywords []string
	draw     func(dst *image.RGBA) error
}

var builtinFaces = []builtinFace{
	{"emoji1", "Grin", []string{"smile", "happy"}, drawGrin},
	{"emoji2", "Wink", []string{"playful", "joke"}, drawWink},
	{"emoji3", "Heart Eyes", []string{"love", "crush"}, drawHeartEyes},
	{"emoji4", "Surprised", []string{"wow", "shock"}, drawSurprised},
	{"emoji5", "Cool", []string{"sunglasses", "chill"}, drawCool},
	{"emoji6", "Sleepy", []string{"tired", "zzz"}, drawSleepy},
}

// Builtins returns the stickers that ship with the app, in display order.
func Builtins() []*Sticker {
	out := make([]*Sticker, 0, len(builtinFaces))
	for _, face := range builtinFaces {
		face := face
		out = append(out, newSticker(face.ref, face.name, "builtin", face.keywords, func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, ArtworkSize, ArtworkSize))
			drawFace(img)
			if err := face.draw(img); err != nil {
				return nil, fmt.Errorf("draw %s: %w", face.ref, err)
			}
			return img, nil
		}))
	}
	return out
}

func drawFace(dst *image.RGBA) {
	c := float32(ArtworkSize) / 2
	fillEllipse(dst, c, c, c-2, c-2, faceEdge)
	fillEllipse(dst, c, c, c-7, c-7, faceYellow)
}

func drawGrin(dst *image.RGBA) error {
	fillEllipse(dst, 44, 50, 8, 12, ink)
	fillEllipse(dst, 84, 50, 8, 12, ink)
	fillArcBand(dst, 64, 70, 26, 36, 0, math.Pi, mouthDark)
	return nil
}

func drawWink(dst *image.RGBA) error {
	fillEllipse(dst, 44, 50, 8, 12, ink)
	fillArcBand(dst, 84, 56, 8, 13, math.Pi, 2*math.Pi, ink)
	fillArcBand(dst, 64, 72, 24, 30, 0.2, math.Pi-0.2, ink)
	return nil
}

func drawHeartEyes(dst *image.RGBA) error {
	fillHeart(dst, 42, 50, 15, heartRed)
	fillHeart(dst, 86, 50, 15, heartRed)
	fillArcBand(dst, 64, 74, 22, 30, 0.1, math.Pi-0.1, ink)
	return nil
}

func drawSurprised(dst *image.RGBA) error {
	fillEllipse(dst, 44, 48, 9, 11, ink)
	fillEllipse(dst, 84, 48, 9, 11, ink)
	fillEllipse(dst, 64, 88, 12, 15, mouthDark)
	return nil
}

func drawCool(dst *image.RGBA) error {
	fillRect(dst, 22, 42, 106, 48, lensBlack)
	fillRoundLens(dst, 26, 44, 58, 66, lensBlack)
	fillRoundLens(dst, 70, 44, 102, 66, lensBlack)
	fillArcBand(dst, 64, 78, 18, 24, 0.3, math.Pi-0.3, ink)
	return nil
}

func drawSleepy(dst *image.RGBA) error {
	fillArcBand(dst, 44, 52, 8, 12, 0, math.Pi, ink)
	fillArcBand(dst, 84, 52, 8, 12, 0, math.Pi, ink)
	fillEllipse(dst, 64, 88, 8, 6, mouthDark)
	return drawLabel(dst, "z", 92, 30, 28)
}

func fillEllipse(dst *image.RGBA, cx, cy, rx, ry float32, c color.Color) {
	const steps = 64
	z := newRasterizer(dst)
	for i := 0; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x := cx + rx*float32(math.Cos(a))
		y := cy + ry*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
	paint(z, dst, c)
}

// fillArcBand fills the ring segment between radii r0 and r1 from angle a0 to
// a1 (radians, clockwise in image space since y grows downward).
func fillArcBand(dst *image.RGBA, cx, cy, r0, r1 float32, a0, a1 float64, c color.Color) {
	const steps = 32
	z := newRasterizer(dst)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/steps
		x := cx + r1*float32(math.Cos(a))
		y := cy + r1*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	for i := steps; i >= 0; i-- {
		a := a0 + (a1-a0)*float64(i)/steps
		z.LineTo(cx+r0*float32(math.Cos(a)), cy+r0*float32(math.Sin(a)))
	}
	z.ClosePath()
	paint(z, dst, c)
}

func fillHeart(dst *image.RGBA, cx, cy, size float32, c color.Color) {
	z := newRasterizer(dst)
	z.MoveTo(cx, cy+size)
	z.CubeTo(cx-size*1.4, cy, cx-size*0.9, cy-size*1.1, cx, cy-size*0.4)
	z.CubeTo(cx+size*0.9, cy-size*1.1, cx+size*1.4, cy, cx, cy+size)
	z.ClosePath()
	paint(z, dst, c)
}

func fillRect(dst *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(dst, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Over)
}

func fillRoundLens(dst *image.RGBA, x0, y0, x1, y1 float32, c color.Color) {
	rx := (x1 - x0) / 2
	ry := (y1 - y0) / 2
	fillEllipse(dst, x0+rx, y0+ry, rx, ry, c)
}

func newRasterizer(dst *image.RGBA) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func paint(z *vector.Rasterizer, dst *image.RGBA, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

func drawLabel(dst *image.RGBA, text string, x, y int, size float64) error {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(gobold.TTF)
	})
	if labelFontErr != nil {
		return fmt.Errorf("parse font: %w", labelFontErr)
	}
	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fmt.Errorf("font face: %w", err)
	}
	defer face.Close()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

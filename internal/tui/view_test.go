package tui

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestPreviewSizeKeepsAspect(t *testing.T) {
	cases := []struct {
		cols, rows int
		wantC      int
		wantR      int
	}{
		{100, 40, 58, 40},
		{20, 40, 20, 13},
		{0, 10, 0, 0},
	}
	for _, tc := range cases {
		c, r := previewSize(tc.cols, tc.rows)
		if c != tc.wantC || r != tc.wantR {
			t.Errorf("previewSize(%d, %d) = %d, %d; want %d, %d", tc.cols, tc.rows, c, r, tc.wantC, tc.wantR)
		}
	}
}

func TestRenderHalfBlocksDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 88))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 200, A: 255}), image.Point{}, draw.Src)
	out := renderHalfBlocks(img, 16, 11)
	lines := strings.Split(out, "\n")
	if len(lines) != 11 {
		t.Fatalf("rows = %d, want 11", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 16 {
			t.Fatalf("row %d width = %d, want 16", i, w)
		}
	}
	if renderHalfBlocks(img, 0, 3) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestRenderPopupCentersOverBase(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 9), "\n")
	out := renderPopup(base, "hi", 30, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("height = %d", len(lines))
	}
	if !strings.HasPrefix(ansi.Strip(lines[0]), "....") {
		t.Fatalf("top row should keep the base: %q", lines[0])
	}
	if !strings.Contains(ansi.Strip(out), "hi") {
		t.Fatalf("popup text missing")
	}
}

func TestRenderSheetPinsToBottom(t *testing.T) {
	out := renderSheet("a\nb\nc\nd", "x\ny", 5, 4)
	lines := strings.Split(ansi.Strip(out), "\n")
	want := []string{"a    ", "b    ", "x    ", "y    "}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPreviewCacheReusesRender(t *testing.T) {
	m := newTestModel(t, Deps{})
	first := m.View()
	key := m.preview.key
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.View() != first || m.preview.key != key {
		t.Fatalf("same scene and size should reuse the cached preview")
	}
	m, _ = press(m, "u", "a", "enter")
	_ = m.View()
	if m.preview.key == key {
		t.Fatalf("adding a sticker should re-render the preview")
	}
}

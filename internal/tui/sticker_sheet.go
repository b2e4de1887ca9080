package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/stickersmash/internal/state"
	"github.com/jask/stickersmash/internal/sticker"
)

const (
	thumbCols = 8
	thumbRows = 4
)

var thumbBg = rgbaOf(colorSurface0)

// thumbCache renders each sticker once; stickers never change after load.
type thumbCache map[state.StickerRef]string

func (c thumbCache) get(s *sticker.Sticker) string {
	if out, ok := c[s.Ref]; ok {
		return out
	}
	img, err := s.Image()
	out := ""
	if err != nil {
		out = strings.TrimSuffix(strings.Repeat(strings.Repeat("?", thumbCols)+"\n", thumbRows), "\n")
	} else {
		out = thumbnail(img, thumbCols, thumbRows, thumbBg)
	}
	c[s.Ref] = out
	return out
}

// renderStickerSheet draws the bottom sheet: a title row and a horizontal
// strip of stickers scrolled so the cursor stays visible.
func renderStickerSheet(p *StickerPicker, thumbs thumbCache, width int) string {
	title := "Choose a sticker"
	if q := p.Query(); q != "" {
		title += "  /" + q
	}
	header := renderBar(sheetTitleStyle, max(1, width), title, colorSurface0)

	items := p.Items()
	if len(items) == 0 {
		return header + "\n\n" + mutedStyle.Render("  no stickers match") + "\n"
	}

	cellW := thumbCols + 4
	visible := max(1, width/cellW)
	start := 0
	if p.Cursor() >= visible {
		start = p.Cursor() - visible + 1
	}
	end := min(len(items), start+visible)

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		s := items[i]
		name := ansi.Truncate(s.Name, thumbCols, "…")
		body := thumbs.get(s) + "\n" + lipgloss.PlaceHorizontal(thumbCols, lipgloss.Center, name)
		style := stickerCellStyle
		if i == p.Cursor() {
			style = stickerCellActiveStyle
		}
		cells = append(cells, style.Render(body))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.JoinVertical(lipgloss.Left, header, strip)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight   = 1
	controlsHeight = 4
	chromeHeight   = 2 // status bar and footer
)

func (m Model) bodyHeight() int {
	return max(1, m.height-headerHeight-chromeHeight)
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading…"
	}
	body := m.renderBody()
	switch {
	case m.photos != nil:
		body = fitCanvas(m.photos.View(m.width), m.width, m.bodyHeight())
	case m.state.Notice != "":
		popup := noticeStyle.Render(m.state.Notice) + "\n\n" + mutedStyle.Render("enter  OK")
		body = renderPopup(body, popup, m.width, m.bodyHeight())
	case m.stickers != nil:
		body = renderSheet(body, renderStickerSheet(m.stickers, m.thumbs, m.width), m.width, m.bodyHeight())
	}
	return strings.Join([]string{m.renderHeader(), body, m.renderStatusBar(), m.renderFooter()}, "\n")
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("StickerSmash")
	perm := mutedStyle.Render("library: " + m.state.Permission.String())
	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(perm))
	return padRightANSI(title+strings.Repeat(" ", gap)+perm, m.width)
}

func (m Model) renderBody() string {
	h := m.bodyHeight()
	previewRows := max(1, h-controlsHeight-1)
	cols, rows := previewSize(m.width, previewRows)

	var preview string
	if m.deps.Composer == nil {
		preview = mutedStyle.Render("no preview")
	} else if out, err := m.preview.get(m.deps.Composer, m.state.Scene(), cols, rows); err != nil {
		preview = statusErrBarStyle.Render("preview unavailable: " + err.Error())
	} else {
		preview = out
	}

	content := lipgloss.JoinVertical(lipgloss.Center, preview, "", m.renderControls())
	return fitCanvas(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content), m.width, h)
}

// renderControls shows the options row once a photo is chosen and the
// choose/use buttons before that.
func (m Model) renderControls() string {
	if m.state.OptionsVisible {
		reset := iconButtonStyle.Render("↺ Reset")
		add := circleButtonStyle.Render("+")
		save := iconButtonStyle.Render("⤓ Save")
		return lipgloss.JoinHorizontal(lipgloss.Center, reset, "   ", add, "   ", save)
	}
	choose := primaryButtonStyle.Render("Choose a photo")
	if m.state.HasBackground() {
		// A picked photo is only brought back by choosing again.
		return choose
	}
	use := buttonStyle.Render("Use this photo")
	return lipgloss.JoinVertical(lipgloss.Center, choose, use)
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func (m Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || (b.Action == "use-photo" && m.state.HasBackground()) {
			continue
		}
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)).Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	if m.photos != nil {
		for _, b := range []key.Binding{m.photos.fp.KeyMap.Up, m.photos.fp.KeyMap.Down, m.photos.fp.KeyMap.Back, m.photos.fp.KeyMap.Open} {
			h := b.Help()
			parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
		}
	}
	return renderBar(footerStyle, max(1, m.width), strings.Join(parts, sep), bg)
}

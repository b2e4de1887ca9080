package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/stickersmash/internal/media"
)

// photoPicker serves one media.PickRequest with a file browser. It answers the
// request exactly once, either with the chosen path or a cancellation.
type photoPicker struct {
	req    media.PickRequest
	fp     filepicker.Model
	notice string
}

func newPhotoPicker(req media.PickRequest, dir string, width, height int) (*photoPicker, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = allowedTypes()
	fp.AutoHeight = true
	fp.ShowPermissions = false
	// esc belongs to the screen: it cancels the pick instead of going up a level.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(colorAccent)
	fp.Styles.Selected = fp.Styles.Selected.Foreground(colorAccent).Bold(true)

	p := &photoPicker{req: req, fp: fp}
	cmds := []tea.Cmd{p.fp.Init()}
	if width > 0 && height > 0 {
		var cmd tea.Cmd
		p.fp, cmd = p.fp.Update(tea.WindowSizeMsg{Width: width, Height: height})
		cmds = append(cmds, cmd)
	}
	return p, tea.Batch(cmds...)
}

// allowedTypes lists media.ImageExtensions in both cases; the file browser
// matches suffixes case-sensitively.
func allowedTypes() []string {
	out := make([]string, 0, 2*len(media.ImageExtensions))
	for _, ext := range media.ImageExtensions {
		out = append(out, ext, strings.ToUpper(ext))
	}
	return out
}

// Update returns done once the request has been answered.
func (p *photoPicker) Update(msg tea.Msg, keys *KeyRegistry) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && keys.IsAction(km, "close", scopePhotos) {
		p.req.Cancel()
		return true, nil
	}
	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)
	if ok, path := p.fp.DidSelectFile(msg); ok {
		p.req.Choose(path)
		return true, cmd
	}
	if ok, path := p.fp.DidSelectDisabledFile(msg); ok {
		p.notice = filepath.Base(path) + " is not an image"
	}
	return false, cmd
}

// Abandon cancels the request when the screen goes away mid-pick.
func (p *photoPicker) Abandon() {
	p.req.Cancel()
}

func (p *photoPicker) View(width int) string {
	title := sheetTitleStyle.Render("Choose a photo")
	dir := mutedStyle.Render(padRightANSI(p.fp.CurrentDirectory, max(1, width)))
	lines := []string{title, dir, p.fp.View()}
	if p.notice != "" {
		lines = append(lines, statusErrBarStyle.Render(p.notice))
	}
	return strings.Join(lines, "\n")
}

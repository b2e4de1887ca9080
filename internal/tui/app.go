package tui

import (
	"context"
	"fmt"
	"image"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/export"
	"github.com/jask/stickersmash/internal/media"
	"github.com/jask/stickersmash/internal/state"
	"github.com/jask/stickersmash/internal/sticker"
)

// Picker is an image picker whose requests the screen answers itself.
type Picker interface {
	capability.ImagePicker
	Requests() <-chan media.PickRequest
}

// Composer renders a scene for the on-screen preview.
type Composer interface {
	Compose(scene state.Scene) (*image.RGBA, error)
}

type Deps struct {
	// Ctx bounds every capability call. Nil means context.Background.
	Ctx         context.Context
	Picker      Picker
	Permissions capability.PermissionManager
	Exporter    export.Exporter
	Catalog     *sticker.Catalog
	Composer    Composer
	Log         zerolog.Logger
	// PhotoDir is where the photo browser opens. Empty means the working directory.
	PhotoDir string
}

type Model struct {
	deps   Deps
	keys   *KeyRegistry
	state  state.State
	width  int
	height int

	status    string
	statusErr bool
	exporting int

	stickers *StickerPicker
	photos   *photoPicker
	preview  *previewCache
	thumbs   thumbCache
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.PhotoDir == "" {
		if wd, err := os.Getwd(); err == nil {
			deps.PhotoDir = wd
		}
	}
	if deps.Catalog == nil {
		deps.Catalog = sticker.NewCatalog()
	}
	return Model{
		deps:    deps,
		keys:    NewKeyRegistry(DefaultKeyBindings()),
		preview: &previewCache{},
		thumbs:  thumbCache{},
	}
}

// State exposes the current view state.
func (m Model) State() state.State { return m.state }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPermissionCmd(), m.waitForPickRequest())
}

func (m Model) ActiveScope() string {
	switch {
	case m.photos != nil:
		return scopePhotos
	case m.state.Notice != "":
		return scopeNotice
	case m.state.PickerVisible:
		return scopeStickers
	case m.state.OptionsVisible:
		return scopeOptions
	default:
		return scopeChooser
	}
}

// dispatch runs ev through the reducer and turns the requested effects into commands.
func (m Model) dispatch(ev state.Event) (Model, tea.Cmd) {
	next, effects := state.Reduce(m.state, ev)
	m.deps.Log.Debug().
		Str("event", fmt.Sprintf("%T", ev)).
		Int("effects", len(effects)).
		Bool("options", next.OptionsVisible).
		Bool("picker", next.PickerVisible).
		Msg("dispatch")
	m.state = next

	switch {
	case m.state.PickerVisible && m.stickers == nil:
		m.stickers = NewStickerPicker(m.deps.Catalog.List())
	case !m.state.PickerVisible:
		m.stickers = nil
	}

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		var cmd tea.Cmd
		m, cmd = m.runEffect(eff)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) runEffect(eff state.Effect) (Model, tea.Cmd) {
	ctx := m.deps.Ctx
	switch e := eff.(type) {
	case state.RequestPermission:
		perms := m.deps.Permissions
		if perms == nil {
			return m, nil
		}
		return m, func() tea.Msg {
			p, err := perms.RequestPermission(ctx)
			return permissionMsg{permission: p, err: err}
		}
	case state.PickImage:
		picker := m.deps.Picker
		if picker == nil {
			return m, nil
		}
		opts := capability.PickOptions{AllowsEditing: e.AllowsEditing, Quality: e.Quality}
		return m, func() tea.Msg {
			res, err := picker.PickImage(ctx, opts)
			return pickResultMsg{res: res, err: err}
		}
	case state.RunExport:
		exp := m.deps.Exporter
		if exp == nil {
			return m, nil
		}
		m.exporting++
		m.status, m.statusErr = "Saving…", false
		scene := e.Scene
		return m, func() tea.Msg {
			return exportDoneMsg{res: exp.Export(ctx, scene)}
		}
	case state.ShowNotice:
		m.deps.Log.Info().Str("notice", e.Text).Msg("notice shown")
	}
	return m, nil
}

func (m Model) loadPermissionCmd() tea.Cmd {
	perms := m.deps.Permissions
	ctx := m.deps.Ctx
	return func() tea.Msg {
		if perms == nil {
			return statusLoadedMsg{permission: state.PermissionPending}
		}
		p, err := perms.PermissionStatus(ctx)
		return statusLoadedMsg{permission: p, err: err}
	}
}

func (m Model) waitForPickRequest() tea.Cmd {
	picker := m.deps.Picker
	if picker == nil {
		return nil
	}
	ctx := m.deps.Ctx
	return func() tea.Msg {
		select {
		case req := <-picker.Requests():
			return pickRequestMsg{req: req}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) setError(err error, what string) Model {
	m.deps.Log.Error().Err(err).Msg(what)
	m.status = what + ": " + err.Error()
	m.statusErr = true
	return m
}

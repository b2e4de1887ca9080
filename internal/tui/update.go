package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/stickersmash/internal/state"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.photos != nil {
			_, cmd := m.photos.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()}, m.keys)
			return m, cmd
		}
		return m, nil

	case statusLoadedMsg:
		var resolved, startup tea.Cmd
		if msg.err != nil {
			m = m.setError(msg.err, "read permission")
		} else if msg.permission != state.PermissionPending {
			m, resolved = m.dispatch(state.PermissionResolved{Permission: msg.permission})
		}
		m, startup = m.dispatch(state.Startup{})
		return m, tea.Batch(resolved, startup)

	case permissionMsg:
		if msg.err != nil {
			return m.setError(msg.err, "request permission"), nil
		}
		m.deps.Log.Info().Stringer("permission", msg.permission).Msg("media library permission")
		return m.dispatch(state.PermissionResolved{Permission: msg.permission})

	case pickRequestMsg:
		if m.photos != nil {
			// Only one pick can be on screen; a second one is refused.
			msg.req.Cancel()
			return m, m.waitForPickRequest()
		}
		var cmd tea.Cmd
		m.photos, cmd = newPhotoPicker(msg.req, m.deps.PhotoDir, m.width, m.bodyHeight())
		// Keep listening so a pick queued behind this one is refused instead of waiting.
		return m, tea.Batch(cmd, m.waitForPickRequest())

	case pickResultMsg:
		if msg.err != nil {
			m = m.setError(msg.err, "pick photo")
			return m.dispatch(state.PhotoCancelled{})
		}
		if msg.res.Cancelled {
			return m.dispatch(state.PhotoCancelled{})
		}
		return m.dispatch(state.PhotoPicked{URI: state.ImageRef(msg.res.URI)})

	case exportDoneMsg:
		m.exporting = max(0, m.exporting-1)
		if msg.res.Location != "" {
			m.status, m.statusErr = "Saved to "+msg.res.Location, false
		} else if m.exporting == 0 {
			m.status, m.statusErr = "", false
		}
		return m.dispatch(state.ExportFinished{Confirm: msg.res.Confirm})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.photos != nil {
		_, cmd := m.photos.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.photos != nil {
			m.photos.Abandon()
			m.photos = nil
		}
		return m, tea.Quit
	}

	scope := m.ActiveScope()
	action := m.keys.Action(msg, scope)
	switch scope {
	case scopePhotos:
		done, cmd := m.photos.Update(msg, m.keys)
		if !done {
			return m, cmd
		}
		m.photos = nil
		return m, cmd

	case scopeNotice:
		if action == "dismiss" {
			return m.dispatch(state.DismissNotice{})
		}

	case scopeStickers:
		res := m.stickers.HandleKey(msg.String(), action)
		switch res.Action {
		case PickerActionSelected:
			return m.dispatch(state.SelectSticker{Ref: res.Sticker.Ref})
		case PickerActionCancelled:
			return m.dispatch(state.CloseStickerPicker{})
		}

	case scopeOptions:
		switch action {
		case "reset":
			return m.dispatch(state.Reset{})
		case "add-sticker":
			return m.dispatch(state.OpenStickerPicker{})
		case "save":
			return m.dispatch(state.Export{})
		case "quit":
			return m, tea.Quit
		}

	case scopeChooser:
		switch action {
		case "choose-photo":
			return m.dispatch(state.ChoosePhoto{})
		case "use-photo":
			return m.dispatch(state.UseDefaultPhoto{})
		case "quit":
			return m, tea.Quit
		}
	}
	return m, nil
}

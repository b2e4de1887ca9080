package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeChooser  = "screen:chooser"
	scopeOptions  = "screen:options"
	scopeStickers = "modal:stickers"
	scopePhotos   = "modal:photos"
	scopeNotice   = "modal:notice"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.Action(msg, scope) == action && action != ""
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"c", "enter"}, Action: "choose-photo", Description: "choose a photo", Scopes: []string{scopeChooser}},
		{Keys: []string{"u"}, Action: "use-photo", Description: "use this photo", Scopes: []string{scopeChooser}},
		{Keys: []string{"r"}, Action: "reset", Description: "reset", Scopes: []string{scopeOptions}},
		{Keys: []string{"a", "+"}, Action: "add-sticker", Description: "add sticker", Scopes: []string{scopeOptions}},
		{Keys: []string{"s"}, Action: "save", Description: "save", Scopes: []string{scopeOptions}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeChooser, scopeOptions}},
		{Keys: []string{"left"}, Action: "prev", Description: "prev", Scopes: []string{scopeStickers}},
		{Keys: []string{"right"}, Action: "next", Description: "next", Scopes: []string{scopeStickers}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{scopeStickers, scopePhotos}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{scopeStickers, scopePhotos}},
		{Keys: []string{"enter", "esc"}, Action: "dismiss", Description: "ok", Scopes: []string{scopeNotice}},
	}
}

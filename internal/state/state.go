// Package state holds the screen's view state and the reducer that moves it
// between legal configurations.
//
// Allowed here:
// - the State aggregate and its zero-value initial configuration
// - events (user actions and capability results) and the effects they request
//
// Not allowed here:
// - calling capabilities directly; Reduce only describes what should happen
// - rendering
package state

// ImageRef identifies a picked background image. Empty means the placeholder.
type ImageRef string

// StickerRef identifies a sticker asset. Empty means no sticker.
type StickerRef string

type Permission int

const (
	PermissionPending Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "pending"
	}
}

// State is the whole view state of the screen. The zero value is the state at mount.
type State struct {
	Background     ImageRef
	Sticker        StickerRef
	OptionsVisible bool
	PickerVisible  bool
	Permission     Permission
	Notice         string
}

// HasBackground reports whether a photo has been picked.
func (s State) HasBackground() bool { return s.Background != "" }

// HasSticker reports whether a sticker is overlaid.
func (s State) HasSticker() bool { return s.Sticker != "" }

// Scene is the part of State that ends up in the composited image.
type Scene struct {
	Background ImageRef
	Sticker    StickerRef
}

func (s State) Scene() Scene {
	return Scene{Background: s.Background, Sticker: s.Sticker}
}

const (
	NoticeNoImage = "You did not select any image."
	NoticeSaved   = "Saved!"
)

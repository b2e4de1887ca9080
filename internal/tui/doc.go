// Package tui is the single StickerSmash screen: the photo preview with the
// sticker overlaid, the footer or options row, and the modal overlays (photo
// picker, sticker picker, notices).
//
// Allowed here:
// - translating key presses into state events and effects into tea.Cmds
// - rendering the preview, buttons and modals
//
// Not allowed here:
// - deciding transitions; internal/state owns them
// - filesystem or database access outside capability interfaces
package tui

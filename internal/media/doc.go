// Package media implements the platform capabilities backed by the local
// filesystem: the media library and its permission, browser-style downloads,
// and the interactive photo picker.
//
// Allowed here:
// - filesystem and sqlite access on behalf of capability interfaces
// - image editing applied to a picked photo before it is handed back
//
// Not allowed here:
// - view state; callers translate results into state events
// - rendering the picker screen (internal/tui owns that and answers PickRequests)
package media

import "errors"

var (
	ErrPermissionDenied = errors.New("media library permission not granted")
	ErrInvalidDataURL   = errors.New("invalid data url")
)

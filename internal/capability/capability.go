// Package capability declares the platform operations the screen depends on
// but does not implement: picking a photo, media permission, rasterizing the
// composited view, and persisting or downloading the result.
package capability

import (
	"context"

	"github.com/jask/stickersmash/internal/state"
)

// ViewWidth and ViewHeight are the logical size of the composited region.
const (
	ViewWidth  = 320
	ViewHeight = 440
)

type PickOptions struct {
	AllowsEditing bool
	Quality       float64
}

type PickResult struct {
	Cancelled bool
	URI       string
}

type ImagePicker interface {
	PickImage(ctx context.Context, opts PickOptions) (PickResult, error)
}

type PermissionManager interface {
	// PermissionStatus returns PermissionPending when no request has been made yet.
	PermissionStatus(ctx context.Context) (state.Permission, error)
	RequestPermission(ctx context.Context) (state.Permission, error)
}

// RasterOptions mirrors the capture options of the view. Zero Width or Height
// keeps the aspect ratio of the view.
type RasterOptions struct {
	Width   int
	Height  int
	Quality float64
}

type Rasterizer interface {
	// Rasterize renders scene into a local image file and returns its URI.
	Rasterize(ctx context.Context, scene state.Scene, opts RasterOptions) (string, error)
	// RasterizeDOM renders scene into a JPEG data URL.
	RasterizeDOM(ctx context.Context, scene state.Scene, opts RasterOptions) (string, error)
}

type MediaLibrary interface {
	PersistToLibrary(ctx context.Context, localURI string) error
}

type Downloader interface {
	// Download stores the data URL under filename and returns where it landed.
	Download(ctx context.Context, filename, dataURL string) (string, error)
}

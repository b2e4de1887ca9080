// Package export turns the composited view into a saved artifact. The two
// exporters differ in where the artifact goes: the native one persists into the
// media library, the browser one triggers a download.
//
// Failures never reach the caller. They are logged and the run reports no
// confirmation, so the screen stays interactive.
package export

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/state"
)

// DownloadName is the file name browser-style exports are saved under.
const DownloadName = "sticker-smash.jpeg"

const (
	TargetNative  = "native"
	TargetBrowser = "browser"
)

// Result describes a finished export run.
type Result struct {
	// Confirm asks the screen to tell the user the image was saved.
	Confirm bool
	// Location is where the artifact ended up, empty on failure.
	Location string
}

type Exporter interface {
	Export(ctx context.Context, scene state.Scene) Result
}

// Native rasterizes the view at full quality and hands the file to the media library.
type Native struct {
	Rasterizer capability.Rasterizer
	Library    capability.MediaLibrary
	Log        zerolog.Logger
}

func (n *Native) Export(ctx context.Context, scene state.Scene) Result {
	localURI, err := n.Rasterizer.Rasterize(ctx, scene, capability.RasterOptions{
		Height:  capability.ViewHeight,
		Quality: 1,
	})
	if err != nil {
		n.Log.Error().Err(err).Str("stage", "rasterize").Msg("export failed")
		return Result{}
	}
	if err := n.Library.PersistToLibrary(ctx, localURI); err != nil {
		n.Log.Error().Err(err).Str("stage", "persist").Str("uri", localURI).Msg("export failed")
		return Result{}
	}
	n.Log.Info().Str("uri", localURI).Msg("saved to library")
	return Result{Confirm: localURI != "", Location: localURI}
}

// Browser renders a compressed JPEG of fixed size and downloads it as DownloadName.
type Browser struct {
	Rasterizer capability.Rasterizer
	Downloader capability.Downloader
	Log        zerolog.Logger
}

func (b *Browser) Export(ctx context.Context, scene state.Scene) Result {
	dataURL, err := b.Rasterizer.RasterizeDOM(ctx, scene, capability.RasterOptions{
		Quality: 0.95,
		Width:   capability.ViewWidth,
		Height:  capability.ViewHeight,
	})
	if err != nil {
		b.Log.Error().Err(err).Str("stage", "rasterize").Msg("export failed")
		return Result{}
	}
	path, err := b.Downloader.Download(ctx, DownloadName, dataURL)
	if err != nil {
		b.Log.Error().Err(err).Str("stage", "download").Msg("export failed")
		return Result{}
	}
	b.Log.Info().Str("path", path).Msg("download written")
	return Result{Location: path}
}

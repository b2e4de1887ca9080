package export

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jask/stickersmash/internal/capability"
)

// Capabilities bundles what either exporter may need.
type Capabilities struct {
	Rasterizer capability.Rasterizer
	Library    capability.MediaLibrary
	Downloader capability.Downloader
}

// New picks the exporter for target. An empty target means native.
func New(target string, caps Capabilities, log zerolog.Logger) (Exporter, error) {
	log = log.With().Str("component", "export").Logger()
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", TargetNative:
		if caps.Rasterizer == nil || caps.Library == nil {
			return nil, fmt.Errorf("export: native target needs a rasterizer and a media library")
		}
		return &Native{Rasterizer: caps.Rasterizer, Library: caps.Library, Log: log.With().Str("target", TargetNative).Logger()}, nil
	case TargetBrowser:
		if caps.Rasterizer == nil || caps.Downloader == nil {
			return nil, fmt.Errorf("export: browser target needs a rasterizer and a downloader")
		}
		return &Browser{Rasterizer: caps.Rasterizer, Downloader: caps.Downloader, Log: log.With().Str("target", TargetBrowser).Logger()}, nil
	default:
		return nil, fmt.Errorf("export: unknown target %q", target)
	}
}

package media

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/compose"
)

// ImageExtensions lists the file types the picker offers.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// PickRequest is handed to whoever shows the picker. Exactly one of Choose,
// Cancel or Fail must be called.
type PickRequest struct {
	Options capability.PickOptions
	reply   chan pickReply
}

type pickReply struct {
	path string
	err  error
}

func (r PickRequest) Choose(path string) { r.reply <- pickReply{path: path} }
func (r PickRequest) Cancel()            { r.reply <- pickReply{} }
func (r PickRequest) Fail(err error)     { r.reply <- pickReply{err: err} }

// InteractivePicker implements capability.ImagePicker by publishing a
// PickRequest and waiting for the screen to answer it.
type InteractivePicker struct {
	// CacheDir receives edited copies of picked photos.
	CacheDir string
	requests chan PickRequest
}

func NewInteractivePicker(cacheDir string) *InteractivePicker {
	return &InteractivePicker{CacheDir: cacheDir, requests: make(chan PickRequest)}
}

// Requests is the stream of pending picks for the screen to serve.
func (p *InteractivePicker) Requests() <-chan PickRequest {
	return p.requests
}

func (p *InteractivePicker) PickImage(ctx context.Context, opts capability.PickOptions) (capability.PickResult, error) {
	req := PickRequest{Options: opts, reply: make(chan pickReply, 1)}
	select {
	case p.requests <- req:
	case <-ctx.Done():
		return capability.PickResult{}, ctx.Err()
	}

	var reply pickReply
	select {
	case reply = <-req.reply:
	case <-ctx.Done():
		return capability.PickResult{}, ctx.Err()
	}
	if reply.err != nil {
		return capability.PickResult{}, reply.err
	}
	if reply.path == "" {
		return capability.PickResult{Cancelled: true}, nil
	}
	if !IsImagePath(reply.path) {
		return capability.PickResult{}, fmt.Errorf("not an image: %s", reply.path)
	}
	if !opts.AllowsEditing {
		return capability.PickResult{URI: capability.FileURI(reply.path)}, nil
	}
	edited, err := EditImage(reply.path, p.CacheDir, opts.Quality)
	if err != nil {
		return capability.PickResult{}, err
	}
	return capability.PickResult{URI: capability.FileURI(edited)}, nil
}

// IsImagePath reports whether path has one of the ImageExtensions.
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// EditImage crops the photo at path to the view's aspect ratio and writes the
// result into cacheDir. Quality 1 keeps it lossless as PNG.
func EditImage(path, cacheDir string, quality float64) (string, error) {
	img, err := compose.LoadImage(path)
	if err != nil {
		return "", err
	}
	crop := compose.CoverCrop(img.Bounds(), capability.ViewWidth, capability.ViewHeight)
	cropped := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(cropped, cropped.Bounds(), img, crop.Min, draw.Src)

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir picker cache: %w", err)
	}
	ext := ".jpg"
	if quality >= 1 {
		ext = ".png"
	}
	out := filepath.Join(cacheDir, "picked-"+uuid.NewString()+ext)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create edited photo: %w", err)
	}
	if err := compose.Encode(f, cropped, quality); err != nil {
		f.Close()
		_ = os.Remove(out)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close edited photo: %w", err)
	}
	return out, nil
}

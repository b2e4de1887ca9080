package media

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/database"
	"github.com/jask/stickersmash/internal/database/repository"
	"github.com/jask/stickersmash/internal/state"
)

// Library copies exported images into Dir and indexes them in sqlite.
type Library struct {
	Dir         string
	Assets      *repository.LibraryRepo
	Permissions capability.PermissionManager
}

func (l *Library) PersistToLibrary(ctx context.Context, localURI string) error {
	_, err := l.Save(ctx, localURI)
	return err
}

// Save persists the file behind localURI and returns the stored record.
func (l *Library) Save(ctx context.Context, localURI string) (*repository.LibraryAsset, error) {
	if l.Permissions != nil {
		p, err := l.Permissions.PermissionStatus(ctx)
		if err != nil {
			return nil, err
		}
		if p != state.PermissionGranted {
			return nil, ErrPermissionDenied
		}
	}
	src, err := capability.PathFromURI(localURI)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer in.Close()

	cfg, format, err := image.DecodeConfig(in)
	if err != nil {
		return nil, fmt.Errorf("inspect capture: %w", err)
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir library: %w", err)
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(src))
	if ext == "" {
		ext = "." + format
	}
	name := id + ext
	dst := filepath.Join(l.Dir, name)
	size, err := copyFile(dst, in)
	if err != nil {
		return nil, err
	}

	asset := repository.LibraryAsset{
		ID:        id,
		FileName:  name,
		SourceURI: localURI,
		MediaType: mediaType(ext, format),
		ByteSize:  size,
		Width:     cfg.Width,
		Height:    cfg.Height,
		CreatedAt: database.Now(),
	}
	if err := l.Assets.Insert(ctx, asset); err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("index asset: %w", err)
	}
	return &asset, nil
}

func copyFile(dst string, r io.Reader) (int64, error) {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create library file: %w", err)
	}
	n, err := io.Copy(out, r)
	if err != nil {
		out.Close()
		_ = os.Remove(dst)
		return 0, fmt.Errorf("copy to library: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("close library file: %w", err)
	}
	return n, nil
}

func mediaType(ext, format string) string {
	if t := mime.TypeByExtension(ext); t != "" {
		return strings.SplitN(t, ";", 2)[0]
	}
	return "image/" + format
}

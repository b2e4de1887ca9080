package media

import (
	"context"
	"fmt"
	"os"

	"github.com/jask/stickersmash/internal/database/repository"
	"github.com/jask/stickersmash/internal/state"
)

// PermissionScope is the key the media library answer is stored under.
const PermissionScope = "media-library"

// Permissions answers media-library permission from the recorded grant. A
// request probes whether the library directory can be created and written.
type Permissions struct {
	Dir  string
	Repo *repository.PermissionRepo
}

func (p *Permissions) PermissionStatus(ctx context.Context) (state.Permission, error) {
	rec, err := p.Repo.Get(ctx, PermissionScope)
	if err != nil {
		return state.PermissionPending, fmt.Errorf("load permission: %w", err)
	}
	if rec == nil {
		return state.PermissionPending, nil
	}
	return parsePermission(rec.Status), nil
}

func (p *Permissions) RequestPermission(ctx context.Context) (state.Permission, error) {
	granted := state.PermissionGranted
	if err := probeWritable(p.Dir); err != nil {
		granted = state.PermissionDenied
	}
	if err := p.Repo.Upsert(ctx, repository.PermissionRecord{Scope: PermissionScope, Status: granted.String()}); err != nil {
		return granted, fmt.Errorf("record permission: %w", err)
	}
	return granted, nil
}

func probeWritable(dir string) error {
	if dir == "" {
		return fmt.Errorf("library dir not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func parsePermission(s string) state.Permission {
	switch s {
	case state.PermissionGranted.String():
		return state.PermissionGranted
	case state.PermissionDenied.String():
		return state.PermissionDenied
	default:
		return state.PermissionPending
	}
}

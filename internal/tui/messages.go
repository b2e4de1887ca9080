package tui

import (
	"github.com/jask/stickersmash/internal/capability"
	"github.com/jask/stickersmash/internal/export"
	"github.com/jask/stickersmash/internal/media"
	"github.com/jask/stickersmash/internal/state"
)

// statusLoadedMsg carries the permission recorded by a previous run.
type statusLoadedMsg struct {
	permission state.Permission
	err        error
}

type permissionMsg struct {
	permission state.Permission
	err        error
}

type pickRequestMsg struct {
	req media.PickRequest
}

type pickResultMsg struct {
	res capability.PickResult
	err error
}

type exportDoneMsg struct {
	res export.Result
}

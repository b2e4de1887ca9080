package state

type Event interface {
	isEvent()
}

type Startup struct{}

type PermissionResolved struct {
	Permission Permission
}

type ChoosePhoto struct{}

type PhotoPicked struct {
	URI ImageRef
}

type PhotoCancelled struct{}

type UseDefaultPhoto struct{}

type Reset struct{}

type OpenStickerPicker struct{}

type SelectSticker struct {
	Ref StickerRef
}

type CloseStickerPicker struct{}

type Export struct{}

// ExportFinished reports the outcome of an export run. Confirm is set when the
// exporter wants the user told that the image was saved.
type ExportFinished struct {
	Confirm bool
}

type DismissNotice struct{}

func (Startup) isEvent()            {}
func (PermissionResolved) isEvent() {}
func (ChoosePhoto) isEvent()        {}
func (PhotoPicked) isEvent()        {}
func (PhotoCancelled) isEvent()     {}
func (UseDefaultPhoto) isEvent()    {}
func (Reset) isEvent()              {}
func (OpenStickerPicker) isEvent()  {}
func (SelectSticker) isEvent()      {}
func (CloseStickerPicker) isEvent() {}
func (Export) isEvent()             {}
func (ExportFinished) isEvent()     {}
func (DismissNotice) isEvent()      {}

type Effect interface {
	isEffect()
}

type RequestPermission struct{}

// PickImage asks the image picker for a photo. Quality is in [0, 1].
type PickImage struct {
	AllowsEditing bool
	Quality       float64
}

type RunExport struct {
	Scene Scene
}

type ShowNotice struct {
	Text string
}

func (RequestPermission) isEffect() {}
func (PickImage) isEffect()         {}
func (RunExport) isEffect()         {}
func (ShowNotice) isEffect()        {}

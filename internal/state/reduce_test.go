package state

import (
	"reflect"
	"testing"
)

func TestInitialStateIsZero(t *testing.T) {
	var s State
	if s.HasBackground() || s.HasSticker() || s.OptionsVisible || s.PickerVisible {
		t.Fatalf("unexpected initial state: %+v", s)
	}
	if s.Permission != PermissionPending {
		t.Fatalf("permission = %v, want pending", s.Permission)
	}
}

func TestStartupRequestsPermissionOnceWhenPending(t *testing.T) {
	s, effects := Reduce(State{}, Startup{})
	if len(effects) != 1 {
		t.Fatalf("expected exactly one effect, got %v", effects)
	}
	if _, ok := effects[0].(RequestPermission); !ok {
		t.Fatalf("effect = %T, want RequestPermission", effects[0])
	}

	s, _ = Reduce(s, PermissionResolved{Permission: PermissionGranted})
	if _, effects = Reduce(s, Startup{}); len(effects) != 0 {
		t.Fatalf("startup after grant should not re-request, got %v", effects)
	}
}

func TestChoosePhotoCancelledLeavesViewUnchanged(t *testing.T) {
	s, effects := Replay(ChoosePhoto{}, PhotoCancelled{})
	if s.OptionsVisible {
		t.Fatalf("options should stay hidden after cancel")
	}
	if s.HasBackground() {
		t.Fatalf("background should stay unset, got %q", s.Background)
	}
	if s.Notice != NoticeNoImage {
		t.Fatalf("notice = %q, want %q", s.Notice, NoticeNoImage)
	}
	want := []Effect{PickImage{AllowsEditing: true, Quality: 1}, ShowNotice{Text: NoticeNoImage}}
	if !reflect.DeepEqual(effects, want) {
		t.Fatalf("effects = %#v, want %#v", effects, want)
	}
}

func TestChoosePhotoSuccess(t *testing.T) {
	s, _ := Replay(ChoosePhoto{}, PhotoPicked{URI: "img1"})
	if s.Background != "img1" {
		t.Fatalf("background = %q, want img1", s.Background)
	}
	if !s.OptionsVisible {
		t.Fatalf("options should be visible after a pick")
	}
}

func TestPhotoPickedWithoutURITreatedAsCancel(t *testing.T) {
	s, effects := Reduce(State{}, PhotoPicked{})
	if s.OptionsVisible || s.Notice != NoticeNoImage || len(effects) != 1 {
		t.Fatalf("unexpected result: %+v %v", s, effects)
	}
}

func TestUseDefaultPhotoOnlyWithoutBackground(t *testing.T) {
	s, _ := Reduce(State{}, UseDefaultPhoto{})
	if !s.OptionsVisible || s.HasBackground() {
		t.Fatalf("use default should show options with placeholder: %+v", s)
	}

	withPhoto := State{Background: "img1"}
	next, _ := Reduce(withPhoto, UseDefaultPhoto{})
	if next != withPhoto {
		t.Fatalf("use default with a background should be ignored: %+v", next)
	}
}

func TestResetPreservesBackgroundAndSticker(t *testing.T) {
	s, _ := Replay(
		PhotoPicked{URI: "img1"},
		OpenStickerPicker{},
		SelectSticker{Ref: "emoji3"},
		Reset{},
	)
	if s.OptionsVisible {
		t.Fatalf("reset should hide options")
	}
	if s.Background != "img1" || s.Sticker != "emoji3" {
		t.Fatalf("reset must keep background and sticker: %+v", s)
	}
}

func TestResetIgnoredWhenOptionsHidden(t *testing.T) {
	s := State{Background: "img1"}
	if next, _ := Reduce(s, Reset{}); next != s {
		t.Fatalf("reset without options should be ignored: %+v", next)
	}
}

func TestSelectStickerClosesPicker(t *testing.T) {
	s, _ := Replay(UseDefaultPhoto{}, OpenStickerPicker{}, SelectSticker{Ref: "emoji3"})
	if s.Sticker != "emoji3" {
		t.Fatalf("sticker = %q, want emoji3", s.Sticker)
	}
	if s.PickerVisible {
		t.Fatalf("picker should be closed after select")
	}
}

func TestSelectStickerAlwaysLeavesPickerClosed(t *testing.T) {
	for _, prior := range []State{
		{},
		{OptionsVisible: true},
		{OptionsVisible: true, PickerVisible: true},
		{OptionsVisible: true, PickerVisible: true, Sticker: "emoji1"},
	} {
		next, _ := Reduce(prior, SelectSticker{Ref: "emoji2"})
		if next.PickerVisible {
			t.Fatalf("picker visible after select from %+v", prior)
		}
	}
}

func TestSelectStickerIgnoredWhenPickerClosed(t *testing.T) {
	s := State{OptionsVisible: true, Sticker: "emoji1"}
	if next, _ := Reduce(s, SelectSticker{Ref: "emoji2"}); next.Sticker != "emoji1" {
		t.Fatalf("select without picker should not change sticker, got %q", next.Sticker)
	}
}

func TestCloseStickerPickerKeepsSticker(t *testing.T) {
	s, _ := Replay(UseDefaultPhoto{}, OpenStickerPicker{}, SelectSticker{Ref: "emoji1"}, OpenStickerPicker{}, CloseStickerPicker{})
	if s.PickerVisible {
		t.Fatalf("picker should be closed")
	}
	if s.Sticker != "emoji1" {
		t.Fatalf("close must not clear sticker, got %q", s.Sticker)
	}
}

func TestOpenStickerPickerRequiresOptions(t *testing.T) {
	if s, _ := Reduce(State{}, OpenStickerPicker{}); s.PickerVisible {
		t.Fatalf("picker should not open from the footer view")
	}
}

func TestExportEmitsSceneWithoutMutatingState(t *testing.T) {
	before, _ := Replay(PhotoPicked{URI: "img1"}, OpenStickerPicker{}, SelectSticker{Ref: "emoji3"})
	after, effects := Reduce(before, Export{})
	if after != before {
		t.Fatalf("export mutated state: %+v -> %+v", before, after)
	}
	want := []Effect{RunExport{Scene: Scene{Background: "img1", Sticker: "emoji3"}}}
	if !reflect.DeepEqual(effects, want) {
		t.Fatalf("effects = %#v, want %#v", effects, want)
	}

	if _, effects := Reduce(State{}, Export{}); len(effects) != 0 {
		t.Fatalf("export without options should be ignored, got %v", effects)
	}
}

func TestExportFinishedConfirmation(t *testing.T) {
	s := State{OptionsVisible: true}
	next, effects := Reduce(s, ExportFinished{Confirm: true})
	if next.Notice != NoticeSaved || len(effects) != 1 {
		t.Fatalf("expected saved notice, got %+v %v", next, effects)
	}
	next, effects = Reduce(s, ExportFinished{})
	if next != s || len(effects) != 0 {
		t.Fatalf("silent export should not change state, got %+v %v", next, effects)
	}
}

func TestDismissNotice(t *testing.T) {
	s, _ := Replay(PhotoCancelled{}, DismissNotice{})
	if s.Notice != "" {
		t.Fatalf("notice should be cleared, got %q", s.Notice)
	}
}

// TestReplayMatchesTable walks a long legal sequence and checks the fields
// after each step against the cumulative effect of the transition table.
func TestReplayMatchesTable(t *testing.T) {
	steps := []struct {
		ev   Event
		want State
	}{
		{Startup{}, State{}},
		{PermissionResolved{Permission: PermissionGranted}, State{Permission: PermissionGranted}},
		{ChoosePhoto{}, State{Permission: PermissionGranted}},
		{PhotoPicked{URI: "img1"}, State{Permission: PermissionGranted, Background: "img1", OptionsVisible: true}},
		{OpenStickerPicker{}, State{Permission: PermissionGranted, Background: "img1", OptionsVisible: true, PickerVisible: true}},
		{CloseStickerPicker{}, State{Permission: PermissionGranted, Background: "img1", OptionsVisible: true}},
		{OpenStickerPicker{}, State{Permission: PermissionGranted, Background: "img1", OptionsVisible: true, PickerVisible: true}},
		{SelectSticker{Ref: "emoji2"}, State{Permission: PermissionGranted, Background: "img1", Sticker: "emoji2", OptionsVisible: true}},
		{Export{}, State{Permission: PermissionGranted, Background: "img1", Sticker: "emoji2", OptionsVisible: true}},
		{Reset{}, State{Permission: PermissionGranted, Background: "img1", Sticker: "emoji2"}},
		{ChoosePhoto{}, State{Permission: PermissionGranted, Background: "img1", Sticker: "emoji2"}},
		{PhotoPicked{URI: "img2"}, State{Permission: PermissionGranted, Background: "img2", Sticker: "emoji2", OptionsVisible: true}},
	}

	var s State
	for i, step := range steps {
		s, _ = Reduce(s, step.ev)
		if s != step.want {
			t.Fatalf("step %d (%T): got %+v, want %+v", i, step.ev, s, step.want)
		}
	}
}

func TestPermissionString(t *testing.T) {
	cases := map[Permission]string{
		PermissionPending: "pending",
		PermissionGranted: "granted",
		PermissionDenied:  "denied",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", p, got, want)
		}
	}
}

package state

// Reduce applies ev to s. Events whose precondition does not hold leave the
// state untouched and request nothing.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Startup:
		if s.Permission != PermissionPending {
			return s, nil
		}
		return s, []Effect{RequestPermission{}}
	case PermissionResolved:
		s.Permission = e.Permission
		return s, nil
	case ChoosePhoto:
		return s, []Effect{PickImage{AllowsEditing: true, Quality: 1}}
	case PhotoPicked:
		if e.URI == "" {
			return Reduce(s, PhotoCancelled{})
		}
		s.Background = e.URI
		s.OptionsVisible = true
		return s, nil
	case PhotoCancelled:
		s.Notice = NoticeNoImage
		return s, []Effect{ShowNotice{Text: NoticeNoImage}}
	case UseDefaultPhoto:
		if s.HasBackground() {
			return s, nil
		}
		s.OptionsVisible = true
		return s, nil
	case Reset:
		if !s.OptionsVisible {
			return s, nil
		}
		s.OptionsVisible = false
		return s, nil
	case OpenStickerPicker:
		if !s.OptionsVisible {
			return s, nil
		}
		s.PickerVisible = true
		return s, nil
	case SelectSticker:
		if !s.PickerVisible {
			return s, nil
		}
		s.Sticker = e.Ref
		s.PickerVisible = false
		return s, nil
	case CloseStickerPicker:
		if !s.PickerVisible {
			return s, nil
		}
		s.PickerVisible = false
		return s, nil
	case Export:
		if !s.OptionsVisible {
			return s, nil
		}
		return s, []Effect{RunExport{Scene: s.Scene()}}
	case ExportFinished:
		if !e.Confirm {
			return s, nil
		}
		s.Notice = NoticeSaved
		return s, []Effect{ShowNotice{Text: NoticeSaved}}
	case DismissNotice:
		if s.Notice == "" {
			return s, nil
		}
		s.Notice = ""
		return s, nil
	}
	return s, nil
}

// Replay folds events over the initial state and collects every effect in order.
func Replay(events ...Event) (State, []Effect) {
	var s State
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Reduce(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

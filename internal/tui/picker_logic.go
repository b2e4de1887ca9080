package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/stickersmash/internal/sticker"
)

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action  PickerAction
	Sticker *sticker.Sticker
}

// StickerPicker is the horizontally scrolling sticker list. Typing narrows it.
type StickerPicker struct {
	items    []*sticker.Sticker
	filtered []*sticker.Sticker
	query    string
	cursor   int
}

func NewStickerPicker(items []*sticker.Sticker) *StickerPicker {
	p := &StickerPicker{items: append([]*sticker.Sticker(nil), items...)}
	p.rebuildFiltered()
	return p
}

func (p *StickerPicker) Query() string { return p.query }
func (p *StickerPicker) Cursor() int   { return p.cursor }

func (p *StickerPicker) Items() []*sticker.Sticker {
	return append([]*sticker.Sticker(nil), p.filtered...)
}

func (p *StickerPicker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *StickerPicker) Current() (*sticker.Sticker, bool) {
	if len(p.filtered) == 0 {
		return nil, false
	}
	return p.filtered[min(max(p.cursor, 0), len(p.filtered)-1)], true
}

// HandleKey applies a key from the picker's scope. action is the bound action
// for the key, if any; unbound printable keys edit the query.
func (p *StickerPicker) HandleKey(keyName, action string) PickerResult {
	switch action {
	case "prev":
		if p.cursor > 0 {
			p.cursor--
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{}
	case "next":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{}
	case "select":
		s, ok := p.Current()
		if !ok {
			return PickerResult{}
		}
		return PickerResult{Action: PickerActionSelected, Sticker: s}
	case "close":
		return PickerResult{Action: PickerActionCancelled}
	}
	switch keyName {
	case "backspace":
		if q := []rune(p.query); len(q) > 0 {
			p.SetQuery(string(q[:len(q)-1]))
		}
	default:
		if isPrintableKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{}
}

type scoredSticker struct {
	s     *sticker.Sticker
	score int
	index int
}

func (p *StickerPicker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredSticker, 0, len(p.items))
	for i, s := range p.items {
		ok, score := matchScore(s.SearchText(), q)
		if !ok {
			continue
		}
		scored = append(scored, scoredSticker{s: s, score: score, index: i})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	p.filtered = p.filtered[:0]
	for _, row := range scored {
		p.filtered = append(p.filtered, row.s)
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = max(0, len(p.filtered)-1)
	}
}

// matchScore tries a subsequence match first and falls back to a single-typo
// match against any word, so "sleeoy" still finds "Sleepy".
func matchScore(text, query string) (bool, int) {
	if ok, score := fuzzyMatchScore(text, query); ok {
		return true, score
	}
	q := strings.ToLower(query)
	if len([]rune(q)) < 3 {
		return false, 0
	}
	best := -1
	for _, word := range strings.Fields(strings.ToLower(text)) {
		d := levenshtein.ComputeDistance(word, q)
		if prefix := []rune(word); len(prefix) > len([]rune(q)) {
			d = min(d, levenshtein.ComputeDistance(string(prefix[:len([]rune(q))]), q))
		}
		if d <= 1 && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, 1 - best
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower) + 2
	if matchIdx[0] == 0 || labelLower[matchIdx[0]-1] == ' ' {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableKey(keyName string) bool {
	r := []rune(keyName)
	return len(r) == 1 && r[0] >= 32 && r[0] != 127
}

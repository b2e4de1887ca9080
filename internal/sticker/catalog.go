// Package sticker provides the finite, ordered set of stickers the user can
// overlay on a photo. A catalog is built once at startup and never changes;
// listing it again yields the same sequence.
package sticker

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/jask/stickersmash/internal/state"
)

type Sticker struct {
	Ref      state.StickerRef
	Name     string
	Keywords []string
	// Source is where the artwork came from: "builtin" or a file path.
	Source string

	load func() (image.Image, error)
	once *sync.Once
	img  image.Image
	err  error
}

// Image returns the sticker artwork, loading it on first use.
func (s *Sticker) Image() (image.Image, error) {
	if s.load == nil {
		return nil, fmt.Errorf("sticker %s: no artwork", s.Ref)
	}
	s.once.Do(func() { s.img, s.err = s.load() })
	return s.img, s.err
}

// SearchText is what the picker filters on.
func (s *Sticker) SearchText() string {
	return strings.TrimSpace(s.Name + " " + strings.Join(s.Keywords, " "))
}

func newSticker(ref state.StickerRef, name, source string, keywords []string, load func() (image.Image, error)) *Sticker {
	return &Sticker{
		Ref:      ref,
		Name:     name,
		Keywords: keywords,
		Source:   source,
		load:     load,
		once:     &sync.Once{},
	}
}

type Catalog struct {
	stickers []*Sticker
	byRef    map[state.StickerRef]*Sticker
}

// NewCatalog keeps the first sticker for any duplicated ref.
func NewCatalog(stickers ...*Sticker) *Catalog {
	c := &Catalog{byRef: make(map[state.StickerRef]*Sticker, len(stickers))}
	for _, s := range stickers {
		if s == nil || s.Ref == "" {
			continue
		}
		if _, dup := c.byRef[s.Ref]; dup {
			continue
		}
		c.byRef[s.Ref] = s
		c.stickers = append(c.stickers, s)
	}
	return c
}

// List returns the stickers in catalog order.
func (c *Catalog) List() []*Sticker {
	if c == nil {
		return nil
	}
	return append([]*Sticker(nil), c.stickers...)
}

func (c *Catalog) Refs() []state.StickerRef {
	if c == nil {
		return nil
	}
	out := make([]state.StickerRef, 0, len(c.stickers))
	for _, s := range c.stickers {
		out = append(out, s.Ref)
	}
	return out
}

func (c *Catalog) Lookup(ref state.StickerRef) (*Sticker, bool) {
	if c == nil {
		return nil, false
	}
	s, ok := c.byRef[ref]
	return s, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stickers)
}

// Load builds the catalog from the built-in stickers followed by the pack in
// dir, if any. A missing dir is not an error.
func Load(dir string) (*Catalog, error) {
	all := Builtins()
	if strings.TrimSpace(dir) != "" {
		pack, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		all = append(all, pack...)
	}
	return NewCatalog(all...), nil
}

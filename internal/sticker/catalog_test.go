package sticker

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jask/stickersmash/internal/state"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestBuiltinsOrderAndArtwork(t *testing.T) {
	stickers := Builtins()
	want := []state.StickerRef{"emoji1", "emoji2", "emoji3", "emoji4", "emoji5", "emoji6"}
	if got := NewCatalog(stickers...).Refs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("refs = %v, want %v", got, want)
	}
	for _, s := range stickers {
		img, err := s.Image()
		if err != nil {
			t.Fatalf("%s: %v", s.Ref, err)
		}
		if b := img.Bounds(); b.Dx() != ArtworkSize || b.Dy() != ArtworkSize {
			t.Fatalf("%s: bounds %v", s.Ref, b)
		}
		if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
			t.Fatalf("%s: corner should be transparent", s.Ref)
		}
		if _, _, _, a := img.At(ArtworkSize/2, ArtworkSize/2+20).RGBA(); a == 0 {
			t.Fatalf("%s: face should be opaque near the center", s.Ref)
		}
	}
}

func TestStickerImageIsCached(t *testing.T) {
	s := Builtins()[0]
	a, err := s.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	b, _ := s.Image()
	if a != b {
		t.Fatalf("expected the same image on repeated calls")
	}
}

func TestCatalogListIsRestartable(t *testing.T) {
	c := NewCatalog(Builtins()...)
	first := c.List()
	second := c.List()
	if len(first) != 6 || !reflect.DeepEqual(first, second) {
		t.Fatalf("listing should repeat the same sequence")
	}
	first[0] = nil
	if c.List()[0] == nil {
		t.Fatalf("List must return a copy")
	}
}

func TestCatalogSkipsDuplicateRefs(t *testing.T) {
	b := Builtins()
	c := NewCatalog(b[0], b[1], b[0], nil)
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	if s, ok := c.Lookup("emoji2"); !ok || s.Name != "Wink" {
		t.Fatalf("lookup emoji2 = %v %v", s, ok)
	}
	if _, ok := c.Lookup("emoji9"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestLoadDirManifestOrderThenUnlisted(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b-cat.png"), color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "a_dog.png"), color.RGBA{G: 255, A: 255})
	writePNG(t, filepath.Join(dir, "z-star.PNG"), color.RGBA{B: 255, A: 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := []byte(`
stickers:
  - file: z-star.PNG
    name: Gold Star
    keywords: [shiny]
  - file: b-cat.png
`)
	if err := os.WriteFile(filepath.Join(dir, ManifestName), manifest, 0o644); err != nil {
		t.Fatal(err)
	}

	stickers, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	var names []string
	for _, s := range stickers {
		names = append(names, s.Name)
	}
	want := []string{"Gold Star", "B Cat", "A Dog"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if stickers[0].Ref != "pack:z-star" {
		t.Fatalf("ref = %q", stickers[0].Ref)
	}
	if stickers[0].SearchText() != "Gold Star shiny" {
		t.Fatalf("search text = %q", stickers[0].SearchText())
	}
	img, err := stickers[1].Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 255 {
		t.Fatalf("expected the cat sticker to be red")
	}
}

func TestLoadDirManifestMissingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("stickers:\n  - file: ghost.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected error for missing manifest file")
	}
}

func TestLoadWithMissingDir(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 6 {
		t.Fatalf("expected only built-ins, got %d", c.Len())
	}
}

func TestDisplayNameCapitalizesMultiByteRunes(t *testing.T) {
	cases := map[string]string{
		"élan-vital.png": "Élan Vital",
		"über_cat.PNG":   "Über Cat",
		"star.png":       "Star",
	}
	for file, want := range cases {
		if got := displayName(file); got != want {
			t.Errorf("displayName(%q) = %q, want %q", file, got, want)
		}
	}
}

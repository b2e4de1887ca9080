package sticker

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/jask/stickersmash/internal/state"
)

// ManifestName is the optional file in a sticker pack directory that orders
// and names its stickers.
const ManifestName = "stickers.yaml"

type manifest struct {
	Stickers []manifestEntry `yaml:"stickers"`
}

type manifestEntry struct {
	File     string   `yaml:"file"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadDir reads the PNG stickers in dir. Manifest entries come first in
// manifest order, then any unlisted PNG files sorted by name.
func LoadDir(dir string) ([]*Sticker, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sticker dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	m, err := readManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}

	listed := make(map[string]bool, len(m.Stickers))
	out := make([]*Sticker, 0, len(files))
	for _, entry := range m.Stickers {
		file := filepath.Base(strings.TrimSpace(entry.File))
		if file == "" || file == "." || listed[file] {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", entry.File, err)
		}
		listed[file] = true
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = displayName(file)
		}
		out = append(out, packSticker(dir, file, name, entry.Keywords))
	}
	for _, file := range files {
		if listed[file] {
			continue
		}
		out = append(out, packSticker(dir, file, displayName(file), nil))
	}
	return out, nil
}

func readManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

func packSticker(dir, file, name string, keywords []string) *Sticker {
	path := filepath.Join(dir, file)
	ref := state.StickerRef("pack:" + strings.TrimSuffix(file, filepath.Ext(file)))
	return newSticker(ref, name, path, keywords, func() (image.Image, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
		return img, nil
	})
}

func displayName(file string) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

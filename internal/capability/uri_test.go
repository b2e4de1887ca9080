package capability

import (
	"path/filepath"
	"testing"
)

func TestFileURIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my photo.png")
	uri := FileURI(path)
	got, err := PathFromURI(uri)
	if err != nil {
		t.Fatalf("PathFromURI(%q): %v", uri, err)
	}
	if got != path {
		t.Fatalf("round trip = %q, want %q", got, path)
	}
}

func TestPathFromURIBarePath(t *testing.T) {
	got, err := PathFromURI("  photos/a.jpg ")
	if err != nil || got != "photos/a.jpg" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestPathFromURIRejects(t *testing.T) {
	for _, in := range []string{"", "https://example.com/a.png", "data://x"} {
		if _, err := PathFromURI(in); err == nil {
			t.Errorf("PathFromURI(%q) should fail", in)
		}
	}
}

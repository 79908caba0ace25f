package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/yt2jellyfin/yt2jellyfin/internal/layout"
)

// tempMP3 writes a file with some non-tag payload so Save has content
// to preserve.
func tempMP3(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.mp3")
	if err := os.WriteFile(path, []byte("\xff\xfb\x90\x00 fake audio frames"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTagger_ApplyArtistAndAlbum(t *testing.T) {
	path := tempMP3(t)
	tagger := NewTagger()

	overrides := []layout.Override{
		{Field: layout.FieldArtist, Value: "X"},
		{Field: layout.FieldAlbum, Value: "Y"},
	}
	if err := tagger.Apply(path, overrides); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopening tags: %v", err)
	}
	defer tag.Close()

	if got := tag.Artist(); got != "X" {
		t.Errorf("Artist = %q, want %q", got, "X")
	}
	if got := tag.Album(); got != "Y" {
		t.Errorf("Album = %q, want %q", got, "Y")
	}
	if frames := tag.GetFrames("TPE2"); len(frames) == 0 {
		t.Error("album artist frame should be set alongside artist")
	}
}

func TestTagger_ApplyPreservesUntouchedFields(t *testing.T) {
	path := tempMP3(t)

	// Simulate what the external pipeline wrote.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	tag.SetTitle("Existing Title")
	tag.SetArtist("Upstream Artist")
	if err := tag.Save(); err != nil {
		t.Fatal(err)
	}
	tag.Close()

	tagger := NewTagger()
	overrides := []layout.Override{{Field: layout.FieldAlbum, Value: "Y"}}
	if err := tagger.Apply(path, overrides); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "Existing Title" {
		t.Errorf("Title = %q, should be untouched", got)
	}
	if got := tag.Artist(); got != "Upstream Artist" {
		t.Errorf("Artist = %q, should be untouched by album-only override", got)
	}
	if got := tag.Album(); got != "Y" {
		t.Errorf("Album = %q, want %q", got, "Y")
	}
}

func TestTagger_NoOverridesIsNoOp(t *testing.T) {
	tagger := NewTagger()
	// Path does not even need to exist when there is nothing to write.
	if err := tagger.Apply("/nonexistent/track.mp3", nil); err != nil {
		t.Errorf("Apply() with no overrides should be a no-op, got %v", err)
	}
}

package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/yt2jellyfin/yt2jellyfin/internal/layout"
)

// Tagger re-asserts metadata overrides as ID3v2 frames on downloaded
// MP3 files.
//
// The downloader embeds metadata through the transcoder, and the
// field mapping there is best-effort; when the user forces an artist
// or album, the tagger rewrites the corresponding frames afterwards so
// the embedded metadata is exactly the override value. It touches only
// the overridden fields and leaves everything else the pipeline wrote
// alone.
type Tagger struct{}

// NewTagger creates a Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Apply writes the override directives to one MP3 file.
//
// Artist overrides set both TPE1 (lead artist) and TPE2 (album artist)
// so library scanners that group by album artist agree with the
// override. Album overrides set TALB.
func (t *Tagger) Apply(path string, overrides []layout.Override) error {
	if len(overrides) == 0 {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening tags of %s: %w", path, err)
	}
	defer tag.Close()

	for _, o := range overrides {
		switch o.Field {
		case layout.FieldArtist:
			tag.SetArtist(o.Value)
			tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, o.Value)
		case layout.FieldAlbum:
			tag.SetAlbum(o.Value)
		}
	}

	return tag.Save()
}

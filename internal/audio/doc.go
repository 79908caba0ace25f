// Package audio provides ID3 tag manipulation for downloaded MP3
// files.
//
// The Tagger applies metadata-override directives after a download
// run, forcing the artist (TPE1/TPE2) and album (TALB) frames to the
// user-supplied values:
//
//	tagger := audio.NewTagger()
//	for _, path := range downloadedFiles {
//	    if err := tagger.Apply(path, overrides); err != nil {
//	        log.Printf("Failed to tag %s: %v", path, err)
//	    }
//	}
//
// No other metadata is parsed or synthesized; titles, track numbers
// and artwork stay as the external pipeline wrote them.
package audio

package download

import "strings"

// Downloader output markers. The final MP3 path is announced by the
// audio extraction step; plain download destinations are intermediate
// files.
const (
	extractAudioPrefix = "[ExtractAudio] Destination: "
	errorPrefix        = "ERROR"
	warningPrefix      = "WARNING"
)

// destinationFromLine extracts the produced file path from an audio
// extraction destination line.
func destinationFromLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(trimmed, extractAudioPrefix); ok && rest != "" {
		return rest, true
	}
	return "", false
}

// isArchiveSkip reports whether the line announces an item skipped via
// the duplicate archive.
func isArchiveSkip(line string) bool {
	return strings.Contains(line, "has already been recorded in the archive")
}

// classifyLine maps a downloader output line to a progress level.
// Everything that is not an error or warning is verbose noise; the
// interesting lines (destinations, archive skips) are handled before
// classification.
func classifyLine(line string) ProgressLevel {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, errorPrefix):
		return LevelError
	case strings.HasPrefix(trimmed, warningPrefix):
		return LevelWarning
	default:
		return LevelVerbose
	}
}

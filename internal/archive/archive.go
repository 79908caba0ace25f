// Package archive locates and inspects the duplicate-skip archive
// file. The file itself is a newline-delimited list of opaque
// identifiers owned and interpreted entirely by the external
// downloader; this package only resolves its path and counts entries
// for diagnostics.
package archive

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Prepare ensures the archive file's parent directory exists so the
// downloader can create the file on first use.
func Prepare(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// Count returns the number of identifiers recorded in the archive.
// A missing file counts as zero; it simply has not been created yet.
func Count(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count, scanner.Err()
}

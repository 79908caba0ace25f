package ytdlp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// External binaries this wrapper delegates to. The transcoder is never
// invoked directly; the downloader drives it for audio conversion and
// thumbnail cropping.
const (
	DownloaderBinary = "yt-dlp"
	TranscoderBinary = "ffmpeg"
)

// MissingDependencyError reports an external binary that could not be
// found on PATH, with remediation instructions for the user.
type MissingDependencyError struct {
	Binary string
	Remedy string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s not found in PATH (%s)", e.Binary, e.Remedy)
}

// Dependency describes one probed external binary for diagnostics.
type Dependency struct {
	Name    string
	Path    string
	Version string
	Found   bool
}

// Probe verifies both external binaries are present, returning a
// MissingDependencyError for the first one missing.
func Probe() error {
	if _, err := exec.LookPath(DownloaderBinary); err != nil {
		return &MissingDependencyError{
			Binary: DownloaderBinary,
			Remedy: "install it from https://github.com/yt-dlp/yt-dlp or via your package manager",
		}
	}
	if _, err := exec.LookPath(TranscoderBinary); err != nil {
		return &MissingDependencyError{
			Binary: TranscoderBinary,
			Remedy: "install it via your package manager, e.g. apt install ffmpeg",
		}
	}
	return nil
}

// Check probes both binaries and reports their location and version.
func Check(ctx context.Context) []Dependency {
	deps := make([]Dependency, 0, 2)
	for _, tool := range []struct {
		name       string
		versionArg string
	}{
		{DownloaderBinary, "--version"},
		{TranscoderBinary, "-version"},
	} {
		dep := Dependency{Name: tool.name}
		if path, err := exec.LookPath(tool.name); err == nil {
			dep.Found = true
			dep.Path = path
			if out, err := exec.CommandContext(ctx, tool.name, tool.versionArg).Output(); err == nil {
				dep.Version = firstLine(string(out))
			}
		}
		deps = append(deps, dep)
	}
	return deps
}

// Client invokes the external downloader.
type Client struct {
	binary string
}

// New returns a Client that runs the downloader found on PATH.
func New() *Client {
	return &Client{binary: DownloaderBinary}
}

// Run executes the downloader with the given arguments, streaming
// every output line (stdout and stderr interleaved per pipe) to
// onLine. It blocks until the process exits and returns the error from
// the process, if any; the exit status can be recovered with ExitCode.
func (c *Client) Run(ctx context.Context, args []string, onLine func(line string)) error {
	cmd := exec.CommandContext(ctx, c.binary, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("connecting to %s stdout: %w", c.binary, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("connecting to %s stderr: %w", c.binary, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.binary, err)
	}

	// Drain both pipes before Wait; Wait closes them.
	g := new(errgroup.Group)
	for _, pipe := range []io.Reader{stdout, stderr} {
		pipe := pipe
		g.Go(func() error {
			scanner := bufio.NewScanner(pipe)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				if onLine != nil {
					onLine(scanner.Text())
				}
			}
			return scanner.Err()
		})
	}

	pumpErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return err
	}
	return pumpErr
}

// Update runs the downloader's self-update and streams its output.
func (c *Client) Update(ctx context.Context, onLine func(line string)) error {
	return c.Run(ctx, []string{"--update"}, onLine)
}

// ExitCode extracts the process exit status from a Run error.
// Returns 0 for nil and -1 when the process never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Package ytdlp adapts the external yt-dlp downloader behind a narrow
// interface: build an argument list from a structured request, run the
// process, and relay its exit status. All downloading, transcoding,
// metadata embedding and thumbnail work happens inside yt-dlp and the
// ffmpeg transcoder it drives; none of that behavior is absorbed here.
//
// # Running a download
//
//	args := ytdlp.BuildArgs(req, template, overrides, "0")
//	err := ytdlp.New().Run(ctx, args, func(line string) {
//	    fmt.Println(line)
//	})
//	if code := ytdlp.ExitCode(err); code != 0 {
//	    // binary outcome only; no interpretation or retry
//	}
//
// # Dependency probing
//
// Probe reports the first missing external binary with remediation
// instructions; Check returns location and version of both for the
// --check diagnostic.
package ytdlp

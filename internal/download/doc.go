// Package download orchestrates one run of the external downloader.
//
// # Manager
//
// The Manager coordinates the run end to end:
//
//  1. Validate the request
//  2. Probe for the external binaries
//  3. Resolve the output template and metadata overrides
//  4. Invoke the downloader and classify its output lines
//  5. Re-assert metadata overrides on the produced files
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	err := manager.Download(ctx, req)
//
// # Progress Tracking
//
// Progress is reported via a callback receiving ProgressEvent with
// levels Info, Verbose, Warning, Error and Success. The downloader's
// raw output is relayed at verbose level; destinations, archive skips,
// errors and warnings are surfaced at higher levels.
//
// # Concurrency
//
// One external process per run, awaited synchronously. The only
// internal concurrency is the pair of output-pipe pumps inside the
// downloader client.
package download

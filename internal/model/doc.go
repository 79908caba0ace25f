// Package model defines the core data structures used throughout
// yt2jellyfin.
//
// # DownloadRequest
//
// DownloadRequest captures one invocation: the URL or search query,
// the layout mode, optional artist/album overrides, and the switches
// passed through to the external downloader:
//
//	req := &model.DownloadRequest{
//	    Input:       "lofi hip hop",
//	    IsSearch:    true,
//	    SearchCount: 5,
//	    OutputDir:   "/srv/media/music",
//	    Layout:      model.LayoutDefault,
//	}
//
// Requests are immutable once built; Validate reports usage errors
// before anything is executed.
//
// # Layout modes
//
// LayoutMode selects the folder nesting scheme:
//   - LayoutDefault: Artist/Album/Title
//   - LayoutFlat: everything directly under the output directory
//   - LayoutPlaylistFolder: Artist/Playlist/NN - Title
package model

package downloader

import (
	"context"
)

// MediaKind is what the user asked to receive back.
type MediaKind int

const (
	KindUnset MediaKind = iota
	KindAudio
	KindVideo
)

func (k MediaKind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unset"
	}
}

// Metadata is what a cheap, no-download probe of a URL yields.
type Metadata struct {
	ID          string
	Title       string
	Uploader    string
	Description string
	Duration    int
	Width       int
	Height      int
	Restricted  bool
	IsPlaylist  bool
}

// PlaylistEntry is one item of a flat (non-downloading) playlist listing.
type PlaylistEntry struct {
	ID    string
	Title string
	URL   string
}

// FetchRequest describes a single fetch-and-mux invocation.
type FetchRequest struct {
	URL            string
	FormatSelector string
	// OutputBase is the extension-less output path; the engine appends
	// whatever extension the muxed result ends up with.
	OutputBase     string
	WriteThumbnail bool
}

// Artifact is the on-disk result of a fetch. The caller owns both files and
// must delete them before returning, whatever the outcome.
type Artifact struct {
	MediaPath     string
	ThumbnailPath string
}

// ProgressFunc is invoked on every progress tick of an in-flight fetch.
// Cancellation of the fetch context is observed at these ticks.
type ProgressFunc func(percent float64)

// Engine abstracts the external extraction engine.
type Engine interface {
	Probe(ctx context.Context, url string) (*Metadata, error)
	FlatEntries(ctx context.Context, url string) ([]PlaylistEntry, error)
	Fetch(ctx context.Context, req *FetchRequest, onProgress ProgressFunc) (*Artifact, error)
}

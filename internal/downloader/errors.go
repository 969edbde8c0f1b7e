package downloader

import "errors"

// Closed set of engine error kinds. The yt-dlp adapter classifies engine
// output into these once, at its boundary; everything above branches with
// errors.Is instead of matching message text.
var (
	ErrRestricted        = errors.New("content is age or region restricted")
	ErrUnavailable       = errors.New("content is unavailable")
	ErrFormatUnavailable = errors.New("requested format is not available")
	ErrNetwork           = errors.New("network failure while fetching")
)

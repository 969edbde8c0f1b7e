package ytdlp

import (
	"net/url"
	"strings"
)

// Adaptation is the per-platform-family tweak applied where the generic
// selector or extraction path is known to be unreliable.
type Adaptation struct {
	// Headers are added to every engine request for this platform.
	Headers map[string]string
	// ExtractorArgs is passed through to the engine's extractor.
	ExtractorArgs string
	// FormatOverride replaces the requested video selector entirely.
	FormatOverride string
}

// adaptations is keyed by canonical host suffix; one entry per platform
// family is sufficient.
var adaptations = map[string]Adaptation{
	"twitter.com": {
		// Complex mp4 selectors are unreliable for tweets; take the best mux.
		FormatOverride: "best",
	},
	"instagram.com": {
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		},
	},
	"tiktok.com": {
		ExtractorArgs: "tiktok:api_hostname=api22-normal-c-alisg.tiktokv.com",
	},
}

// AdaptationFor looks up the platform family for a URL host. The zero
// Adaptation means no tweaks.
func AdaptationFor(rawURL string) Adaptation {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Adaptation{}
	}
	host := strings.ToLower(parsedURL.Hostname())
	for domain, adaptation := range adaptations {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return adaptation
		}
	}
	return Adaptation{}
}

package utils

import (
	"net/url"
	"regexp"
	"strings"

	youtube "github.com/kkdai/youtube/v2"
)

var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// preferredHosts is the allow-list of platforms the bot advertises support
// for. Used for messaging only; any extractable URL is still attempted.
var preferredHosts = []string{
	"youtube.com",
	"youtu.be",
	"tiktok.com",
	"likee.video",
	"twitter.com",
	"x.com",
	"instagram.com",
}

// IsValidURL reports whether text is a single http(s) URL with a host.
func IsValidURL(text string) bool {
	parsedURL, err := url.ParseRequestURI(text)
	if err != nil {
		return false
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false
	}
	return hostPattern.MatchString(parsedURL.Hostname())
}

func hostOf(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsedURL.Hostname())
}

func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// IsPreferredPlatform reports whether the URL belongs to one of the
// advertised platforms.
func IsPreferredPlatform(rawURL string) bool {
	host := hostOf(rawURL)
	if host == "" {
		return false
	}
	for _, domain := range preferredHosts {
		if hostMatches(host, domain) {
			return true
		}
	}
	return false
}

// IsYouTubeURL reports whether the URL points at a YouTube item or
// collection, the only inputs the quality ladder applies to.
func IsYouTubeURL(rawURL string) bool {
	host := hostOf(rawURL)
	if !hostMatches(host, "youtube.com") && !hostMatches(host, "youtu.be") {
		return false
	}
	if _, err := youtube.ExtractVideoID(rawURL); err == nil {
		return true
	}
	// Playlist and channel links carry no video id.
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsedURL.Query().Has("list") {
		return true
	}
	for _, prefix := range []string{"/playlist", "/channel/", "/c/", "/@"} {
		if strings.HasPrefix(parsedURL.Path, prefix) {
			return true
		}
	}
	return false
}

// ExtractURLs returns every whitespace-delimited token of text that is a
// valid URL, in order. Only the first is ever acted on; the rest let the
// caller warn about multiple links.
func ExtractURLs(text string) []string {
	var urls []string
	for _, token := range strings.Fields(text) {
		if IsValidURL(token) {
			urls = append(urls, token)
		}
	}
	return urls
}

// NormalizeURL rewrites known URL aliasing before any extraction call.
// Currently this is the micro-blogging short domain only.
func NormalizeURL(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := strings.ToLower(parsedURL.Hostname())
	if host == "x.com" || strings.HasSuffix(host, ".x.com") {
		parsedURL.Host = "twitter.com"
		return parsedURL.String()
	}
	return rawURL
}

package ytdlp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
)

const (
	probeTimeout  = 30 * time.Second
	socketTimeout = "30"
	// fetchRetries is the engine's own transient-fetch retry budget,
	// distinct from the format-fallback retry the orchestrator drives.
	fetchRetries = "3"
)

var thumbnailExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Engine drives the yt-dlp binary. It implements downloader.Engine.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

type probeEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type probeInfo struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Uploader     string       `json:"uploader"`
	Description  string       `json:"description"`
	Duration     float64      `json:"duration"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	AgeLimit     int          `json:"age_limit"`
	Availability string       `json:"availability"`
	Type         string       `json:"_type"`
	Entries      []probeEntry `json:"entries"`
}

func runProbe(ctx context.Context, url string) (*probeInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"-J", "--flat-playlist", "--no-warnings",
		"--socket-timeout", socketTimeout,
		url)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, classifyEngineError(string(exitErr.Stderr), err)
		}
		return nil, fmt.Errorf("%w: %v", downloader.ErrNetwork, err)
	}

	var info probeInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("parse probe json: %w", err)
	}
	return &info, nil
}

func restricted(info *probeInfo) bool {
	if info.AgeLimit >= 18 {
		return true
	}
	switch info.Availability {
	case "needs_auth", "premium_only", "subscriber_only":
		return true
	}
	return false
}

// Probe fetches metadata without downloading anything.
func (*Engine) Probe(ctx context.Context, url string) (*downloader.Metadata, error) {
	info, err := runProbe(ctx, url)
	if err != nil {
		return nil, err
	}
	return &downloader.Metadata{
		ID:          info.ID,
		Title:       info.Title,
		Uploader:    info.Uploader,
		Description: info.Description,
		Duration:    int(info.Duration),
		Width:       info.Width,
		Height:      info.Height,
		Restricted:  restricted(info),
		IsPlaylist:  info.Type == "playlist" || len(info.Entries) > 0,
	}, nil
}

// FlatEntries lists a collection without downloading its items.
func (*Engine) FlatEntries(ctx context.Context, url string) ([]downloader.PlaylistEntry, error) {
	info, err := runProbe(ctx, url)
	if err != nil {
		return nil, err
	}

	entries := make([]downloader.PlaylistEntry, 0, len(info.Entries))
	for _, e := range info.Entries {
		entryURL := e.URL
		if !strings.HasPrefix(entryURL, "http") {
			if e.ID == "" {
				continue
			}
			entryURL = "https://www.youtube.com/watch?v=" + e.ID
		}
		entries = append(entries, downloader.PlaylistEntry{
			ID:    e.ID,
			Title: e.Title,
			URL:   entryURL,
		})
	}
	return entries, nil
}

func buildFetchArgs(req *downloader.FetchRequest) []string {
	selector := req.FormatSelector
	adaptation := AdaptationFor(req.URL)
	if adaptation.FormatOverride != "" {
		selector = adaptation.FormatOverride
	}

	args := []string{
		"--newline",
		"--no-warnings",
		"--no-playlist",
		"--socket-timeout", socketTimeout,
		"--retries", fetchRetries,
		"-f", selector,
		"-o", req.OutputBase + ".%(ext)s",
	}
	for key, value := range adaptation.Headers {
		args = append(args, "--add-header", key+":"+value)
	}
	if adaptation.ExtractorArgs != "" {
		args = append(args, "--extractor-args", adaptation.ExtractorArgs)
	}
	if req.WriteThumbnail {
		args = append(args, "--write-thumbnail", "--convert-thumbnails", "jpg")
	}
	return append(args, req.URL)
}

// Fetch downloads and muxes one item to req.OutputBase.<ext>. Cancellation of
// ctx kills the engine process; partial files are removed before returning.
func (*Engine) Fetch(ctx context.Context, req *downloader.FetchRequest, onProgress downloader.ProgressFunc) (*downloader.Artifact, error) {
	cmd := exec.CommandContext(ctx, "yt-dlp", buildFetchArgs(req)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start yt-dlp: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "[download]") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		percentStr := strings.TrimSuffix(fields[1], "%")
		if percent, parseErr := strconv.ParseFloat(percentStr, 64); parseErr == nil && onProgress != nil {
			onProgress(percent)
		}
	}

	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		removePartials(req.OutputBase)
		return nil, ctx.Err()
	}
	if waitErr != nil {
		removePartials(req.OutputBase)
		return nil, classifyEngineError(stderr.String(), waitErr)
	}

	artifact := locateArtifact(req.OutputBase)
	if artifact.MediaPath == "" {
		return nil, fmt.Errorf("%w: no output file produced", downloader.ErrUnavailable)
	}
	return &artifact, nil
}

// locateArtifact finds the muxed media file and an optional thumbnail among
// OutputBase.* on disk.
func locateArtifact(outputBase string) downloader.Artifact {
	var artifact downloader.Artifact
	matches, err := filepath.Glob(outputBase + ".*")
	if err != nil {
		return artifact
	}
	for _, match := range matches {
		ext := strings.ToLower(filepath.Ext(match))
		switch {
		case ext == ".part" || ext == ".ytdl" || ext == ".ytdlp" || ext == ".temp":
			continue
		case thumbnailExts[ext]:
			artifact.ThumbnailPath = match
		default:
			artifact.MediaPath = match
		}
	}
	return artifact
}

// removePartials deletes whatever a failed or cancelled run left behind.
func removePartials(outputBase string) {
	matches, err := filepath.Glob(outputBase + "*")
	if err != nil {
		return
	}
	for _, match := range matches {
		if removeErr := os.Remove(match); removeErr != nil && !os.IsNotExist(removeErr) {
			logrus.WithError(removeErr).Debugf("Failed to remove partial file: %s", match)
		} else if removeErr == nil {
			logrus.Debugf("Removed partial file: %s", match)
		}
	}
}

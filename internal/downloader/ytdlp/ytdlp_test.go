package ytdlp

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
)

func TestBuildFetchArgs(t *testing.T) {
	req := &downloader.FetchRequest{
		URL:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		FormatSelector: "best[height<=720]",
		OutputBase:     "/tmp/clips/My_Clip",
		WriteThumbnail: true,
	}

	args := buildFetchArgs(req)

	for _, want := range []string{"--newline", "--no-playlist", "--write-thumbnail"} {
		if !slices.Contains(args, want) {
			t.Errorf("args missing %s: %v", want, args)
		}
	}
	if i := slices.Index(args, "-f"); i < 0 || args[i+1] != "best[height<=720]" {
		t.Errorf("selector not passed through: %v", args)
	}
	if i := slices.Index(args, "-o"); i < 0 || args[i+1] != "/tmp/clips/My_Clip.%(ext)s" {
		t.Errorf("output template wrong: %v", args)
	}
	if args[len(args)-1] != req.URL {
		t.Errorf("url must be the final argument: %v", args)
	}
}

func TestBuildFetchArgsAppliesPlatformOverride(t *testing.T) {
	req := &downloader.FetchRequest{
		URL:            "https://twitter.com/user/status/123",
		FormatSelector: "best[height<=1080]",
		OutputBase:     "/tmp/clips/tweet",
	}

	args := buildFetchArgs(req)

	if i := slices.Index(args, "-f"); i < 0 || args[i+1] != "best" {
		t.Errorf("tweet selector not overridden: %v", args)
	}
	if slices.Contains(args, "--write-thumbnail") {
		t.Errorf("thumbnail flag present without WriteThumbnail: %v", args)
	}
}

func TestBuildFetchArgsAddsHeaders(t *testing.T) {
	req := &downloader.FetchRequest{
		URL:            "https://www.instagram.com/reel/abc/",
		FormatSelector: "best",
		OutputBase:     "/tmp/clips/reel",
	}

	args := buildFetchArgs(req)

	i := slices.Index(args, "--add-header")
	if i < 0 || !strings.HasPrefix(args[i+1], "User-Agent:") {
		t.Errorf("instagram user agent header missing: %v", args)
	}
}

func TestLocateArtifact(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "clip")

	for _, name := range []string{"clip.mp4", "clip.jpg", "clip.mp4.part"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	artifact := locateArtifact(base)
	if artifact.MediaPath != base+".mp4" {
		t.Errorf("MediaPath = %q, want %q", artifact.MediaPath, base+".mp4")
	}
	if artifact.ThumbnailPath != base+".jpg" {
		t.Errorf("ThumbnailPath = %q, want %q", artifact.ThumbnailPath, base+".jpg")
	}
}

func TestLocateArtifactNothingProduced(t *testing.T) {
	artifact := locateArtifact(filepath.Join(t.TempDir(), "clip"))
	if artifact.MediaPath != "" || artifact.ThumbnailPath != "" {
		t.Errorf("artifact found in empty directory: %+v", artifact)
	}
}

func TestRemovePartials(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "clip")

	leftovers := []string{"clip.mp4.part", "clip.f137.mp4", "clip.jpg"}
	for _, name := range leftovers {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	unrelated := filepath.Join(dir, "other.mp4")
	if err := os.WriteFile(unrelated, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	removePartials(base)

	for _, name := range leftovers {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("leftover %s survived cleanup", name)
		}
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("cleanup removed an unrelated file")
	}
}

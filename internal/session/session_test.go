package session

import (
	"context"
	"testing"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
)

func TestSessionStartsIdle(t *testing.T) {
	s := newSession()
	view := s.View()
	if view.State != StateIdle {
		t.Errorf("initial state = %v, want idle", view.State)
	}
	if view.QualityTier != -1 {
		t.Errorf("initial tier = %d, want -1", view.QualityTier)
	}
}

func TestSetLinkMovesToFormatChoice(t *testing.T) {
	s := newSession()
	s.SetLink("https://youtu.be/dQw4w9WgXcQ", true)

	view := s.View()
	if view.State != StateChoosingFormat {
		t.Errorf("state = %v, want choosing_format", view.State)
	}
	if !view.TierCapable {
		t.Error("TierCapable = false, want true")
	}
	if view.PendingURL != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("PendingURL = %q", view.PendingURL)
	}
}

func TestSetLinkClearsPreviousChoices(t *testing.T) {
	s := newSession()
	s.SetLink("https://youtu.be/aaa", true)
	s.SetMediaKind(downloader.KindVideo)
	s.SetQualityTier(2)

	s.SetLink("https://www.tiktok.com/@user/video/1", false)

	view := s.View()
	if view.MediaKind != downloader.KindUnset {
		t.Errorf("MediaKind = %v, want unset", view.MediaKind)
	}
	if view.QualityTier != -1 {
		t.Errorf("QualityTier = %d, want -1", view.QualityTier)
	}
	if view.TierCapable {
		t.Error("TierCapable = true, want false")
	}
}

func TestBeginDownloadAndCancel(t *testing.T) {
	s := newSession()
	s.SetLink("https://youtu.be/dQw4w9WgXcQ", true)

	ctx, dl := s.BeginDownload(context.Background())
	if s.View().State != StateDownloading {
		t.Fatalf("state = %v, want downloading", s.View().State)
	}
	if s.ActiveDownload() != dl {
		t.Fatal("ActiveDownload did not return the new handle")
	}
	if dl.Finished() {
		t.Fatal("fresh download reports finished")
	}

	dl.Cancel()
	select {
	case <-ctx.Done():
	default:
		t.Fatal("Cancel did not cancel the download context")
	}

	dl.Finish()
	if !dl.Finished() {
		t.Error("Finished = false after Finish")
	}
	dl.Wait() // must not block
}

func TestFinishDownloadResetsSession(t *testing.T) {
	s := newSession()
	s.SetLink("https://youtu.be/dQw4w9WgXcQ", true)
	_, dl := s.BeginDownload(context.Background())

	s.FinishDownload(dl)

	view := s.View()
	if view.State != StateIdle || view.PendingURL != "" {
		t.Errorf("session not reset: %+v", view)
	}
	if s.ActiveDownload() != nil {
		t.Error("active download survived the reset")
	}
}

func TestFreshLinkDetachesRunningDownload(t *testing.T) {
	s := newSession()
	s.SetLink("https://youtu.be/aaa", true)
	_, dl := s.BeginDownload(context.Background())

	// A new link arrives while the first download is still running.
	s.SetLink("https://youtu.be/bbb", true)

	// The old download finishing must not wipe the new conversation.
	s.FinishDownload(dl)

	view := s.View()
	if view.State != StateChoosingFormat {
		t.Errorf("state = %v, want choosing_format", view.State)
	}
	if view.PendingURL != "https://youtu.be/bbb" {
		t.Errorf("PendingURL = %q, want the new link", view.PendingURL)
	}
}

func TestStoreReturnsSameSessionPerChat(t *testing.T) {
	store := NewStore()
	a := store.Get(1)
	if store.Get(1) != a {
		t.Error("Get returned a different session for the same chat")
	}
	if store.Get(2) == a {
		t.Error("distinct chats share a session")
	}
}

func TestCancelActiveStopsRunningDownloads(t *testing.T) {
	store := NewStore()
	s := store.Get(7)
	ctx, dl := s.BeginDownload(context.Background())

	go func() {
		<-ctx.Done()
		dl.Finish()
	}()

	store.CancelActive() // blocks until the goroutine finishes

	if !dl.Finished() {
		t.Error("download still running after CancelActive")
	}
}

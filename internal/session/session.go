package session

import (
	"context"
	"sync"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
)

// State is where a chat currently is in the conversation.
type State int

const (
	StateIdle State = iota
	StateChoosingFormat
	StateChoosingQuality
	StateDownloading
)

func (s State) String() string {
	switch s {
	case StateChoosingFormat:
		return "choosing_format"
	case StateChoosingQuality:
		return "choosing_quality"
	case StateDownloading:
		return "downloading"
	default:
		return "idle"
	}
}

// Download is the handle to one in-flight download. Cancellation is
// cooperative: Cancel cancels the context threaded into the engine call, and
// the download goroutine closes done when it has fully finished, cleanup
// included.
type Download struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (d *Download) Cancel() {
	d.cancel()
}

// Finish marks the download as terminated. Called exactly once by the
// goroutine that ran it.
func (d *Download) Finish() {
	close(d.done)
}

func (d *Download) Finished() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the download has fully terminated.
func (d *Download) Wait() {
	<-d.done
}

// Snapshot is a consistent copy of a session's fields.
type Snapshot struct {
	State        State
	PendingURL   string
	TierCapable  bool
	MediaKind    downloader.MediaKind
	QualityTier  int
	LastPromptID int
}

// Session is the per-chat conversation scratchpad. It is created lazily on
// first contact and reset, not destroyed, between interactions.
type Session struct {
	mu sync.Mutex

	state        State
	pendingURL   string
	tierCapable  bool
	mediaKind    downloader.MediaKind
	qualityTier  int
	lastPromptID int
	active       *Download
}

func newSession() *Session {
	return &Session{qualityTier: -1}
}

// Reset returns every field to its default. The active download handle is
// dropped but not cancelled; callers cancel explicitly when that is meant.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.pendingURL = ""
	s.tierCapable = false
	s.mediaKind = downloader.KindUnset
	s.qualityTier = -1
	s.lastPromptID = 0
	s.active = nil
}

// SetLink stores a fresh URL and moves to the format choice. A fresh link
// supersedes whatever was in flight: the previous download keeps running to
// completion but is detached from the session.
func (s *Session) SetLink(url string, tierCapable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingURL = url
	s.tierCapable = tierCapable
	s.mediaKind = downloader.KindUnset
	s.qualityTier = -1
	s.state = StateChoosingFormat
	s.active = nil
}

func (s *Session) SetMediaKind(kind downloader.MediaKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mediaKind = kind
}

func (s *Session) SetQualityTier(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qualityTier = index
}

func (s *Session) SetState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// SetPrompt remembers the last bot-sent prompt or status message so /cancel
// can delete it.
func (s *Session) SetPrompt(messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPromptID = messageID
}

// View returns a copy of the session fields.
func (s *Session) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		State:        s.state,
		PendingURL:   s.pendingURL,
		TierCapable:  s.tierCapable,
		MediaKind:    s.mediaKind,
		QualityTier:  s.qualityTier,
		LastPromptID: s.lastPromptID,
	}
}

// BeginDownload transitions to downloading and installs a fresh cancellable
// download handle rooted at parent.
func (s *Session) BeginDownload(parent context.Context) (context.Context, *Download) {
	ctx, cancel := context.WithCancel(parent)
	dl := &Download{cancel: cancel, done: make(chan struct{})}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDownloading
	s.active = dl
	return ctx, dl
}

// FinishDownload resets the session after dl terminates, unless a newer link
// has already replaced it as the active download.
func (s *Session) FinishDownload(dl *Download) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != dl {
		return
	}
	s.state = StateIdle
	s.pendingURL = ""
	s.tierCapable = false
	s.mediaKind = downloader.KindUnset
	s.qualityTier = -1
	s.lastPromptID = 0
	s.active = nil
}

func (s *Session) ActiveDownload() *Download {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Store holds one Session per chat.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the chat's session, creating it on first contact.
func (st *Store) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chatID]
	if !ok {
		s = newSession()
		st.sessions[chatID] = s
	}
	return s
}

// CancelActive requests cancellation of every in-flight download, for
// shutdown.
func (st *Store) CancelActive() {
	st.mu.Lock()
	sessions := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		sessions = append(sessions, s)
	}
	st.mu.Unlock()

	for _, s := range sessions {
		if dl := s.ActiveDownload(); dl != nil && !dl.Finished() {
			dl.Cancel()
			dl.Wait()
		}
	}
}

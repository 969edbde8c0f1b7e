package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger appends one human-readable record per successful delivery.
// The file is never read back by the bot.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewLogger(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Append writes a single download record. Failures are logged and swallowed;
// history must never break a delivery.
func (l *Logger) Append(user, url, mediaKind, filename string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.WithError(err).Error("Failed to create history directory")
			return
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logrus.WithError(err).Error("Failed to open history file")
		return
	}
	defer f.Close()

	record := fmt.Sprintf("%s | %s | %s | %s | %s\n",
		l.now().Format("2006-01-02 15:04:05"), user, mediaKind, url, filename)
	if _, err := f.WriteString(record); err != nil {
		logrus.WithError(err).Error("Failed to append history record")
	}
}

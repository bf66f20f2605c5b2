package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ereporting/internal/domain"
)

// NotificationLog is the shared append-only notification list. Entries are
// only ever added; there is no consumption or acknowledgement.
type NotificationLog struct {
	mu      sync.RWMutex
	entries []domain.Notification
}

func NewNotificationLog() *NotificationLog {
	return &NotificationLog{}
}

// Append fills in id and createdAt when absent and adds the notification to
// the end of the log.
func (l *NotificationLog) Append(n domain.Notification) domain.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, n)
	return n
}

// List returns all notifications in append order.
func (l *NotificationLog) List() []domain.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Notification{}, l.entries...)
}

// Len reports the number of logged notifications.
func (l *NotificationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

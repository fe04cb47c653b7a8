package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/threadmind-dev/threadmind/internal/domain"
)

// AddNotification prepends an entry with a generated id and timestamp. The
// per-user queue is bounded; the oldest entry is evicted on overflow.
func (s *Storage) AddNotification(uid domain.UserId, message, typ string) *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &domain.Notification{
		Id:        uuid.NewString(),
		Message:   message,
		Type:      typ,
		Timestamp: time.Now().UTC(),
	}
	queue := append([]*domain.Notification{n}, s.notifications[uid]...)
	if s.notificationCap > 0 && len(queue) > s.notificationCap {
		queue = queue[:s.notificationCap]
	}
	s.notifications[uid] = queue

	cp := *n
	return &cp
}

func (s *Storage) Notifications(uid domain.UserId) []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queue := s.notifications[uid]
	out := make([]*domain.Notification, len(queue))
	for i, n := range queue {
		cp := *n
		out[i] = &cp
	}
	return out
}

func (s *Storage) RemoveNotification(uid domain.UserId, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.notifications[uid]
	for i, n := range queue {
		if n.Id == id {
			s.notifications[uid] = append(queue[:i], queue[i+1:]...)
			return
		}
	}
}

// ClearNotifications empties the queue; serves both markAllAsRead and
// clearAll.
func (s *Storage) ClearNotifications(uid domain.UserId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifications, uid)
}

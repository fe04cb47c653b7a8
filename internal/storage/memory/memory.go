// Package memory implements the entity store as normalized in-memory
// collections. Each thread exists as exactly one record keyed by id; the
// global and per-author views are index lists of ids, so a mutation touches
// one record and every view observes it. All mutations run under a single
// write lock, which serializes them the way a reducer dispatch queue would.
package memory

import (
	"sync"

	"github.com/threadmind-dev/threadmind/internal/domain"
)

type Storage struct {
	mu sync.RWMutex

	threads  map[domain.ThreadId]*domain.Thread
	order    []domain.ThreadId                    // newest first
	byAuthor map[domain.UserId][]domain.ThreadId // newest first

	users        map[domain.UserId]*domain.User
	usersByEmail map[domain.Email]domain.UserId

	notifications   map[domain.UserId][]*domain.Notification // newest first
	notificationCap int
}

func New(notificationCap int) *Storage {
	return &Storage{
		threads:         make(map[domain.ThreadId]*domain.Thread),
		byAuthor:        make(map[domain.UserId][]domain.ThreadId),
		users:           make(map[domain.UserId]*domain.User),
		usersByEmail:    make(map[domain.Email]domain.UserId),
		notifications:   make(map[domain.UserId][]*domain.Notification),
		notificationCap: notificationCap,
	}
}

// cloneThread returns a deep copy so callers never share slices with the
// stored record.
func cloneThread(t *domain.Thread) *domain.Thread {
	cp := *t
	cp.Tags = append([]domain.Tag(nil), t.Tags...)
	cp.Contributors = append([]domain.UserRef(nil), t.Contributors...)
	cp.LikedBy = append([]domain.UserId(nil), t.LikedBy...)
	cp.Comments = make([]*domain.Comment, len(t.Comments))
	for i, c := range t.Comments {
		cp.Comments[i] = cloneComment(c)
	}
	return &cp
}

func cloneComment(c *domain.Comment) *domain.Comment {
	cp := *c
	cp.LikedBy = append([]domain.UserId(nil), c.LikedBy...)
	return &cp
}

func removeId(ids []domain.ThreadId, id domain.ThreadId) []domain.ThreadId {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

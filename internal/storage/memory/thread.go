package memory

import (
	"sort"
	"time"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
)

// SetThreads replaces the whole collection and rebuilds the index lists.
func (s *Storage) SetThreads(threads []*domain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threads = make(map[domain.ThreadId]*domain.Thread, len(threads))
	s.order = s.order[:0]
	s.byAuthor = make(map[domain.UserId][]domain.ThreadId)

	for _, t := range threads {
		cp := cloneThread(t)
		s.threads[cp.Id] = cp
		s.order = append(s.order, cp.Id)
		s.byAuthor[cp.Author.Id] = append(s.byAuthor[cp.Author.Id], cp.Id)
	}
}

// CreateThread inserts at the head of the global and author views.
func (s *Storage) CreateThread(t *domain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneThread(t)
	s.threads[cp.Id] = cp
	s.order = append([]domain.ThreadId{cp.Id}, s.order...)
	s.byAuthor[cp.Author.Id] = append([]domain.ThreadId{cp.Id}, s.byAuthor[cp.Author.Id]...)
}

func (s *Storage) Thread(id domain.ThreadId) (*domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.threads[id]
	if !ok {
		return nil, errors.NewNotFound("Thread not found")
	}
	return cloneThread(t), nil
}

func (s *Storage) AllThreads() []*domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.order)
}

func (s *Storage) UserThreads(uid domain.UserId) []*domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byAuthor[uid])
}

// TrendingThreads is a derived view: engagement-scored, best first. It reads
// the same normalized records as every other view, so it can never diverge
// from them.
func (s *Storage) TrendingThreads(limit int) []*domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := s.collect(s.order)
	sort.SliceStable(scored, func(i, j int) bool {
		return trendingScore(scored[i]) > trendingScore(scored[j])
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func trendingScore(t *domain.Thread) int {
	return t.Likes*5 + len(t.Comments)*3 + t.Views
}

// UpdateThread replaces the record by id. An absent id is a silent no-op;
// callers must not assume feedback on that failure.
func (s *Storage) UpdateThread(t *domain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.threads[t.Id]
	if !ok {
		return
	}
	cp := cloneThread(t)
	if old.Author.Id != cp.Author.Id {
		s.byAuthor[old.Author.Id] = removeId(s.byAuthor[old.Author.Id], t.Id)
		s.byAuthor[cp.Author.Id] = append([]domain.ThreadId{t.Id}, s.byAuthor[cp.Author.Id]...)
	}
	s.threads[t.Id] = cp
}

// UpdateThreadContent applies a last-write-wins content replacement, the
// entry point shared by the REST PUT and the realtime channel. Returns false
// when the thread does not exist (the event is dropped).
func (s *Storage) UpdateThreadContent(id domain.ThreadId, content string, contentHtml string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[id]
	if !ok {
		return false
	}
	t.Content = content
	t.ContentHtml = contentHtml
	t.UpdatedAt = time.Now().UTC()
	return true
}

func (s *Storage) DeleteThread(id domain.ThreadId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[id]
	if !ok {
		return errors.NewNotFound("Thread not found")
	}
	delete(s.threads, id)
	s.order = removeId(s.order, id)
	s.byAuthor[t.Author.Id] = removeId(s.byAuthor[t.Author.Id], id)
	return nil
}

// IncrementViews bumps the monotonic view counter. Absent id is a no-op.
func (s *Storage) IncrementViews(id domain.ThreadId) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.threads[id]; ok {
		t.Views++
	}
}

// AddContributor appends user to the contributor list, de-duplicated by id.
// The author is never listed as a contributor. Returns true when appended.
func (s *Storage) AddContributor(id domain.ThreadId, user domain.UserRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[id]
	if !ok {
		return false
	}
	if t.HasContributor(user.Id) {
		return false
	}
	t.Contributors = append(t.Contributors, user)
	return true
}

// SetSummary stores the derived AI summary. Absent id is a no-op.
func (s *Storage) SetSummary(id domain.ThreadId, summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.threads[id]; ok {
		t.AiSummary = summary
	}
}

// ToggleThreadLike toggles membership of uid in the thread's likedBy set.
// Present: remove and decrement (floored at 0). Absent: add and increment.
// The mutation happens on the single normalized record under one lock, so
// every view observes it atomically.
func (s *Storage) ToggleThreadLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[id]
	if !ok {
		return nil, errors.NewNotFound("Thread not found")
	}
	t.Likes, t.LikedBy = toggleLike(t.Likes, t.LikedBy, uid)
	return cloneThread(t), nil
}

func toggleLike(likes int, likedBy []domain.UserId, uid domain.UserId) (int, []domain.UserId) {
	for i, id := range likedBy {
		if id == uid {
			likedBy = append(likedBy[:i], likedBy[i+1:]...)
			if likes > 0 {
				likes--
			}
			return likes, likedBy
		}
	}
	return likes + 1, append(likedBy, uid)
}

func (s *Storage) collect(ids []domain.ThreadId) []*domain.Thread {
	out := make([]*domain.Thread, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.threads[id]; ok {
			out = append(out, cloneThread(t))
		}
	}
	return out
}

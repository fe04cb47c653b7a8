package memory

import (
	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
)

// CreateComment inserts the comment at the head of the matching thread's
// list. Validation is the caller's job; the store is an unconditional
// insert-at-head.
func (s *Storage) CreateComment(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[threadId]
	if !ok {
		return nil, errors.NewNotFound("Thread not found")
	}
	t.Comments = append([]*domain.Comment{cloneComment(c)}, t.Comments...)
	return cloneThread(t), nil
}

// ToggleCommentLike mirrors ToggleThreadLike for a comment nested inside a
// thread. An unknown comment id leaves the store unchanged.
func (s *Storage) ToggleCommentLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[threadId]
	if !ok {
		return nil, errors.NewNotFound("Thread not found")
	}
	for _, c := range t.Comments {
		if c.Id == commentId {
			c.Likes, c.LikedBy = toggleLike(c.Likes, c.LikedBy, uid)
			break
		}
	}
	return cloneThread(t), nil
}

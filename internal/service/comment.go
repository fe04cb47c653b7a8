package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/threadmind-dev/threadmind/internal/domain"
)

type CommentService interface {
	Add(data domain.CommentCreationData) (*domain.Thread, error)
	ToggleLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error)
}

type Comment struct {
	storage   CommentStorage
	validator CommentValidator
	notifier  Notifier
}

type CommentStorage interface {
	CreateComment(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error)
	ToggleCommentLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error)
}

type CommentValidator interface {
	Content(content string) error
}

func NewComment(storage CommentStorage, validator CommentValidator, notifier Notifier) *Comment {
	return &Comment{storage, validator, notifier}
}

// Add validates and inserts a new comment. Rejected content never reaches
// the store; the author gets a warning notification instead.
func (s *Comment) Add(data domain.CommentCreationData) (*domain.Thread, error) {
	if err := s.validator.Content(data.Content); err != nil {
		s.notifier.Notify(data.Author.Id, err.Error(), domain.SeverityWarning)
		return nil, err
	}

	now := time.Now().UTC()
	content := strings.TrimSpace(data.Content)
	c := &domain.Comment{
		Id:          uuid.NewString(),
		ThreadId:    data.ThreadId,
		Content:     content,
		ContentHtml: renderContent(content),
		Author:      data.Author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t, err := s.storage.CreateComment(data.ThreadId, c)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(data.Author.Id, "Comment added", domain.SeveritySuccess)
	if t.Author.Id != data.Author.Id {
		s.notifier.Notify(t.Author.Id, fmt.Sprintf("%s commented on %q", data.Author.Name, t.Title), domain.SeverityInfo)
	}
	return t, nil
}

func (s *Comment) ToggleLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
	t, err := s.storage.ToggleCommentLike(threadId, commentId, uid)
	if err != nil {
		return nil, err
	}
	for _, c := range t.Comments {
		if c.Id == commentId {
			if c.LikedByUser(uid) {
				s.notifier.Notify(uid, "Comment liked", domain.SeveritySuccess)
			} else {
				s.notifier.Notify(uid, "Like removed", domain.SeverityInfo)
			}
			break
		}
	}
	return t, nil
}

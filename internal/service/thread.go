package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
	"github.com/threadmind-dev/threadmind/internal/logger"
	"github.com/threadmind-dev/threadmind/internal/markdown"
)

// Placeholder texts returned when the LLM provider is unavailable; the UI
// shows them instead of failing the request.
const (
	summaryUnavailable  = "Unable to generate summary at this time."
	insightsUnavailable = "Key insights unavailable at this time."
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (*domain.Thread, error)
	Get(id domain.ThreadId) (*domain.Thread, error)
	All() []*domain.Thread
	Trending() []*domain.Thread
	ByUser(uid domain.UserId) []*domain.Thread
	Update(id domain.ThreadId, editor domain.UserRef, data domain.ThreadUpdateData) (*domain.Thread, error)
	UpdateContent(id domain.ThreadId, content string, editor domain.UserRef) bool
	AddContributor(id domain.ThreadId, user domain.UserRef) bool
	Delete(id domain.ThreadId, uid domain.UserId) error
	ToggleLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error)
	GenerateSummary(ctx context.Context, id domain.ThreadId, uid domain.UserId) (string, error)
	GenerateInsights(ctx context.Context, id domain.ThreadId) ([]string, error)
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
	ai        AiClient
	notifier  Notifier

	trendingLimit    int
	summaryMaxTokens int
}

type ThreadStorage interface {
	CreateThread(t *domain.Thread)
	Thread(id domain.ThreadId) (*domain.Thread, error)
	AllThreads() []*domain.Thread
	UserThreads(uid domain.UserId) []*domain.Thread
	TrendingThreads(limit int) []*domain.Thread
	UpdateThread(t *domain.Thread)
	UpdateThreadContent(id domain.ThreadId, content, contentHtml string) bool
	DeleteThread(id domain.ThreadId) error
	IncrementViews(id domain.ThreadId)
	AddContributor(id domain.ThreadId, user domain.UserRef) bool
	SetSummary(id domain.ThreadId, summary string)
	ToggleThreadLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error)
}

type ThreadValidator interface {
	Title(title string) error
	Content(content string) error
	Tags(tags []domain.Tag) error
}

// AiClient is the LLM provider surface the thread service needs. It may be
// nil when no provider credential is configured.
type AiClient interface {
	Summarize(ctx context.Context, content string, maxTokens int) (string, error)
	Insights(ctx context.Context, content string) ([]string, error)
}

type Notifier interface {
	Notify(uid domain.UserId, message, typ string)
}

func NewThread(storage ThreadStorage, validator ThreadValidator, ai AiClient, notifier Notifier, trendingLimit, summaryMaxTokens int) *Thread {
	return &Thread{
		storage:          storage,
		validator:        validator,
		ai:               ai,
		notifier:         notifier,
		trendingLimit:    trendingLimit,
		summaryMaxTokens: summaryMaxTokens,
	}
}

func (s *Thread) Create(data domain.ThreadCreationData) (*domain.Thread, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return nil, err
	}
	if err := s.validator.Content(data.Content); err != nil {
		return nil, err
	}
	if err := s.validator.Tags(data.Tags); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Thread{
		Id:          uuid.NewString(),
		Title:       data.Title,
		Content:     data.Content,
		ContentHtml: renderContent(data.Content),
		Tags:        data.Tags,
		Author:      data.Author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.storage.CreateThread(t)
	s.notifier.Notify(data.Author.Id, "Thread created", domain.SeveritySuccess)
	return t, nil
}

// Get returns the thread and bumps its view counter.
func (s *Thread) Get(id domain.ThreadId) (*domain.Thread, error) {
	s.storage.IncrementViews(id)
	return s.storage.Thread(id)
}

func (s *Thread) All() []*domain.Thread {
	return s.storage.AllThreads()
}

func (s *Thread) Trending() []*domain.Thread {
	return s.storage.TrendingThreads(s.trendingLimit)
}

func (s *Thread) ByUser(uid domain.UserId) []*domain.Thread {
	return s.storage.UserThreads(uid)
}

// Update patches the given fields. Only the author or a contributor may
// edit; concurrent edits resolve last-write-wins.
func (s *Thread) Update(id domain.ThreadId, editor domain.UserRef, data domain.ThreadUpdateData) (*domain.Thread, error) {
	t, err := s.storage.Thread(id)
	if err != nil {
		return nil, err
	}
	if !t.HasContributor(editor.Id) {
		return nil, errors.NewForbidden("Only the author or contributors can edit this thread")
	}

	if data.Title != nil {
		if err := s.validator.Title(*data.Title); err != nil {
			return nil, err
		}
		t.Title = *data.Title
	}
	if data.Content != nil {
		if err := s.validator.Content(*data.Content); err != nil {
			return nil, err
		}
		t.Content = *data.Content
		t.ContentHtml = renderContent(*data.Content)
	}
	if data.Tags != nil {
		if err := s.validator.Tags(*data.Tags); err != nil {
			return nil, err
		}
		t.Tags = *data.Tags
	}
	t.UpdatedAt = time.Now().UTC()

	s.storage.UpdateThread(t)
	return s.storage.Thread(id)
}

// UpdateContent is the realtime entry point: a last-write-wins replacement
// of the content field only. Events for unknown threads report false and are
// dropped by the caller.
func (s *Thread) UpdateContent(id domain.ThreadId, content string, editor domain.UserRef) bool {
	return s.storage.UpdateThreadContent(id, content, renderContent(content))
}

// AddContributor records a realtime collaborator, de-duplicated by user id.
// The thread author learns about first-time joins through a notification.
func (s *Thread) AddContributor(id domain.ThreadId, user domain.UserRef) bool {
	if !s.storage.AddContributor(id, user) {
		return false
	}
	if t, err := s.storage.Thread(id); err == nil && t.Author.Id != user.Id {
		s.notifier.Notify(t.Author.Id, fmt.Sprintf("%s joined %q", user.Name, t.Title), domain.SeverityInfo)
	}
	return true
}

func (s *Thread) Delete(id domain.ThreadId, uid domain.UserId) error {
	t, err := s.storage.Thread(id)
	if err != nil {
		return err
	}
	if t.Author.Id != uid {
		return errors.NewForbidden("Only the author can delete this thread")
	}
	return s.storage.DeleteThread(id)
}

func (s *Thread) ToggleLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error) {
	t, err := s.storage.ToggleThreadLike(id, uid)
	if err != nil {
		return nil, err
	}
	if t.LikedByUser(uid) {
		s.notifier.Notify(uid, "Thread liked", domain.SeveritySuccess)
	} else {
		s.notifier.Notify(uid, "Like removed", domain.SeverityInfo)
	}
	return t, nil
}

// GenerateSummary asks the LLM provider for a summary and stores it on the
// thread. Provider failures degrade to a placeholder; they never fail the
// thread itself.
func (s *Thread) GenerateSummary(ctx context.Context, id domain.ThreadId, uid domain.UserId) (string, error) {
	t, err := s.storage.Thread(id)
	if err != nil {
		return "", err
	}

	if s.ai == nil {
		s.notifier.Notify(uid, "AI provider is not configured", domain.SeverityWarning)
		return summaryUnavailable, nil
	}

	summary, err := s.ai.Summarize(ctx, t.Content, s.summaryMaxTokens)
	if err != nil {
		logger.Log.Warn("summary generation failed", "thread", id, "error", err)
		s.notifier.Notify(uid, "Summary generation failed", domain.SeverityError)
		return summaryUnavailable, nil
	}

	s.storage.SetSummary(id, summary)
	s.notifier.Notify(uid, fmt.Sprintf("Summary ready for %q", t.Title), domain.SeveritySuccess)
	return summary, nil
}

// GenerateInsights returns 3-5 key takeaways, degrading to a placeholder
// list on provider failure.
func (s *Thread) GenerateInsights(ctx context.Context, id domain.ThreadId) ([]string, error) {
	t, err := s.storage.Thread(id)
	if err != nil {
		return nil, err
	}

	if s.ai == nil {
		return []string{insightsUnavailable}, nil
	}

	insights, err := s.ai.Insights(ctx, t.Content)
	if err != nil || len(insights) == 0 {
		logger.Log.Warn("insights generation failed", "thread", id, "error", err)
		return []string{insightsUnavailable}, nil
	}
	return insights, nil
}

func renderContent(content string) string {
	html, err := markdown.Render(content)
	if err != nil {
		logger.Log.Warn("markdown rendering failed", "error", err)
		return ""
	}
	return html
}

package service

import (
	"context"

	"github.com/threadmind-dev/threadmind/internal/ai"
	"github.com/threadmind-dev/threadmind/internal/domain"
)

type mockNotifier struct {
	notifications []mockNotification
}

type mockNotification struct {
	Uid     domain.UserId
	Message string
	Type    string
}

func (m *mockNotifier) Notify(uid domain.UserId, message, typ string) {
	m.notifications = append(m.notifications, mockNotification{uid, message, typ})
}

type mockThreadStorage struct {
	CreateThreadFunc        func(t *domain.Thread)
	ThreadFunc              func(id domain.ThreadId) (*domain.Thread, error)
	AllThreadsFunc          func() []*domain.Thread
	UserThreadsFunc         func(uid domain.UserId) []*domain.Thread
	TrendingThreadsFunc     func(limit int) []*domain.Thread
	UpdateThreadFunc        func(t *domain.Thread)
	UpdateThreadContentFunc func(id domain.ThreadId, content, contentHtml string) bool
	DeleteThreadFunc        func(id domain.ThreadId) error
	IncrementViewsFunc      func(id domain.ThreadId)
	AddContributorFunc      func(id domain.ThreadId, user domain.UserRef) bool
	SetSummaryFunc          func(id domain.ThreadId, summary string)
	ToggleThreadLikeFunc    func(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error)
}

func (m *mockThreadStorage) CreateThread(t *domain.Thread) { m.CreateThreadFunc(t) }
func (m *mockThreadStorage) Thread(id domain.ThreadId) (*domain.Thread, error) {
	return m.ThreadFunc(id)
}
func (m *mockThreadStorage) AllThreads() []*domain.Thread { return m.AllThreadsFunc() }
func (m *mockThreadStorage) UserThreads(uid domain.UserId) []*domain.Thread {
	return m.UserThreadsFunc(uid)
}
func (m *mockThreadStorage) TrendingThreads(limit int) []*domain.Thread {
	return m.TrendingThreadsFunc(limit)
}
func (m *mockThreadStorage) UpdateThread(t *domain.Thread) { m.UpdateThreadFunc(t) }
func (m *mockThreadStorage) UpdateThreadContent(id domain.ThreadId, content, contentHtml string) bool {
	return m.UpdateThreadContentFunc(id, content, contentHtml)
}
func (m *mockThreadStorage) DeleteThread(id domain.ThreadId) error { return m.DeleteThreadFunc(id) }
func (m *mockThreadStorage) IncrementViews(id domain.ThreadId)     { m.IncrementViewsFunc(id) }
func (m *mockThreadStorage) AddContributor(id domain.ThreadId, user domain.UserRef) bool {
	return m.AddContributorFunc(id, user)
}
func (m *mockThreadStorage) SetSummary(id domain.ThreadId, summary string) {
	m.SetSummaryFunc(id, summary)
}
func (m *mockThreadStorage) ToggleThreadLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error) {
	return m.ToggleThreadLikeFunc(id, uid)
}

type mockCommentStorage struct {
	CreateCommentFunc     func(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error)
	ToggleCommentLikeFunc func(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error)
}

func (m *mockCommentStorage) CreateComment(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
	return m.CreateCommentFunc(threadId, c)
}
func (m *mockCommentStorage) ToggleCommentLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
	return m.ToggleCommentLikeFunc(threadId, commentId, uid)
}

type mockAiClient struct {
	SummarizeFunc func(ctx context.Context, content string, maxTokens int) (string, error)
	InsightsFunc  func(ctx context.Context, content string) ([]string, error)
}

func (m *mockAiClient) Summarize(ctx context.Context, content string, maxTokens int) (string, error) {
	return m.SummarizeFunc(ctx, content, maxTokens)
}
func (m *mockAiClient) Insights(ctx context.Context, content string) ([]string, error) {
	return m.InsightsFunc(ctx, content)
}

type mockEmbedder struct {
	SemanticSearchFunc func(ctx context.Context, query string, docs []ai.Document) ([]ai.Match, error)
}

func (m *mockEmbedder) SemanticSearch(ctx context.Context, query string, docs []ai.Document) ([]ai.Match, error) {
	return m.SemanticSearchFunc(ctx, query, docs)
}

type mockAuthStorage struct {
	SaveUserFunc    func(user *domain.User) error
	UserByEmailFunc func(email domain.Email) (*domain.User, error)
	UserFunc        func(id domain.UserId) (*domain.User, error)
}

func (m *mockAuthStorage) SaveUser(user *domain.User) error { return m.SaveUserFunc(user) }
func (m *mockAuthStorage) UserByEmail(email domain.Email) (*domain.User, error) {
	return m.UserByEmailFunc(email)
}
func (m *mockAuthStorage) User(id domain.UserId) (*domain.User, error) { return m.UserFunc(id) }

type mockJwt struct {
	NewTokenFunc func(user *domain.User) (string, error)
}

func (m *mockJwt) NewToken(user *domain.User) (string, error) { return m.NewTokenFunc(user) }

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/threadmind-dev/threadmind/internal/config"
	"github.com/threadmind-dev/threadmind/internal/domain"
	mw "github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/service"
)

type MockAuthService struct {
	MockRegister func(name string, creds domain.Credentials) (*domain.User, error)
	MockLogin    func(creds domain.Credentials) (*domain.User, string, error)
	MockProfile  func(uid domain.UserId) (*domain.User, error)
}

func (m *MockAuthService) Register(name string, creds domain.Credentials) (*domain.User, error) {
	return m.MockRegister(name, creds)
}
func (m *MockAuthService) Login(creds domain.Credentials) (*domain.User, string, error) {
	return m.MockLogin(creds)
}
func (m *MockAuthService) Profile(uid domain.UserId) (*domain.User, error) {
	return m.MockProfile(uid)
}

type MockThreadService struct {
	MockCreate           func(data domain.ThreadCreationData) (*domain.Thread, error)
	MockGet              func(id domain.ThreadId) (*domain.Thread, error)
	MockAll              func() []*domain.Thread
	MockTrending         func() []*domain.Thread
	MockByUser           func(uid domain.UserId) []*domain.Thread
	MockUpdate           func(id domain.ThreadId, editor domain.UserRef, data domain.ThreadUpdateData) (*domain.Thread, error)
	MockDelete           func(id domain.ThreadId, uid domain.UserId) error
	MockToggleLike       func(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error)
	MockGenerateSummary  func(ctx context.Context, id domain.ThreadId, uid domain.UserId) (string, error)
	MockGenerateInsights func(ctx context.Context, id domain.ThreadId) ([]string, error)
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (*domain.Thread, error) {
	return m.MockCreate(data)
}
func (m *MockThreadService) Get(id domain.ThreadId) (*domain.Thread, error) { return m.MockGet(id) }
func (m *MockThreadService) All() []*domain.Thread                          { return m.MockAll() }
func (m *MockThreadService) Trending() []*domain.Thread                     { return m.MockTrending() }
func (m *MockThreadService) ByUser(uid domain.UserId) []*domain.Thread      { return m.MockByUser(uid) }
func (m *MockThreadService) Update(id domain.ThreadId, editor domain.UserRef, data domain.ThreadUpdateData) (*domain.Thread, error) {
	return m.MockUpdate(id, editor, data)
}
func (m *MockThreadService) UpdateContent(id domain.ThreadId, content string, editor domain.UserRef) bool {
	return false
}
func (m *MockThreadService) AddContributor(id domain.ThreadId, user domain.UserRef) bool {
	return false
}
func (m *MockThreadService) Delete(id domain.ThreadId, uid domain.UserId) error {
	return m.MockDelete(id, uid)
}
func (m *MockThreadService) ToggleLike(id domain.ThreadId, uid domain.UserId) (*domain.Thread, error) {
	return m.MockToggleLike(id, uid)
}
func (m *MockThreadService) GenerateSummary(ctx context.Context, id domain.ThreadId, uid domain.UserId) (string, error) {
	return m.MockGenerateSummary(ctx, id, uid)
}
func (m *MockThreadService) GenerateInsights(ctx context.Context, id domain.ThreadId) ([]string, error) {
	return m.MockGenerateInsights(ctx, id)
}

type MockCommentService struct {
	MockAdd        func(data domain.CommentCreationData) (*domain.Thread, error)
	MockToggleLike func(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error)
}

func (m *MockCommentService) Add(data domain.CommentCreationData) (*domain.Thread, error) {
	return m.MockAdd(data)
}
func (m *MockCommentService) ToggleLike(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
	return m.MockToggleLike(threadId, commentId, uid)
}

type MockNotificationService struct {
	MockNotify   func(uid domain.UserId, message, typ string)
	MockList     func(uid domain.UserId) []*domain.Notification
	MockRemove   func(uid domain.UserId, id string)
	MockClearAll func(uid domain.UserId)
}

func (m *MockNotificationService) Notify(uid domain.UserId, message, typ string) {
	m.MockNotify(uid, message, typ)
}
func (m *MockNotificationService) List(uid domain.UserId) []*domain.Notification {
	return m.MockList(uid)
}
func (m *MockNotificationService) Remove(uid domain.UserId, id string) { m.MockRemove(uid, id) }
func (m *MockNotificationService) ClearAll(uid domain.UserId)          { m.MockClearAll(uid) }

type MockSearchService struct {
	MockSemantic       func(ctx context.Context, query string) ([]service.SearchResult, error)
	MockKnowledgeGraph func() *service.Graph
}

func (m *MockSearchService) Semantic(ctx context.Context, query string) ([]service.SearchResult, error) {
	return m.MockSemantic(ctx, query)
}
func (m *MockSearchService) KnowledgeGraph() *service.Graph { return m.MockKnowledgeGraph() }

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			JwtTTL: 24 * time.Hour,
		},
	}
}

// asUser injects the user into the request context the way the auth
// middleware does.
func asUser(t *testing.T, req *http.Request, user *domain.User) *http.Request {
	t.Helper()
	ctx := context.WithValue(req.Context(), mw.UserClaimsKey, user)
	return req.WithContext(ctx)
}

var testUser = &domain.User{Id: "u1", Name: "alice", Email: "alice@example.com"}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

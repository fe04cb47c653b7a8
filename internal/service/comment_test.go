package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
	"github.com/threadmind-dev/threadmind/internal/utils"
)

func newTestCommentService(storage CommentStorage, notifier Notifier) *Comment {
	return NewComment(storage, &utils.CommentValidator{MaxLen: 500}, notifier)
}

func TestCommentAdd(t *testing.T) {
	var created *domain.Comment
	th := &domain.Thread{Id: "t1", Title: "Go generics", Author: alice}
	storage := &mockCommentStorage{
		CreateCommentFunc: func(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
			created = c
			th.Comments = []*domain.Comment{c}
			return th, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestCommentService(storage, notifier)

	got, err := s.Add(domain.CommentCreationData{ThreadId: "t1", Content: "  nice write-up  ", Author: bob})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "nice write-up", created.Content)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, bob, created.Author)
	assert.Len(t, got.Comments, 1)

	// actor gets a success, thread author gets an info
	require.Len(t, notifier.notifications, 2)
	assert.Equal(t, bob.Id, notifier.notifications[0].Uid)
	assert.Equal(t, domain.SeveritySuccess, notifier.notifications[0].Type)
	assert.Equal(t, alice.Id, notifier.notifications[1].Uid)
	assert.Contains(t, notifier.notifications[1].Message, "bob commented")
}

func TestCommentAddOwnThreadNoAuthorNotification(t *testing.T) {
	th := &domain.Thread{Id: "t1", Author: alice}
	storage := &mockCommentStorage{
		CreateCommentFunc: func(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
			return th, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestCommentService(storage, notifier)

	_, err := s.Add(domain.CommentCreationData{ThreadId: "t1", Content: "self reply", Author: alice})
	require.NoError(t, err)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, alice.Id, notifier.notifications[0].Uid)
}

func TestCommentAddRejectsInvalidContent(t *testing.T) {
	storage := &mockCommentStorage{
		CreateCommentFunc: func(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
			t.Fatal("invalid comment must not reach storage")
			return nil, nil
		},
	}

	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"too long", strings.Repeat("a", 501)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &mockNotifier{}
			s := newTestCommentService(storage, notifier)

			_, err := s.Add(domain.CommentCreationData{ThreadId: "t1", Content: tc.content, Author: bob})
			require.Error(t, err)
			var e *errors.ErrorWithStatusCode
			require.ErrorAs(t, err, &e)
			assert.Equal(t, 400, e.StatusCode)

			require.Len(t, notifier.notifications, 1)
			assert.Equal(t, bob.Id, notifier.notifications[0].Uid)
			assert.Equal(t, domain.SeverityWarning, notifier.notifications[0].Type)
		})
	}
}

func TestCommentAddAtMaxLength(t *testing.T) {
	storage := &mockCommentStorage{
		CreateCommentFunc: func(threadId domain.ThreadId, c *domain.Comment) (*domain.Thread, error) {
			return &domain.Thread{Id: threadId, Author: alice}, nil
		},
	}
	s := newTestCommentService(storage, &mockNotifier{})

	_, err := s.Add(domain.CommentCreationData{ThreadId: "t1", Content: strings.Repeat("a", 500), Author: bob})
	assert.NoError(t, err)
}

func TestCommentToggleLikeNotifies(t *testing.T) {
	th := &domain.Thread{
		Id:     "t1",
		Author: alice,
		Comments: []*domain.Comment{
			{Id: "c1", Likes: 1, LikedBy: []domain.UserId{bob.Id}},
		},
	}
	storage := &mockCommentStorage{
		ToggleCommentLikeFunc: func(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
			return th, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestCommentService(storage, notifier)

	_, err := s.ToggleLike("t1", "c1", bob.Id)
	require.NoError(t, err)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Comment liked", notifier.notifications[0].Message)
}

func TestCommentToggleLikeUnknownCommentSilent(t *testing.T) {
	th := &domain.Thread{Id: "t1", Author: alice}
	storage := &mockCommentStorage{
		ToggleCommentLikeFunc: func(threadId domain.ThreadId, commentId domain.CommentId, uid domain.UserId) (*domain.Thread, error) {
			return th, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestCommentService(storage, notifier)

	got, err := s.ToggleLike("t1", "missing", bob.Id)
	require.NoError(t, err)
	assert.Equal(t, th, got)
	assert.Empty(t, notifier.notifications)
}

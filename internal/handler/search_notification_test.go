package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/service"
)

func TestSemanticSearchHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	r := mux.NewRouter()
	r.HandleFunc("/api/search/semantic", h.SemanticSearch).Methods("POST")

	t.Run("results", func(t *testing.T) {
		h.search = &MockSearchService{
			MockSemantic: func(ctx context.Context, query string) ([]service.SearchResult, error) {
				assert.Equal(t, "go channels", query)
				return []service.SearchResult{{Id: "t1", Title: "Go concurrency", RelevanceScore: 0.8}}, nil
			},
		}
		body := []byte(`{"query": "go channels"}`)
		rr := doRequest(r, httptest.NewRequest(http.MethodPost, "/api/search/semantic", bytes.NewBuffer(body)))

		require.Equal(t, http.StatusOK, rr.Code)
		var got []service.SearchResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "t1", got[0].Id)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		rr := doRequest(r, httptest.NewRequest(http.MethodPost, "/api/search/semantic", bytes.NewBufferString(`{}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestKnowledgeGraphHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	h.search = &MockSearchService{
		MockKnowledgeGraph: func() *service.Graph {
			return &service.Graph{
				Nodes: []service.GraphNode{{Id: "t1", Label: "Go", Group: "thread", Size: 10}},
				Links: []service.GraphLink{},
			}
		},
	}
	r := mux.NewRouter()
	r.HandleFunc("/api/search/knowledge-graph", h.KnowledgeGraph).Methods("GET")

	rr := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/search/knowledge-graph", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got service.Graph
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "thread", got.Nodes[0].Group)
}

func TestNotificationHandlers(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	r := mux.NewRouter()
	r.HandleFunc("/api/notifications", h.ListNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/read_all", h.ClearNotifications).Methods("POST")
	r.HandleFunc("/api/notifications/{id}", h.RemoveNotification).Methods("DELETE")

	t.Run("list", func(t *testing.T) {
		h.notification = &MockNotificationService{
			MockList: func(uid domain.UserId) []*domain.Notification {
				assert.Equal(t, "u1", uid)
				return []*domain.Notification{{Id: "n1", Message: "Thread liked", Type: domain.SeveritySuccess}}
			},
		}
		req := asUser(t, httptest.NewRequest(http.MethodGet, "/api/notifications", nil), testUser)
		rr := doRequest(r, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []*domain.Notification
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Thread liked", got[0].Message)
	})

	t.Run("remove one", func(t *testing.T) {
		removed := ""
		h.notification = &MockNotificationService{
			MockRemove: func(uid domain.UserId, id string) { removed = id },
		}
		req := asUser(t, httptest.NewRequest(http.MethodDelete, "/api/notifications/n1", nil), testUser)
		rr := doRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "n1", removed)
	})

	t.Run("clear all", func(t *testing.T) {
		cleared := false
		h.notification = &MockNotificationService{
			MockClearAll: func(uid domain.UserId) { cleared = true },
		}
		req := asUser(t, httptest.NewRequest(http.MethodPost, "/api/notifications/read_all", nil), testUser)
		rr := doRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, cleared)
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/threadmind-dev/threadmind/internal/domain"
	mw "github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/utils"
)

type createThreadRequest struct {
	Title   string       `validate:"required" json:"title"`
	Content string       `validate:"required" json:"content"`
	Tags    []domain.Tag `json:"tags"`
}

type updateThreadRequest struct {
	Title   *string       `json:"title"`
	Content *string       `json:"content"`
	Tags    *[]domain.Tag `json:"tags"`
}

type insightsResponse struct {
	Insights []string `json:"insights"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body createThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	t, err := h.thread.Create(domain.ThreadCreationData{
		Title:   body.Title,
		Content: body.Content,
		Tags:    body.Tags,
		Author:  user.Ref(),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	t, err := h.thread.Get(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.thread.All())
}

func (h *Handler) TrendingThreads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.thread.Trending())
}

func (h *Handler) UserThreads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.thread.ByUser(mux.Vars(r)["id"]))
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body updateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	t, err := h.thread.Update(mux.Vars(r)["id"], user.Ref(), domain.ThreadUpdateData{
		Title:   body.Title,
		Content: body.Content,
		Tags:    body.Tags,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.thread.Delete(mux.Vars(r)["id"], user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ToggleThreadLike(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	t, err := h.thread.ToggleLike(mux.Vars(r)["id"], user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.thread.GenerateSummary(r.Context(), mux.Vars(r)["id"], user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary})
}

func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.thread.GenerateInsights(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insightsResponse{Insights: insights})
}

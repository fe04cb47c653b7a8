package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/threadmind-dev/threadmind/internal/domain"
	mw "github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/utils"
)

type createCommentRequest struct {
	Content string `validate:"required" json:"content"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body createCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	t, err := h.comment.Add(domain.CommentCreationData{
		ThreadId: mux.Vars(r)["id"],
		Content:  body.Content,
		Author:   user.Ref(),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	t, err := h.comment.ToggleLike(vars["id"], vars["commentId"], user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

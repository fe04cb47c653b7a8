package handler

import (
	"net/http"

	"github.com/threadmind-dev/threadmind/internal/utils"
)

type semanticSearchRequest struct {
	Query string `validate:"required" json:"query"`
}

func (h *Handler) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	var body semanticSearchRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	results, err := h.search.Semantic(r.Context(), body.Query)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) KnowledgeGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.search.KnowledgeGraph())
}

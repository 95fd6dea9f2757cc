package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carelink/portal-gateway/internal/content"
	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
)

// Content serves the health information pages: the article feed from the
// public content service and the in-process condition catalog.
type Content struct {
	Articles *content.Service
}

func NewContent(articles *content.Service) *Content {
	return &Content{Articles: articles}
}

func (h *Content) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Articles.Articles(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, articles)
}

func (h *Content) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("id", "must be a number"))
		return
	}
	article, err := h.Articles.Article(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, article)
}

func (h *Content) ListTopics(w http.ResponseWriter, r *http.Request) {
	response.OK(w, content.Topics())
}

func (h *Content) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("id", "must be a number"))
		return
	}
	topic, err := content.Topic(id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, topic)
}

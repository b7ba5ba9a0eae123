package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mseongj/pondok-news/feed"
	"github.com/mseongj/pondok-news/models"
	"github.com/mseongj/pondok-news/views"
)

const loadFailedMessage = "Gagal memuat artikel"

// pageData is passed to every template.
type pageData struct {
	Title       string
	Description string
	Message     string
	Articles    []models.Article
	HasMore     bool
	Detail      feed.Detail
}

// articleCard is an article plus the display text the load more scripts
// need, computed the same way as for the server-rendered cards.
type articleCard struct {
	models.Article
	Preview     string `json:"preview"`
	DisplayDate string `json:"display_date"`
}

func cards(articles []models.Article) []articleCard {
	out := make([]articleCard, len(articles))
	for i, a := range articles {
		out[i] = articleCard{
			Article:     a,
			Preview:     feed.Preview(a.Description, feed.PreviewLength),
			DisplayDate: a.DisplayDate(),
		}
	}
	return out
}

// Home renders the newest articles.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.feed.HomeFeed(r.Context(), 1, feed.HomeDefaultLimit)
	if err != nil {
		h.log.Error("failed to load home feed: %v", err)
		h.renderError(w, r, http.StatusOK, "Error", loadFailedMessage)
		return
	}

	h.renderPage(w, r, http.StatusOK, "index", pageData{
		Title:       views.SiteTitle,
		Description: "Berita terkini dari Pondok Informatika",
		Articles:    page.Articles,
		HasMore:     page.HasMore,
	})
}

// ListArticles backs the home page "load more" button.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNo, limit := feed.ParsePageParams(q.Get("page"), q.Get("limit"), feed.HomeDefaultLimit)

	page, err := h.feed.HomeFeed(r.Context(), pageNo, limit)
	if err != nil {
		h.log.Error("failed to load articles page %d: %v", pageNo, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": loadFailedMessage})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"articles": cards(page.Articles)})
}

// Article renders one article with a few others next to it.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.feed.ArticleDetail(r.Context(), id)
	switch {
	case errors.Is(err, feed.ErrNotFound):
		h.renderError(w, r, http.StatusNotFound, "Artikel Tidak Ditemukan", "Artikel yang Anda cari tidak ditemukan")
		return
	case err != nil:
		h.log.Error("failed to load article %s: %v", id, err)
		h.renderError(w, r, http.StatusOK, "Error", loadFailedMessage)
		return
	}

	h.renderPage(w, r, http.StatusOK, "article", pageData{
		Title:       detail.Article.Title,
		Description: detail.Description,
		Detail:      detail,
	})
}

// OldArticles renders the archive of articles older than two days.
func (h *Handler) OldArticles(w http.ResponseWriter, r *http.Request) {
	page, err := h.feed.OldFeed(r.Context(), 1, feed.OldDefaultLimit, h.now())
	if err != nil {
		h.log.Error("failed to load old articles: %v", err)
		h.renderError(w, r, http.StatusOK, "Error", "Gagal memuat artikel lama")
		return
	}

	h.renderPage(w, r, http.StatusOK, "old-articles", pageData{
		Title:       "Artikel Lama - " + views.SiteTitle,
		Description: "Arsip berita lama dari Pondok Informatika",
		Articles:    page.Articles,
		HasMore:     page.HasMore,
	})
}

// ListOldArticles backs the archive "load more" button.
func (h *Handler) ListOldArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNo, limit := feed.ParsePageParams(q.Get("page"), q.Get("limit"), feed.OldDefaultLimit)

	page, err := h.feed.OldFeed(r.Context(), pageNo, limit, h.now())
	if err != nil {
		h.log.Error("failed to load old articles page %d: %v", pageNo, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": loadFailedMessage})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"articles": cards(page.Articles),
		"hasMore":  page.HasMore,
		"total":    page.Total,
	})
}

// NotFound renders the 404 page for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "404 - Halaman Tidak Ditemukan", "Halaman yang Anda cari tidak ditemukan")
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	h.renderPage(w, r, status, "error", pageData{Title: title, Message: message})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if err := h.render.Render(w, status, name, data); err != nil {
		h.log.Error("failed to render %s for %s: %v", name, r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

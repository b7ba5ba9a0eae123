package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/mseongj/pondok-news/feed"
	"github.com/mseongj/pondok-news/logger"
)

// Pipeline is what the route handlers need from the article feed.
type Pipeline interface {
	HomeFeed(ctx context.Context, page, limit int) (feed.Page, error)
	OldFeed(ctx context.Context, page, limit int, now time.Time) (feed.Page, error)
	ArticleDetail(ctx context.Context, id string) (feed.Detail, error)
}

// Renderer writes a named HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler serves the site routes.
type Handler struct {
	feed   Pipeline
	render Renderer
	log    *logger.Logger
	now    func() time.Time
}

func New(p Pipeline, r Renderer, log *logger.Logger) *Handler {
	return &Handler{feed: p, render: r, log: log, now: time.Now}
}

package feed

import (
	"context"
	"time"

	"github.com/mseongj/pondok-news/models"
)

// Fetcher loads the full upstream collection.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]models.Article, error)
}

// Service composes the pipeline steps each route needs. Every call fetches
// the collection again; nothing is shared between requests.
type Service struct {
	fetcher Fetcher
}

func NewService(f Fetcher) *Service {
	return &Service{fetcher: f}
}

// Detail is an article prepared for the detail page.
type Detail struct {
	Article     models.Article
	Content     string
	Description string
	Related     []models.Article
}

// HomeFeed returns the newest-first page of all articles.
func (s *Service) HomeFeed(ctx context.Context, page, limit int) (Page, error) {
	articles, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return Paginate(nil, page, limit), err
	}
	return Paginate(SortByRecency(articles, NewestFirst), page, limit), nil
}

// OldFeed returns the oldest-first page of articles older than two days.
func (s *Service) OldFeed(ctx context.Context, page, limit int, now time.Time) (Page, error) {
	articles, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return Paginate(nil, page, limit), err
	}
	old := FilterOlderThan(articles, OldArticleThresholdDays, now)
	return Paginate(SortByRecency(old, OldestFirst), page, limit), nil
}

// ArticleDetail finds one article and picks a shuffled set of others to show next to it.
func (s *Service) ArticleDetail(ctx context.Context, id string) (Detail, error) {
	articles, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return Detail{}, err
	}

	article, err := FindByID(articles, id)
	if err != nil {
		return Detail{}, err
	}

	content := SanitizeContent(article.Content)
	description := article.Description
	if description == "" {
		description = content
	}

	related := ExcludeAndShuffle(articles, article.ID)
	if len(related) > RelatedLimit {
		related = related[:RelatedLimit]
	}

	return Detail{
		Article:     article,
		Content:     content,
		Description: Truncate(SanitizeContent(description), DetailDescriptionLength),
		Related:     related,
	}, nil
}

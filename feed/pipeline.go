// Package feed turns the upstream article collection into the ordered,
// filtered and paginated views served by the site.
package feed

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/mseongj/pondok-news/models"
)

const (
	HomeDefaultLimit        = 10
	OldDefaultLimit         = 6
	OldArticleThresholdDays = 2
	RelatedLimit            = 4
)

// Order selects the recency ordering used by SortByRecency.
type Order int

const (
	NewestFirst Order = iota // descending numeric id
	OldestFirst              // ascending resolved date
)

// Page is one window over a collection.
type Page struct {
	Articles []models.Article `json:"articles"`
	HasMore  bool             `json:"hasMore"`
	Total    int              `json:"total"`
}

type datedArticle struct {
	article models.Article
	date    time.Time
}

// SortByRecency returns a sorted copy. Ties keep their input order.
func SortByRecency(articles []models.Article, order Order) []models.Article {
	sorted := slices.Clone(articles)

	switch order {
	case OldestFirst:
		// each date is resolved once per article, not once per comparison
		dated := make([]datedArticle, len(sorted))
		for i, a := range sorted {
			dated[i] = datedArticle{article: a, date: a.ResolvedDate()}
		}
		slices.SortStableFunc(dated, func(a, b datedArticle) int {
			return a.date.Compare(b.date)
		})
		for i, d := range dated {
			sorted[i] = d.article
		}
	default:
		slices.SortStableFunc(sorted, func(a, b models.Article) int {
			return cmp.Compare(b.ID.Int(), a.ID.Int())
		})
	}

	return sorted
}

// FilterOlderThan keeps articles whose resolved date is strictly before now minus thresholdDays.
func FilterOlderThan(articles []models.Article, thresholdDays int, now time.Time) []models.Article {
	cutoff := now.Add(-time.Duration(thresholdDays) * 24 * time.Hour)

	old := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.ResolvedDate().Before(cutoff) {
			old = append(old, a)
		}
	}
	return old
}

// Paginate slices articles[(page-1)*limit : page*limit]. page is 1-indexed.
func Paginate(articles []models.Article, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = HomeDefaultLimit
	}

	total := len(articles)

	// bounds are checked by division so large query values cannot overflow
	start, end := total, total
	if page-1 <= total/limit {
		start = (page - 1) * limit
	}
	if page <= total/limit {
		end = page * limit
	}
	if start > end {
		start = end
	}

	items := slices.Clone(articles[start:end])
	if items == nil {
		items = []models.Article{}
	}

	return Page{
		Articles: items,
		HasMore:  end < total,
		Total:    total,
	}
}

// ParsePageParams reads page and limit query values. Anything that is not a
// positive integer falls back to page 1 and defaultLimit.
func ParsePageParams(rawPage, rawLimit string, defaultLimit int) (page, limit int) {
	page = positiveInt(rawPage, 1)
	limit = positiveInt(rawLimit, defaultLimit)
	return page, limit
}

// positiveInt reads leading digits like JavaScript's parseInt.
func positiveInt(raw string, fallback int) int {
	n, ok := models.ParseIntPrefix(raw)
	if !ok || n < 1 {
		return fallback
	}
	return int(min(n, math.MaxInt32))
}

// ExcludeAndShuffle drops the article with excludeID and shuffles the rest.
func ExcludeAndShuffle(articles []models.Article, excludeID models.ArticleID) []models.Article {
	rest := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID == excludeID {
			continue
		}
		rest = append(rest, a)
	}

	rand.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	return rest
}

// FindByID returns the first article whose id loosely equals id.
func FindByID(articles []models.Article, id string) (models.Article, error) {
	for _, a := range articles {
		if a.ID.Matches(id) {
			return a, nil
		}
	}
	return models.Article{}, ErrNotFound
}

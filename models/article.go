package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// PlaceholderImageURL is shown for articles without an image.
	PlaceholderImageURL = "https://via.placeholder.com/400x250/DC3545/FFFFFF?text=News"
	DefaultCategory     = "Umum"
)

// EpochFloor is the resolved date of articles that carry no usable date.
var EpochFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Article is a single news item as served by the upstream API.
type Article struct {
	ID          ArticleID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category,omitempty"` // kategori or category upstream
	CreatedAt   string    `json:"created_at,omitempty"`
	Date        string    `json:"date,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// upstreamArticle mirrors the loose upstream shape before normalization.
type upstreamArticle struct {
	ID          ArticleID       `json:"id"`
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Content     json.RawMessage `json:"content"`
	Kategori    json.RawMessage `json:"kategori"`
	Category    json.RawMessage `json:"category"`
	CreatedAt   json.RawMessage `json:"created_at"`
	Date        json.RawMessage `json:"date"`
	ImageURL    json.RawMessage `json:"image_url"`
}

func (a *Article) UnmarshalJSON(b []byte) error {
	var raw upstreamArticle
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	category := textValue(raw.Category)
	if category == "" {
		category = textValue(raw.Kategori)
	}

	*a = Article{
		ID:          raw.ID,
		Title:       textValue(raw.Title),
		Description: textValue(raw.Description),
		Content:     textValue(raw.Content),
		Category:    category,
		CreatedAt:   textValue(raw.CreatedAt),
		Date:        textValue(raw.Date),
		ImageURL:    textValue(raw.ImageURL),
	}
	return nil
}

// textValue reads a JSON string or number as text. Anything else is treated as absent.
func textValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// ResolvedDate picks created_at, then date, then EpochFloor.
func (a Article) ResolvedDate() time.Time {
	if t, ok := parseDate(a.CreatedAt); ok {
		return t
	}
	if t, ok := parseDate(a.Date); ok {
		return t
	}
	return EpochFloor
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (a Article) ImageOrPlaceholder() string {
	if strings.TrimSpace(a.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return a.ImageURL
}

func (a Article) CategoryOrDefault() string {
	if strings.TrimSpace(a.Category) == "" {
		return DefaultCategory
	}
	return a.Category
}

// DisplayDate formats the first available date as "2 Januari 2024".
func (a Article) DisplayDate() string {
	t, ok := parseDate(a.CreatedAt)
	if !ok {
		t, ok = parseDate(a.Date)
	}
	if !ok {
		return "Tanggal tidak tersedia"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

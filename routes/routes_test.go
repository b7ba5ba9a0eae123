package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mseongj/pondok-news/feed"
	"github.com/mseongj/pondok-news/handlers"
	"github.com/mseongj/pondok-news/logger"
	"github.com/mseongj/pondok-news/models"
	"github.com/mseongj/pondok-news/views"
	. "github.com/smartystreets/goconvey/convey"
)

func newSite(t *testing.T, apiURL string) http.Handler {
	t.Helper()
	lg := logger.NewWithWriter(io.Discard, "debug", "text")
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	h := handlers.New(feed.NewService(feed.NewClient(apiURL, time.Second, lg)), renderer, lg)
	return h.LogRequests(h.Recover(SetupRoutes(h)))
}

func newsAPI(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
}

func get(site http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	site.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// oldArticles builds n articles dated well before today plus two fresh ones.
func oldArticles(n int) string {
	var items []string
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(`{"id":%d,"title":"Lama %d","kategori":"Arsip","created_at":"2020-01-%02d"}`, i, i, i))
	}
	today := time.Now().Format("2006-01-02 15:04:05")
	items = append(items,
		fmt.Sprintf(`{"id":100,"title":"Baru","created_at":%q}`, today),
		fmt.Sprintf(`{"id":101,"title":"Baru juga","date":%q}`, today),
	)
	return `{"data":[` + strings.Join(items, ",") + `]}`
}

func TestRoutes(t *testing.T) {
	Convey("Given a healthy news API", t, func() {
		api := newsAPI(`{"data":[{"id":"5","title":"A"},{"id":"3","title":"B","content":"<p>Isi &amp; cerita</p>"},{"id":"9","title":"C"}]}`)
		defer api.Close()
		site := newSite(t, api.URL)

		Convey("the home page lists articles newest first", func() {
			rec := get(site, "/")
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := rec.Body.String()
			c, a, b := strings.Index(body, ">C<"), strings.Index(body, ">A<"), strings.Index(body, ">B<")
			So(c, ShouldBeGreaterThan, 0)
			So(c, ShouldBeLessThan, a)
			So(a, ShouldBeLessThan, b)
		})

		Convey("the articles API returns the same order", func() {
			rec := get(site, "/api/articles")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

			var resp struct {
				Articles []models.Article `json:"articles"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(len(resp.Articles), ShouldEqual, 3)
			So(resp.Articles[0].ID.String(), ShouldEqual, "9")
			So(resp.Articles[2].ID.String(), ShouldEqual, "3")
			So(rec.Body.String(), ShouldContainSubstring, `"id":"9"`)
		})

		Convey("bad paging params are defaulted", func() {
			rec := get(site, "/api/articles?page=abc&limit=-1")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"title":"C"`)
		})

		Convey("an article page shows its sanitized content", func() {
			rec := get(site, "/article/3")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Isi &amp; cerita")
			So(rec.Body.String(), ShouldNotContainSubstring, "&lt;p&gt;")
		})

		Convey("a missing article is a 404", func() {
			rec := get(site, "/article/42")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldContainSubstring, "Artikel Tidak Ditemukan")
		})

		Convey("unknown routes render the 404 page", func() {
			rec := get(site, "/tidak-ada")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldContainSubstring, "Halaman yang Anda cari tidak ditemukan")

			rec = httptest.NewRecorder()
			site.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("static scripts are served", func() {
			rec := get(site, "/js/old-articles.js")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})

	Convey("Given articles with markup in their descriptions", t, func() {
		api := newsAPI(`{"data":[
			{"id":"1","description":"<p>Isi&nbsp;<b>penting</b></p>","created_at":"2020-01-01"},
			{"id":"03","title":"Nol tiga","created_at":"2020-01-02"}
		]}`)
		defer api.Close()
		site := newSite(t, api.URL)

		Convey("both JSON endpoints send tag-free previews", func() {
			for _, path := range []string{"/api/articles", "/api/old-articles"} {
				rec := get(site, path)
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Articles []struct {
						ID      string `json:"id"`
						Preview string `json:"preview"`
					} `json:"articles"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Articles, ShouldHaveLength, 2)
				for _, a := range resp.Articles {
					So(a.Preview, ShouldNotContainSubstring, "<")
					So(a.Preview, ShouldNotContainSubstring, "&nbsp;")
					if a.ID == "1" {
						So(a.Preview, ShouldEqual, "Isi penting")
					}
				}
			}
		})

		Convey("a string id is only found by its exact text", func() {
			So(get(site, "/article/03").Code, ShouldEqual, http.StatusOK)
			So(get(site, "/article/3").Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given ten old articles and two fresh ones", t, func() {
		api := newsAPI(oldArticles(10))
		defer api.Close()
		site := newSite(t, api.URL)

		Convey("the archive API pages through the old ones", func() {
			rec := get(site, "/api/old-articles?page=2&limit=6")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp struct {
				Articles []models.Article `json:"articles"`
				HasMore  bool             `json:"hasMore"`
				Total    int              `json:"total"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Articles, ShouldHaveLength, 4)
			So(resp.Articles[0].ID, ShouldEqual, models.ArticleID("7"))
			So(rec.Body.String(), ShouldContainSubstring, `"id":7,`)
			So(resp.Articles[0].Category, ShouldEqual, "Arsip")
			So(resp.HasMore, ShouldBeFalse)
			So(resp.Total, ShouldEqual, 10)
		})

		Convey("the first archive page has more", func() {
			rec := get(site, "/api/old-articles")
			So(rec.Body.String(), ShouldContainSubstring, `"hasMore":true`)
			So(rec.Body.String(), ShouldContainSubstring, `"total":10`)
		})

		Convey("the archive page leaves out fresh articles", func() {
			rec := get(site, "/old-articles")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Lama 1")
			So(rec.Body.String(), ShouldNotContainSubstring, "Baru")
			So(rec.Body.String(), ShouldContainSubstring, "load-more-btn")
		})
	})

	Convey("Given an unreachable news API", t, func() {
		api := newsAPI(`{}`)
		url := api.URL
		api.Close()
		site := newSite(t, url)

		Convey("the home page renders the error page", func() {
			rec := get(site, "/")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Gagal memuat artikel")
		})

		Convey("the JSON endpoints answer 500 with an error body", func() {
			for _, path := range []string{"/api/articles", "/api/old-articles"} {
				rec := get(site, path)
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)

				var resp map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["error"], ShouldNotBeEmpty)
			}
		})

		Convey("the article page renders the error page", func() {
			rec := get(site, "/article/1")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Gagal memuat artikel")
		})
	})
}

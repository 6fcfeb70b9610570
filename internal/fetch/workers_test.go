package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adaora/newswire/internal/demoserver"
	"github.com/adaora/newswire/models"
	"github.com/adaora/newswire/pkg/client"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunAgainstDemoFeed(t *testing.T) {
	server := httptest.NewServer(demoserver.New().Handler())
	defer server.Close()

	cl := client.New(server.URL, 5*time.Second, nil)
	headings, err := cl.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}

	results := run(context.Background(), testLogger(), cl, nil, 2, headings)
	if len(results) != len(headings) {
		t.Fatalf("got %d results, want %d", len(results), len(headings))
	}

	// Results come back in feed order regardless of worker scheduling.
	for i, r := range results {
		if r.ArticleID != headings[i].ID {
			t.Errorf("result %d is %s, want %s", i, r.ArticleID, headings[i].ID)
		}
		if r.Error != nil {
			t.Errorf("article %s failed: %v", r.ArticleID, r.Error)
			continue
		}
		if r.Article == nil {
			t.Errorf("article %s has no display record", r.ArticleID)
		}
	}

	// demo-1 exercises the media join and HTML stripping.
	first := results[0].Article
	if first == nil {
		t.Fatal("demo-1 missing")
	}
	var imageSection *models.Section
	for i := range first.Sections {
		if first.Sections[i].Type == models.SectionImage {
			imageSection = &first.Sections[i]
		}
		if first.Sections[i].Type == models.SectionText && first.Sections[i].Text != "Construction is expected to start next spring." {
			t.Errorf("text section not stripped: %q", first.Sections[i].Text)
		}
	}
	if imageSection == nil {
		t.Fatal("demo-1 image section missing")
	}
	if imageSection.URL == "" || imageSection.Caption == "" {
		t.Errorf("image section not joined: %+v", imageSection)
	}
}

func TestRunCollectsPerArticleFailures(t *testing.T) {
	server := httptest.NewServer(demoserver.New().Handler())
	defer server.Close()

	cl := client.New(server.URL, 5*time.Second, nil)
	headings := []models.Heading{
		{ID: "demo-1", Title: "ok"},
		{ID: "missing", Title: "gone"}, // detail endpoint will 404
	}

	results := run(context.Background(), testLogger(), cl, nil, 2, headings)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Error != nil {
		t.Errorf("demo-1 failed unexpectedly: %v", results[0].Error)
	}
	if results[1].Error == nil {
		t.Error("missing article succeeded, want fetch error")
	}
	if results[1].ErrorType != ErrTypeFetch {
		t.Errorf("ErrorType = %q, want %q", results[1].ErrorType, ErrTypeFetch)
	}
}

// A feed that repeats an id still yields one result per heading, in order.
func TestRunKeepsDuplicateFeedEntries(t *testing.T) {
	server := httptest.NewServer(demoserver.New().Handler())
	defer server.Close()

	cl := client.New(server.URL, 5*time.Second, nil)
	headings := []models.Heading{
		{ID: "demo-1", Title: "first"},
		{ID: "demo-2", Title: "second"},
		{ID: "demo-1", Title: "repeat"},
	}

	results := run(context.Background(), testLogger(), cl, nil, 2, headings)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.ArticleID != headings[i].ID {
			t.Errorf("result %d is %s, want %s", i, r.ArticleID, headings[i].ID)
		}
		if r.Title != headings[i].Title {
			t.Errorf("result %d title = %q, want %q", i, r.Title, headings[i].Title)
		}
		if r.Error != nil {
			t.Errorf("article %s failed: %v", r.ArticleID, r.Error)
		}
	}
}

func TestFilterHeadings(t *testing.T) {
	headings := []models.Heading{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}

	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{name: "no filter", ids: nil, want: 3},
		{name: "subset", ids: []string{"a3", "a1"}, want: 2},
		{name: "unknown id drops out", ids: []string{"zz"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filterHeadings(headings, tt.ids); len(got) != tt.want {
				t.Errorf("filterHeadings() kept %d, want %d", len(got), tt.want)
			}
		})
	}
}

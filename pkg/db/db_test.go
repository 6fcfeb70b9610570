package db

import (
	"testing"
	"time"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	started := time.Date(2020, 7, 8, 20, 0, 0, 0, time.UTC)
	runID, err := db.InsertRun(started, "https://feed.invalid")
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	if runID == "" {
		t.Fatal("InsertRun() returned empty run id")
	}

	if err := db.UpdateRunStats(runID, 3, 2, 1); err != nil {
		t.Fatalf("UpdateRunStats() failed: %v", err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.RunID != runID || r.TotalArticles != 3 || r.Succeeded != 2 || r.Failed != 1 {
		t.Errorf("run = %+v", r)
	}
	if r.BaseURL != "https://feed.invalid" {
		t.Errorf("BaseURL = %q", r.BaseURL)
	}
}

func TestListRunsOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	older := time.Date(2020, 7, 8, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2020, 7, 9, 10, 0, 0, 0, time.UTC)
	if _, err := db.InsertRun(older, "https://feed.invalid"); err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	newerID, err := db.InsertRun(newer, "https://feed.invalid")
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].RunID != newerID {
		t.Errorf("newest run not first: %+v", runs[0])
	}
}

func TestUpsertArticle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	firstRun, err := db.InsertRun(time.Now(), "https://feed.invalid")
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	secondRun, err := db.InsertRun(time.Now(), "https://feed.invalid")
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}

	rec := ArticleRecord{
		ArticleID:        "a1",
		Title:            "First article",
		Author:           "Some Author",
		OriginalLanguage: "en",
		PublicationDate:  time.Date(2020, 7, 8, 20, 50, 43, 0, time.UTC),
	}
	if err := db.UpsertArticle(rec, firstRun); err != nil {
		t.Fatalf("UpsertArticle() failed: %v", err)
	}

	// Same article seen again in a later run.
	rec.Title = "First article (updated)"
	if err := db.UpsertArticle(rec, secondRun); err != nil {
		t.Fatalf("UpsertArticle() second time failed: %v", err)
	}

	records, err := db.ListArticles(10)
	if err != nil {
		t.Fatalf("ListArticles() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.TimesSeen != 2 {
		t.Errorf("TimesSeen = %d, want 2", got.TimesSeen)
	}
	if got.Title != "First article (updated)" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.FirstSeenRun != firstRun {
		t.Errorf("FirstSeenRun = %q, want %q", got.FirstSeenRun, firstRun)
	}
	if got.LastSeenRun != secondRun {
		t.Errorf("LastSeenRun = %q, want %q", got.LastSeenRun, secondRun)
	}
}

func TestListArticlesEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	records, err := db.ListArticles(10)
	if err != nil {
		t.Fatalf("ListArticles() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ArticleRecord is the history row for one article.
type ArticleRecord struct {
	ArticleID        string
	Title            string
	Author           string
	OriginalLanguage string
	PublicationDate  time.Time
	FirstSeenRun     string
	LastSeenRun      string
	TimesSeen        int
}

// UpsertArticle records that an article was seen in the given run. Repeat
// sightings bump the counter and move last_seen_run forward.
func (db *DB) UpsertArticle(rec ArticleRecord, runID string) error {
	_, err := db.Exec(`
		INSERT INTO articles (article_id, title, author, original_language, publication_date, first_seen_run, last_seen_run)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(article_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			original_language = excluded.original_language,
			publication_date = excluded.publication_date,
			last_seen_run = excluded.last_seen_run,
			times_seen = times_seen + 1`,
		rec.ArticleID, nullable(rec.Title), nullable(rec.Author), nullable(rec.OriginalLanguage),
		rec.PublicationDate.UTC(), runID, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", rec.ArticleID, err)
	}
	return nil
}

// ListArticles returns known articles, most recently published first.
func (db *DB) ListArticles(limit int) ([]ArticleRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT article_id, COALESCE(title, ''), COALESCE(author, ''), COALESCE(original_language, ''),
		       publication_date, first_seen_run, last_seen_run, times_seen
		FROM articles ORDER BY publication_date DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var records []ArticleRecord
	for rows.Next() {
		var rec ArticleRecord
		if err := rows.Scan(&rec.ArticleID, &rec.Title, &rec.Author, &rec.OriginalLanguage,
			&rec.PublicationDate, &rec.FirstSeenRun, &rec.LastSeenRun, &rec.TimesSeen); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

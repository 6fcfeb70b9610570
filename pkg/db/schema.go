package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per pipeline run
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,              -- uuid
    started_at TIMESTAMP NOT NULL,
    base_url TEXT NOT NULL,
    total_articles INTEGER NOT NULL DEFAULT 0,
    succeeded INTEGER NOT NULL DEFAULT 0,
    failed INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);

-- One row per article ever seen in the feed
CREATE TABLE IF NOT EXISTS articles (
    article_id TEXT PRIMARY KEY,
    title TEXT,
    author TEXT,
    original_language TEXT,
    publication_date TIMESTAMP,
    first_seen_run TEXT NOT NULL,
    last_seen_run TEXT NOT NULL,
    times_seen INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (first_seen_run) REFERENCES runs(run_id),
    FOREIGN KEY (last_seen_run) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_articles_publication_date ON articles(publication_date);
`

// Package fetch implements the fetch and watch CLI commands: the
// feed -> transform -> display pipeline.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adaora/newswire/internal/common"
	"github.com/adaora/newswire/models"
	"github.com/adaora/newswire/pkg/cache"
	"github.com/adaora/newswire/pkg/client"
	"github.com/adaora/newswire/pkg/db"
	"github.com/adaora/newswire/pkg/langdetect"
	"github.com/adaora/newswire/pkg/render"
	"github.com/urfave/cli/v2"
)

// FetchAction runs the pipeline once.
func FetchAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	env, err := setup(c, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(2)
	}
	defer env.close()

	stats, err := runOnce(c.Context, logger, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	exitForStats(stats)
	return nil
}

// WatchAction repeats the pipeline every --delay seconds until interrupted.
func WatchAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	env, err := setup(c, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(2)
	}
	defer env.close()

	delay := time.Duration(env.cfg.DelaySeconds) * time.Second
	if c.IsSet("delay") {
		delay = time.Duration(c.Int("delay")) * time.Second
	}
	if delay <= 0 {
		return fmt.Errorf("delay must be positive")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		if _, err := runOnce(ctx, logger, env); err != nil {
			// In watch mode a failed round is logged, not fatal.
			logger.Error("run failed", "error", err)
		}

		logger.Info("Waiting for next update", "delay", delay.String())
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		case <-time.After(delay):
		}
	}
}

// runEnv bundles everything one pipeline pass needs.
type runEnv struct {
	cfg      *models.Config
	baseURL  string
	client   *client.Client
	detector *langdetect.Detector
	renderer *render.Renderer
	history  *db.DB
	ids      []string
	workers  int
}

func (e *runEnv) close() {
	if e.history != nil {
		_ = e.history.Close()
	}
}

// setup resolves config, flags and shared components for fetch and watch.
func setup(c *cli.Context, logger *slog.Logger) (*runEnv, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if c.IsSet("base-url") {
		baseURL = c.String("base-url")
	}
	baseURL, err = common.ValidateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	workers := cfg.WorkerCount
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	if workers <= 0 {
		workers = 1
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if c.IsSet("timeout") {
		timeout, err = time.ParseDuration(c.String("timeout"))
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			return nil, fmt.Errorf("invalid max-age duration: %w", err)
		}
	}
	responseCache, err := openCache(maxAge)
	if err != nil {
		// A broken cache directory degrades to uncached fetches.
		logger.Warn("response cache unavailable", "error", err)
		responseCache = nil
	}

	format, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	env := &runEnv{
		cfg:      cfg,
		baseURL:  baseURL,
		client:   client.New(baseURL, timeout, responseCache),
		detector: langdetect.New(),
		renderer: render.New(os.Stdout, format),
		workers:  workers,
	}
	if c.IsSet("ids") {
		env.ids = common.SplitIDs(c.String("ids"))
	}

	// History is best effort: the pipeline runs fine without it.
	history, err := db.Open()
	if err != nil {
		logger.Warn("history database unavailable", "error", err)
	} else {
		env.history = history
	}
	return env, nil
}

// runOnce executes one full pipeline pass: list, per-article workers,
// render, history. The returned error covers feed-level failures only;
// per-article failures land in the stats.
func runOnce(ctx context.Context, logger *slog.Logger, env *runEnv) (Stats, error) {
	startTime := time.Now()

	headings, err := env.client.Feed(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("could not fetch article list: %w", err)
	}
	headings = filterHeadings(headings, env.ids)

	if len(headings) == 0 {
		if err := env.renderer.NoArticles(); err != nil {
			return Stats{}, err
		}
		return Stats{TotalTimeSeconds: time.Since(startTime).Seconds()}, nil
	}

	results := run(ctx, logger, env.client, env.detector, env.workers, headings)

	stats := Stats{TotalArticles: len(results)}
	for _, result := range results {
		if result.Error != nil {
			stats.Failed++
			fmt.Fprintf(os.Stderr, "Error: article %s: %v\n", result.ArticleID, result.Error)
			continue
		}
		stats.Succeeded++
		if err := env.renderer.Article(result.Article); err != nil {
			return stats, fmt.Errorf("could not write output: %w", err)
		}
	}
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	recordHistory(logger, env, startTime, results, stats)

	logger.Info("Run complete",
		"total", stats.TotalArticles,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"seconds", stats.TotalTimeSeconds,
	)
	return stats, nil
}

// recordHistory writes the run and its articles to the history DB.
// Failures are logged and ignored.
func recordHistory(logger *slog.Logger, env *runEnv, startedAt time.Time, results []Result, stats Stats) {
	if env.history == nil {
		return
	}

	runID, err := env.history.InsertRun(startedAt, env.baseURL)
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return
	}
	if err := env.history.UpdateRunStats(runID, stats.TotalArticles, stats.Succeeded, stats.Failed); err != nil {
		logger.Warn("Failed to record run stats", "run_id", runID, "error", err)
	}

	for _, result := range results {
		if result.Article == nil {
			continue
		}
		rec := db.ArticleRecord{
			ArticleID:        result.Article.ID,
			Title:            result.Title,
			Author:           result.Article.Author,
			OriginalLanguage: result.Article.OriginalLanguage,
			PublicationDate:  result.Article.PublicationDate,
		}
		if err := env.history.UpsertArticle(rec, runID); err != nil {
			logger.Warn("Failed to record article", "article_id", rec.ArticleID, "error", err)
		}
	}
}

func filterHeadings(headings []models.Heading, ids []string) []models.Heading {
	if len(ids) == 0 {
		return headings
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	filtered := make([]models.Heading, 0, len(ids))
	for _, h := range headings {
		if _, ok := want[h.ID]; ok {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// exitForStats applies the run exit-code scheme: 0 all good, 1 partial
// failure, 2 total failure.
func exitForStats(stats Stats) {
	if stats.TotalArticles > 0 && stats.Failed == stats.TotalArticles {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func newLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func openCache(maxAge time.Duration) (*cache.Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return cache.New(filepath.Join(base, "newswire"), maxAge)
}

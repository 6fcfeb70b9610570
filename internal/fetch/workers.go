package fetch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/adaora/newswire/models"
	"github.com/adaora/newswire/pkg/client"
	"github.com/adaora/newswire/pkg/langdetect"
	"github.com/adaora/newswire/pkg/mapper"
)

// run fans the feed headings out over a worker pool and collects one Result
// per heading, in feed order.
func run(ctx context.Context, logger *slog.Logger, cl *client.Client, detector *langdetect.Detector, workerCount int, headings []models.Heading) []Result {
	logger.Info("Starting fetch phase", "article_count", len(headings), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(headings))
	results := make(chan Result, len(headings))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, cl, detector, &wg, jobs, results)
	}

	for i, h := range headings {
		jobs <- Job{Index: i, Heading: h}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All fetch workers finished")

	// Workers complete out of order; restore feed order for display.
	// Placement is by feed position, not article id, so a feed that
	// repeats an id still yields one result per heading.
	ordered := make([]Result, len(headings))
	for result := range results {
		ordered[result.Index] = result
	}
	return ordered
}

func worker(ctx context.Context, id int, logger *slog.Logger, cl *client.Client, detector *langdetect.Detector, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "article_id", job.Heading.ID)
		result := processArticle(ctx, id, logger, cl, detector, job.Heading)
		result.Index = job.Index
		results <- result
	}
}

// processArticle runs the fetch and transform stages for one heading.
func processArticle(ctx context.Context, id int, logger *slog.Logger, cl *client.Client, detector *langdetect.Detector, heading models.Heading) Result {
	result := Result{ArticleID: heading.ID, Title: heading.Title}

	detail, err := cl.ArticleDetail(ctx, heading.ID)
	if err != nil {
		logger.Error("Error fetching article detail", "worker_id", id, "article_id", heading.ID, "error", err)
		result.Error = err
		result.ErrorType = ErrTypeFetch
		return result
	}

	// The media endpoint is only consulted when the article references it.
	var media []models.MediaPayload
	if detail.HasMediaSections() {
		media, err = cl.Media(ctx, heading.ID)
		if err != nil {
			logger.Error("Error fetching article media", "worker_id", id, "article_id", heading.ID, "error", err)
			result.Error = err
			result.ErrorType = ErrTypeFetch
			return result
		}
	}

	article, err := mapper.MapArticle(cl.ArticleURL(heading.ID), detail, media)
	if err != nil {
		logger.Error("Error mapping article", "worker_id", id, "article_id", heading.ID, "error", err)
		result.Error = err
		result.ErrorType = ErrTypeSchema
		return result
	}

	if detector != nil {
		article.DetectedLanguage, article.LanguageConfidence = detector.Detect(article.PlainText())
	}

	result.Article = article
	logger.Info("Worker finished job", "worker_id", id, "article_id", heading.ID)
	return result
}

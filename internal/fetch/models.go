package fetch

import (
	"github.com/adaora/newswire/models"
)

// Job carries one heading plus its feed position, so results can be put
// back in feed order even when the feed repeats an id.
type Job struct {
	Index   int
	Heading models.Heading
}

// Result holds the outcome of one article job.
type Result struct {
	Index     int
	ArticleID string
	Title     string
	Article   *models.Article
	Error     error
	ErrorType string
}

// Stats summarizes one pipeline run.
type Stats struct {
	TotalArticles    int     `json:"total_articles"`
	Succeeded        int     `json:"succeeded"`
	Failed           int     `json:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
}

// Error type labels used in logs and the run summary.
const (
	ErrTypeFetch  = "fetch_error"
	ErrTypeSchema = "schema_error"
)

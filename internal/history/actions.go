// Package history implements the CLI commands over the local fetch-history
// database.
package history

import (
	"fmt"
	"strings"

	"github.com/adaora/newswire/pkg/db"
	"github.com/urfave/cli/v2"
)

// ArticlesAction lists articles seen in past runs.
func ArticlesAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	records, err := database.ListArticles(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No articles recorded yet. Run 'newswire fetch' first.")
		return nil
	}

	fmt.Printf("%-14s %-40s %-20s %-6s %-20s %-5s\n",
		"ID", "Title", "Author", "Lang", "Published", "Seen")
	fmt.Println(strings.Repeat("-", 110))
	for _, rec := range records {
		fmt.Printf("%-14s %-40s %-20s %-6s %-20s %-5d\n",
			rec.ArticleID,
			truncate(rec.Title, 40),
			truncate(rec.Author, 20),
			rec.OriginalLanguage,
			rec.PublicationDate.Format("2006-01-02 15:04:05"),
			rec.TimesSeen,
		)
	}
	fmt.Printf("\nTotal: %d articles\n", len(records))
	return nil
}

// RunsAction lists past pipeline runs.
func RunsAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Run 'newswire fetch' first.")
		return nil
	}

	fmt.Printf("%-36s %-20s %-8s %-8s %-8s %s\n",
		"Run", "Started", "Total", "OK", "Failed", "Base URL")
	fmt.Println(strings.Repeat("-", 110))
	for _, r := range runs {
		fmt.Printf("%-36s %-20s %-8d %-8d %-8d %s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.TotalArticles,
			r.Succeeded,
			r.Failed,
			r.BaseURL,
		)
	}
	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Package render writes display records to an output stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adaora/newswire/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Renderer renders articles in a fixed format to one writer.
type Renderer struct {
	w      io.Writer
	format string
}

// New creates a Renderer. format must come from ParseFormat.
func New(w io.Writer, format string) *Renderer {
	return &Renderer{w: w, format: format}
}

// Article renders one display record, separated from the previous one by a
// rule line.
func (r *Renderer) Article(a *models.Article) error {
	if _, err := fmt.Fprintf(r.w, "----------------- article id=%s\n", a.ID); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch r.format {
	case FormatYAML:
		data, err = yaml.Marshal(a)
	default:
		data, err = json.MarshalIndent(a, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal article %s: %w", a.ID, err)
	}

	if _, err := fmt.Fprintln(r.w, string(data)); err != nil {
		return err
	}
	return nil
}

// NoArticles prints the explicit empty-feed message.
func (r *Renderer) NoArticles() error {
	_, err := fmt.Fprintln(r.w, "no articles in feed")
	return err
}

// Package models defines the payload and display structures for the
// article feed pipeline.
package models

import (
	"strings"
	"time"
)

// Article is the display record produced by the transform stage. It is the
// validated, joined view of one article detail payload plus its media
// payloads, ready for rendering.
type Article struct {
	ID               string    `json:"id" yaml:"id"`
	OriginalLanguage string    `json:"original_language" yaml:"original_language"`
	URL              string    `json:"url" yaml:"url"`
	Thumbnail        string    `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Categories       []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	Tags             []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Author           string    `json:"author,omitempty" yaml:"author,omitempty"`
	PublicationDate  time.Time `json:"publication_date" yaml:"publication_date"`
	ModificationDate time.Time `json:"modification_date" yaml:"modification_date"`
	Sections         []Section `json:"sections" yaml:"sections"`

	// Language detection enrichment, filled in after mapping.
	DetectedLanguage   string  `json:"detected_language,omitempty" yaml:"detected_language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// PlainText concatenates the readable text of all sections. Used as input
// for language detection.
func (a *Article) PlainText() string {
	var sb strings.Builder

	for _, s := range a.Sections {
		switch s.Type {
		case SectionImage:
			if s.Caption != "" {
				sb.WriteString(s.Caption)
				sb.WriteString("\n")
			}
		case SectionMedia:
			if s.Caption != "" {
				sb.WriteString(s.Caption)
				sb.WriteString("\n")
			}
		default:
			if s.Text != "" {
				sb.WriteString(s.Text)
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

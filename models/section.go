package models

import "time"

// Section type discriminators as they appear in the detail payload.
const (
	SectionTitle  = "title"
	SectionLead   = "lead"
	SectionText   = "text"
	SectionHeader = "header"
	SectionImage  = "image"
	SectionMedia  = "media"
)

// KnownSectionType reports whether t is one of the section kinds the
// transform stage can map.
func KnownSectionType(t string) bool {
	switch t {
	case SectionTitle, SectionLead, SectionText, SectionHeader, SectionImage, SectionMedia:
		return true
	}
	return false
}

// Section is one semantic block of an article. Type decides which fields
// are populated: title/lead/text carry Text, header adds Level, image and
// media carry the joined media fields.
type Section struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// header only
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// image and media
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`

	// image only
	Alt    string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// media only
	ID               string     `json:"id,omitempty" yaml:"id,omitempty"`
	Thumbnail        string     `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Author           string     `json:"author,omitempty" yaml:"author,omitempty"`
	PublicationDate  *time.Time `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`
	ModificationDate *time.Time `json:"modification_date,omitempty" yaml:"modification_date,omitempty"`
	DurationSeconds  int        `json:"duration,omitempty" yaml:"duration,omitempty"`
}

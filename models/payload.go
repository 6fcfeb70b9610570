package models

// Heading is one element of the feed list payload.
type Heading struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ArticleDetail is the raw detail payload for one article, as returned by
// the articles endpoint. Dates stay as strings here; parsing happens in the
// transform stage so a bad date surfaces as a schema error, not a decode
// error.
type ArticleDetail struct {
	ID               string        `json:"id"`
	OriginalLanguage string        `json:"original_language"`
	Thumbnail        string        `json:"thumbnail"`
	Category         string        `json:"category"`
	Tag              string        `json:"tag"`
	Author           string        `json:"author"`
	PubDate          string        `json:"pub_date"`
	ModDate          string        `json:"mod_date"`
	Sections         []SectionStub `json:"sections"`
}

// SectionStub is a section entry inside the detail payload. Image and media
// stubs carry only type and id; the rest of their fields come from the
// media endpoint.
type SectionStub struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Level   int    `json:"level"`
	ID      string `json:"id"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Source  string `json:"source"`
}

// MediaPayload is one record of the media endpoint. Its own Type field
// decides whether the joined section renders as image or media.
type MediaPayload struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption"`
	Source    string `json:"source"`
	Author    string `json:"author"`
	PubDate   string `json:"pub_date"`
	ModDate   string `json:"mod_date"`
	Duration  int    `json:"duration"`
}

// HasMediaSections reports whether the detail payload references the media
// endpoint at all. The media list is only fetched when it does.
func (d *ArticleDetail) HasMediaSections() bool {
	for _, s := range d.Sections {
		if s.Type == SectionImage || s.Type == SectionMedia {
			return true
		}
	}
	return false
}

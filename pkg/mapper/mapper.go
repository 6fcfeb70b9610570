// Package mapper is the transform stage: it joins a raw article detail
// payload with its media payloads and produces a validated display record.
package mapper

import (
	"time"

	"github.com/adaora/newswire/models"
	"github.com/adaora/newswire/pkg/htmltext"
)

// MapArticle validates and reshapes one detail payload into an Article.
// articleURL becomes the record's canonical URL. media may be nil when the
// payload has no image or media sections.
func MapArticle(articleURL string, detail *models.ArticleDetail, media []models.MediaPayload) (*models.Article, error) {
	if detail.ID == "" {
		return nil, &SchemaError{Field: "id", Reason: "is missing"}
	}
	if detail.OriginalLanguage == "" {
		return nil, &SchemaError{ArticleID: detail.ID, Field: "original_language", Reason: "is missing"}
	}
	if detail.PubDate == "" {
		return nil, &SchemaError{ArticleID: detail.ID, Field: "pub_date", Reason: "is missing"}
	}

	pubDate, err := models.ParsePubDate(detail.PubDate)
	if err != nil {
		return nil, &SchemaError{ArticleID: detail.ID, Field: "pub_date", Reason: err.Error()}
	}

	// The feed often omits mod_date; the record then counts as modified now.
	modDate := time.Now()
	if detail.ModDate != "" {
		modDate, err = models.ParseModDate(detail.ModDate)
		if err != nil {
			return nil, &SchemaError{ArticleID: detail.ID, Field: "mod_date", Reason: err.Error()}
		}
	}

	mediaByID := make(map[string]models.MediaPayload, len(media))
	for _, m := range media {
		mediaByID[m.ID] = m
	}

	sections, err := mapSections(detail.ID, detail.Sections, mediaByID)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		ID:               detail.ID,
		OriginalLanguage: detail.OriginalLanguage,
		URL:              articleURL,
		Thumbnail:        detail.Thumbnail,
		Author:           detail.Author,
		PublicationDate:  pubDate,
		ModificationDate: modDate,
		Sections:         sections,
	}
	// Scalar category/tag become one-element sets.
	if detail.Category != "" {
		article.Categories = []string{detail.Category}
	}
	if detail.Tag != "" {
		article.Tags = []string{detail.Tag}
	}
	return article, nil
}

func mapSections(articleID string, stubs []models.SectionStub, mediaByID map[string]models.MediaPayload) ([]models.Section, error) {
	sections := make([]models.Section, 0, len(stubs))
	for _, stub := range stubs {
		if !models.KnownSectionType(stub.Type) {
			return nil, &SchemaError{ArticleID: articleID, Field: "sections.type", Reason: "has unknown value " + stub.Type}
		}

		var (
			section *models.Section
			err     error
		)
		switch stub.Type {
		case models.SectionImage, models.SectionMedia:
			section, err = joinMediaSection(articleID, stub, mediaByID)
		case models.SectionHeader:
			section, err = textSection(articleID, stub)
			if err == nil {
				if stub.Level <= 0 {
					err = &SchemaError{ArticleID: articleID, Field: "sections.level", Reason: "is missing"}
				} else {
					section.Level = stub.Level
				}
			}
		default:
			section, err = textSection(articleID, stub)
		}
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}
	return sections, nil
}

// textSection maps title, lead, text and the text part of header stubs,
// stripping any inline HTML.
func textSection(articleID string, stub models.SectionStub) (*models.Section, error) {
	if stub.Text == "" {
		return nil, &SchemaError{ArticleID: articleID, Field: "sections.text", Reason: "is missing"}
	}
	text, err := htmltext.Strip(stub.Text)
	if err != nil {
		return nil, &SchemaError{ArticleID: articleID, Field: "sections.text", Reason: "is not valid HTML: " + err.Error()}
	}
	return &models.Section{Type: stub.Type, Text: text}, nil
}

// joinMediaSection resolves an image or media stub against the media
// payloads. The joined record's own type wins: an image stub whose media
// record says "media" becomes a media section, and vice versa.
func joinMediaSection(articleID string, stub models.SectionStub, mediaByID map[string]models.MediaPayload) (*models.Section, error) {
	if stub.ID == "" {
		return nil, &SchemaError{ArticleID: articleID, Field: "sections.id", Reason: "is missing"}
	}
	m, ok := mediaByID[stub.ID]
	if !ok {
		return nil, &SchemaError{ArticleID: articleID, Field: "sections.id", Reason: "references unknown media " + stub.ID}
	}

	kind := m.Type
	if kind == "" {
		kind = stub.Type
	}
	switch kind {
	case models.SectionImage:
		if m.URL == "" {
			return nil, &SchemaError{ArticleID: articleID, Field: "media.url", Reason: "is missing"}
		}
		return &models.Section{
			Type:    models.SectionImage,
			URL:     m.URL,
			Alt:     m.Alt,
			Caption: m.Caption,
			Source:  m.Source,
		}, nil
	case models.SectionMedia:
		if m.URL == "" {
			return nil, &SchemaError{ArticleID: articleID, Field: "media.url", Reason: "is missing"}
		}
		if m.PubDate == "" {
			return nil, &SchemaError{ArticleID: articleID, Field: "media.pub_date", Reason: "is missing"}
		}
		pubDate, err := models.ParsePubDate(m.PubDate)
		if err != nil {
			return nil, &SchemaError{ArticleID: articleID, Field: "media.pub_date", Reason: err.Error()}
		}
		section := &models.Section{
			Type:            models.SectionMedia,
			ID:              m.ID,
			URL:             m.URL,
			Thumbnail:       m.Thumbnail,
			Caption:         m.Caption,
			Author:          m.Author,
			PublicationDate: &pubDate,
			DurationSeconds: m.Duration,
		}
		if m.ModDate != "" {
			modDate, err := models.ParseModDate(m.ModDate)
			if err != nil {
				return nil, &SchemaError{ArticleID: articleID, Field: "media.mod_date", Reason: err.Error()}
			}
			section.ModificationDate = &modDate
		}
		return section, nil
	default:
		return nil, &SchemaError{ArticleID: articleID, Field: "media.type", Reason: "has unknown value " + kind}
	}
}

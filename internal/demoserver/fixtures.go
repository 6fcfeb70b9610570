package demoserver

import "github.com/adaora/newswire/models"

// Fixture feed: enough variety to exercise every section kind, the media
// join, HTML stripping and both date layouts.

var fixtureHeadings = []models.Heading{
	{ID: "demo-1", Title: "City council approves new tram line"},
	{ID: "demo-2", Title: "Local bakery wins national prize"},
	{ID: "demo-3", Title: "Marathon weekend road closures"},
}

var fixtureDetails = map[string]models.ArticleDetail{
	"demo-1": {
		ID:               "demo-1",
		OriginalLanguage: "en",
		Thumbnail:        "https://demo.invalid/thumbs/demo-1.jpg",
		Category:         "news",
		Tag:              "transport",
		Author:           "Jan Kowalski",
		PubDate:          "2020-07-08-20;50;43",
		ModDate:          "2020-07-09-08:12:00",
		Sections: []models.SectionStub{
			{Type: "title", Text: "City council approves new tram line"},
			{Type: "lead", Text: "<p>The long-debated east-west tram line was approved on Tuesday.</p>"},
			{Type: "text", Text: "<p>Construction is expected to start <b>next spring</b>.</p>"},
			{Type: "image", ID: "demo-1-img-1"},
		},
	},
	"demo-2": {
		ID:               "demo-2",
		OriginalLanguage: "en",
		Category:         "local",
		Author:           "Maria Nowak",
		PubDate:          "2020-07-10-09;15;00",
		Sections: []models.SectionStub{
			{Type: "title", Text: "Local bakery wins national prize"},
			{Type: "header", Level: 2, Text: "A family business"},
			{Type: "text", Text: "The bakery has been run by the same family for three generations."},
			{Type: "media", ID: "demo-2-vid-1"},
		},
	},
	"demo-3": {
		ID:               "demo-3",
		OriginalLanguage: "en",
		Tag:              "sport",
		PubDate:          "2020-07-11-06;00;00",
		Sections: []models.SectionStub{
			{Type: "title", Text: "Marathon weekend road closures"},
			{Type: "text", Text: "Several main roads will be closed from Saturday morning."},
		},
	},
}

var fixtureMedia = map[string][]models.MediaPayload{
	"demo-1": {
		{
			ID:      "demo-1-img-1",
			Type:    "image",
			URL:     "https://demo.invalid/images/tram.jpg",
			Alt:     "Rendering of the planned tram line",
			Caption: "The planned east-west route",
			Source:  "City press office",
		},
	},
	"demo-2": {
		{
			ID:        "demo-2-vid-1",
			Type:      "media",
			URL:       "https://demo.invalid/videos/bakery.mp4",
			Thumbnail: "https://demo.invalid/thumbs/bakery.jpg",
			Caption:   "Inside the prize-winning bakery",
			Author:    "Maria Nowak",
			PubDate:   "2020-07-10-09;00;00",
			ModDate:   "2020-07-10-12:30:00",
			Duration:  95,
		},
	},
}

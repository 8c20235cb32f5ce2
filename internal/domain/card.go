// Package domain holds the transient value types flowing between the
// search adapters, the aggregator and the HTTP consumers. Nothing here is
// persisted: the portal content tables are owned by the CRUD side, the
// search service only reads and projects them.
package domain

// Card is the normalized record representing one matched entity, as shown
// in the search and chatbot UIs. The four text slots may contain embedded
// <mark> highlight markup. Image is an absolute URL or nil when the entity
// has no image.
type Card struct {
	Model         string  `json:"model"`
	Category      string  `json:"category"`
	URL           string  `json:"url"`
	TitleEn       string  `json:"title_en"`
	TitleAr       string  `json:"title_ar"`
	DescriptionEn string  `json:"description_en"`
	DescriptionAr string  `json:"description_ar"`
	Image         *string `json:"image"`
}

// Entry is a raw matching row as produced by an entity search adapter,
// before highlighting and asset resolution turn it into a Card.
// ImagePath is the stored relative path, empty when the entity type has no
// image column or the row has none.
type Entry struct {
	Model         string
	Category      string
	URL           string
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	ImagePath     string
}

package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Content describes the content in which the impression will appear.
type Content struct {
	ID      *string `json:"id,omitempty"`
	Episode *int32  `json:"episode,omitempty"`
	Title   *string `json:"title,omitempty"`
	Series  *string `json:"series,omitempty"`
	Season  *string `json:"season,omitempty"`
	Artist  *string `json:"artist,omitempty"`
	Genre   *string `json:"genre,omitempty"`
	Album   *string `json:"album,omitempty"`
	ISRC    *string `json:"isrc,omitempty"`

	Producer *Producer `json:"producer,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Cat      []string  `json:"cat,omitempty"`

	ProdQ          *enum.ProductionQuality `json:"prodq,omitempty"`
	VideoQuality   *enum.ProductionQuality `json:"videoquality,omitempty"` // deprecated, use ProdQ
	Context        *enum.ContentContext    `json:"context,omitempty"`
	ContentRating  *string                 `json:"contentrating,omitempty"`
	UserRating     *string                 `json:"userrating,omitempty"`
	QAGMediaRating *enum.IQGMediaRating    `json:"qagmediarating,omitempty"`
	Keywords       *string                 `json:"keywords,omitempty"`

	LiveStream         *enum.Flag `json:"livestream,omitempty"`
	SourceRelationship *enum.Flag `json:"sourcerelationship,omitempty"` // 0 indirect, 1 direct
	Len                *int32     `json:"len,omitempty"`                // seconds
	Language           *string    `json:"language,omitempty"`           // ISO-639-1-alpha-2
	Embeddable         *enum.Flag `json:"embeddable,omitempty"`
	Data               []Data     `json:"data,omitempty"`
	Ext                Ext        `json:"ext,omitempty"`
}

// Producer describes the producer of the content.
type Producer struct {
	ID     *string  `json:"id,omitempty"`
	Name   *string  `json:"name,omitempty"`
	Cat    []string `json:"cat,omitempty"`
	Domain *string  `json:"domain,omitempty"`
	Ext    Ext      `json:"ext,omitempty"`
}

package enum

import "github.com/anirudhraja/openrtb/wire"

// ===== CONTENT LISTS (OPENRTB 5.13, 5.18, 5.19) =====

// ProductionQuality is OpenRTB 5.13 content production quality (prodq).
type ProductionQuality int8

const (
	QualityUnknown ProductionQuality = iota
	QualityProfessional
	QualityProsumer
	QualityUserGenerated
)

var productionQualitySpan = newSpan[ProductionQuality]("ProductionQuality", 0,
	"Unknown", "Professional", "Prosumer", "UserGenerated",
)

// ParseProductionQuality decodes a wire integer.
func ParseProductionQuality(v int32) (ProductionQuality, error) { return productionQualitySpan.parse(int64(v)) }

func (p ProductionQuality) String() string { return productionQualitySpan.format(p) }

func (p ProductionQuality) MarshalCode() int32 { return int32(p) }

func (p *ProductionQuality) UnmarshalCode(v int64) error { return productionQualitySpan.unmarshal(v, p) }

func (p ProductionQuality) MarshalJSON() ([]byte, error) { return wire.MarshalCode(p), nil }

func (p *ProductionQuality) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, p) }

// ContentContext is OpenRTB 5.18 type of content (context).
type ContentContext int8

const (
	ContextVideo ContentContext = 1 + iota
	ContextGame
	ContextMusic
	ContextApplication
	ContextText
	ContextOther
	ContextUnknown
)

var contentContextSpan = newSpan[ContentContext]("ContentContext", 1,
	"Video", "Game", "Music", "Application", "Text", "Other", "Unknown",
)

// ParseContentContext decodes a wire integer.
func ParseContentContext(v int32) (ContentContext, error) { return contentContextSpan.parse(int64(v)) }

func (c ContentContext) String() string { return contentContextSpan.format(c) }

func (c ContentContext) MarshalCode() int32 { return int32(c) }

func (c *ContentContext) UnmarshalCode(v int64) error { return contentContextSpan.unmarshal(v, c) }

func (c ContentContext) MarshalJSON() ([]byte, error) { return wire.MarshalCode(c), nil }

func (c *ContentContext) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, c) }

// IQGMediaRating is OpenRTB 5.19 media ratings per IQG guidelines (qagmediarating).
type IQGMediaRating int8

const (
	RatingAllAudiences IQGMediaRating = 1 + iota
	RatingOver12
	RatingMature
)

var iqgMediaRatingSpan = newSpan[IQGMediaRating]("IQGMediaRating", 1,
	"AllAudiences", "Over12", "Mature",
)

// ParseIQGMediaRating decodes a wire integer.
func ParseIQGMediaRating(v int32) (IQGMediaRating, error) { return iqgMediaRatingSpan.parse(int64(v)) }

func (i IQGMediaRating) String() string { return iqgMediaRatingSpan.format(i) }

func (i IQGMediaRating) MarshalCode() int32 { return int32(i) }

func (i *IQGMediaRating) UnmarshalCode(v int64) error { return iqgMediaRatingSpan.unmarshal(v, i) }

func (i IQGMediaRating) MarshalJSON() ([]byte, error) { return wire.MarshalCode(i), nil }

func (i *IQGMediaRating) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, i) }

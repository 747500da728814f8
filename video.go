package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Video describes an in-stream video placement (VAST).
type Video struct {
	// Content MIME types supported, e.g. "video/mp4".
	Mimes []string `json:"mimes" rtb:"required"`

	MinDuration *int32          `json:"minduration,omitempty"`
	MaxDuration *int32          `json:"maxduration,omitempty"`
	Protocols   []enum.Protocol `json:"protocols,omitempty"`
	Protocol    *enum.Protocol  `json:"protocol,omitempty"` // deprecated, use Protocols
	W           *int32          `json:"w,omitempty"`
	H           *int32          `json:"h,omitempty"`

	StartDelay *enum.StartDelay         `json:"startdelay,omitempty"`
	Placement  *enum.VideoPlacementType `json:"placement,omitempty"`
	Linearity  *enum.VideoLinearity     `json:"linearity,omitempty"`

	Skip      *enum.Flag `json:"skip,omitempty"`
	SkipMin   *int32     `json:"skipmin,omitempty"`
	SkipAfter *int32     `json:"skipafter,omitempty"`
	Sequence  *int32     `json:"sequence,omitempty"`

	BAttr       []enum.CreativeAttribute    `json:"battr,omitempty"`
	MaxExtended *enum.MaxExtendedAdDuration `json:"maxextended,omitempty"`
	MinBitrate  *int32                      `json:"minbitrate,omitempty"`
	MaxBitrate  *int32                      `json:"maxbitrate,omitempty"`

	// Absent means letter-boxing is allowed.
	BoxingAllowed *enum.Flag `json:"boxingallowed,omitempty"`

	PlaybackMethod []enum.PlaybackMethod        `json:"playbackmethod,omitempty"`
	PlaybackEnd    *enum.PlaybackCessationMode  `json:"playbackend,omitempty"`
	Delivery       []enum.ContentDeliveryMethod `json:"delivery,omitempty"`
	Pos            *enum.AdPosition             `json:"pos,omitempty"`
	CompanionAd    []Banner                     `json:"companionad,omitempty"`
	API            []enum.APIFramework          `json:"api,omitempty"`
	CompanionType  []enum.CompanionType         `json:"companiontype,omitempty"`
	Ext            Ext                          `json:"ext,omitempty"`
}

package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Audio describes an audio placement (DAAST).
type Audio struct {
	Mimes []string `json:"mimes" rtb:"required"`

	MinDuration *int32           `json:"minduration,omitempty"`
	MaxDuration *int32           `json:"maxduration,omitempty"`
	Protocols   []enum.Protocol  `json:"protocols,omitempty"`
	StartDelay  *enum.StartDelay `json:"startdelay,omitempty"`
	Sequence    *int32           `json:"sequence,omitempty"`

	BAttr       []enum.CreativeAttribute     `json:"battr,omitempty"`
	MaxExtended *enum.MaxExtendedAdDuration  `json:"maxextended,omitempty"`
	MinBitrate  *int32                       `json:"minbitrate,omitempty"`
	MaxBitrate  *int32                       `json:"maxbitrate,omitempty"`
	Delivery    []enum.ContentDeliveryMethod `json:"delivery,omitempty"`

	CompanionAd   []Banner             `json:"companionad,omitempty"`
	API           []enum.APIFramework  `json:"api,omitempty"`
	CompanionType []enum.CompanionType `json:"companiontype,omitempty"`

	// Maximum number of ads that can be played in an ad pod.
	MaxSeq   *int32                        `json:"maxseq,omitempty"`
	Feed     *enum.FeedType                `json:"feed,omitempty"`
	Stitched *enum.Flag                    `json:"stitched,omitempty"`
	NVol     *enum.VolumeNormalizationMode `json:"nvol,omitempty"`
	Ext      Ext                           `json:"ext,omitempty"`
}

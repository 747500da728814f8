package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Banner describes a display or rich media placement. It also serves as
// the companion ad object of Video and Audio.
type Banner struct {
	Format []Format `json:"format,omitempty"`
	W      *int32   `json:"w,omitempty"`
	H      *int32   `json:"h,omitempty"`

	// Deprecated size ranges, superseded by Format.
	WMax *int32 `json:"wmax,omitempty"`
	HMax *int32 `json:"hmax,omitempty"`
	WMin *int32 `json:"wmin,omitempty"`
	HMin *int32 `json:"hmin,omitempty"`

	BType    []enum.BannerAdType        `json:"btype,omitempty"`
	BAttr    []enum.CreativeAttribute   `json:"battr,omitempty"`
	Pos      *enum.AdPosition           `json:"pos,omitempty"`
	Mimes    []string                   `json:"mimes,omitempty"`
	TopFrame *enum.Flag                 `json:"topframe,omitempty"`
	ExpDir   []enum.ExpandableDirection `json:"expdir,omitempty"`
	API      []enum.APIFramework        `json:"api,omitempty"`
	ID       *string                    `json:"id,omitempty"`

	// Companion rendering mode: 0 concurrent, 1 end-card.
	VCM *enum.Flag `json:"vcm,omitempty"`
	Ext Ext        `json:"ext,omitempty"`
}

// Format is an allowed size of a banner, either absolute or as a ratio.
type Format struct {
	W      *int32 `json:"w,omitempty"`
	H      *int32 `json:"h,omitempty"`
	WRatio *int32 `json:"wratio,omitempty"`
	HRatio *int32 `json:"hratio,omitempty"`
	WMin   *int32 `json:"wmin,omitempty"`
	Ext    Ext    `json:"ext,omitempty"`
}

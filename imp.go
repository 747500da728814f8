package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Imp describes an ad placement or impression being auctioned.
type Imp struct {
	ID     string   `json:"id" rtb:"required"`
	Metric []Metric `json:"metric,omitempty"`

	Banner *Banner `json:"banner,omitempty"`
	Video  *Video  `json:"video,omitempty"`
	Audio  *Audio  `json:"audio,omitempty"`
	Native *Native `json:"native,omitempty"`
	Pmp    *Pmp    `json:"pmp,omitempty"`

	DisplayManager    *string `json:"displaymanager,omitempty"`
	DisplayManagerVer *string `json:"displaymanagerver,omitempty"`

	// Interstitial or full screen.
	Instl *enum.Flag `json:"instl,omitempty"`
	TagID *string    `json:"tagid,omitempty"`

	// Minimum bid in BidFloorCur (default USD) CPM.
	BidFloor    *float64 `json:"bidfloor,omitempty"`
	BidFloorCur *string  `json:"bidfloorcur,omitempty"`

	ClickBrowser *enum.Flag `json:"clickbrowser,omitempty"`
	Secure       *enum.Flag `json:"secure,omitempty"`
	IframeBuster []string   `json:"iframebuster,omitempty"`

	// Advisory number of seconds between the auction and the actual impression.
	Exp *int32 `json:"exp,omitempty"`
	Ext Ext    `json:"ext,omitempty"`
}

// Metric is a metric the exchange reports for the impression, e.g. viewability.
type Metric struct {
	Type   string  `json:"type" rtb:"required"`
	Value  float64 `json:"value" rtb:"required"`
	Vendor *string `json:"vendor,omitempty"`
	Ext    Ext     `json:"ext,omitempty"`
}

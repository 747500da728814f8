package openrtb

import "github.com/anirudhraja/openrtb/enum"

// BidRequest is the top-level bid request object (OpenRTB 2.5 section 3.2.1).
// It must carry an id and at least one Imp.
//
// Members are emitted in declaration order; optional members are pointers or
// slices and are omitted when nil.
type BidRequest struct {
	// Unique ID of the bid request, provided by the exchange.
	ID string `json:"id" rtb:"required"`

	// Impressions offered. At least one is required.
	Imp []Imp `json:"imp" rtb:"required,nonempty"`

	// Distribution channel: a request should carry Site or App, not both.
	Site *Site `json:"site,omitempty"`
	App  *App  `json:"app,omitempty"`

	Device *Device `json:"device,omitempty"`
	User   *User   `json:"user,omitempty"`

	// Test mode; auctions in test mode are not billable.
	Test *enum.Flag `json:"test,omitempty"`

	// Auction type. Absent means second price plus.
	AT *enum.AuctionType `json:"at,omitempty"`

	// Maximum time in milliseconds the exchange allows for bids to be received.
	TMax *int32 `json:"tmax,omitempty"`

	// Allowed and blocked buyer seats. At most one should be used.
	WSeat []string `json:"wseat,omitempty"`
	BSeat []string `json:"bseat,omitempty"`

	// Flag indicating that all impressions offered represent everything
	// available in the context.
	AllImps *enum.Flag `json:"allimps,omitempty"`

	// Allowed currencies (ISO-4217) and creative languages (ISO-639-1-alpha-2).
	Cur   []string `json:"cur,omitempty"`
	WLang []string `json:"wlang,omitempty"`

	// Blocked advertiser categories, advertiser domains and app bundles.
	BCat []string `json:"bcat,omitempty"`
	BAdv []string `json:"badv,omitempty"`
	BApp []string `json:"bapp,omitempty"`

	Source *Source `json:"source,omitempty"`
	Regs   *Regs   `json:"regs,omitempty"`
	Ext    Ext     `json:"ext,omitempty"`
}

// MarshalJSON encodes the request with the default codec so that
// encoding/json users get the same bytes as Marshal.
func (r BidRequest) MarshalJSON() ([]byte, error) {
	return Marshal(&r)
}

// UnmarshalJSON decodes the request with the default codec.
func (r *BidRequest) UnmarshalJSON(data []byte) error {
	return Unmarshal(data, r)
}

// Source describes the nature and behavior of the entity that is the
// source of the bid request upstream from the exchange.
type Source struct {
	// Entity responsible for the final impression sale decision.
	FD *enum.SaleDecision `json:"fd,omitempty"`

	// Transaction ID common across all participants in this bid request.
	TID *string `json:"tid,omitempty"`

	// Payment ID chain string.
	PChain *string `json:"pchain,omitempty"`

	Ext Ext `json:"ext,omitempty"`
}

// Regs carries regulatory conditions in effect for the request.
type Regs struct {
	COPPA *enum.Flag `json:"coppa,omitempty"`
	Ext   Ext        `json:"ext,omitempty"`
}

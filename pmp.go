package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Pmp is the private marketplace container for direct deals.
type Pmp struct {
	// Restricts bids to the deals listed when set.
	PrivateAuction *enum.Flag `json:"private_auction,omitempty"`
	Deals          []Deal     `json:"deals,omitempty"`
	Ext            Ext        `json:"ext,omitempty"`
}

// Deal is a specific deal struck between a buyer and a seller.
type Deal struct {
	ID          string   `json:"id" rtb:"required"`
	BidFloor    *float64 `json:"bidfloor,omitempty"`
	BidFloorCur *string  `json:"bidfloorcur,omitempty"`

	// Optional override of the request's auction type.
	AT *enum.AuctionType `json:"at,omitempty"`

	WSeat    []string `json:"wseat,omitempty"`
	WADomain []string `json:"wadomain,omitempty"`
	Ext      Ext      `json:"ext,omitempty"`
}

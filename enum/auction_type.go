package enum

import (
	"fmt"

	"github.com/anirudhraja/openrtb/wire"
)

// AuctionKind identifies the variant held by an AuctionType.
type AuctionKind int8

const (
	AuctionSecondPricePlus AuctionKind = iota
	AuctionFirstPrice
	AuctionExchangeSpecific
)

// AuctionType is the auction type of a bid request or deal (at).
// 1 is first price, 2 is second price plus, values greater than 500 are
// exchange-specific rules. The zero value is SecondPricePlus, the protocol
// default.
type AuctionType struct {
	kind AuctionKind
	code int32
}

var (
	FirstPrice      = AuctionType{kind: AuctionFirstPrice}
	SecondPricePlus = AuctionType{kind: AuctionSecondPricePlus}
)

var auctionTypeShape = newOpenShape("AuctionType", []rule[AuctionKind]{
	{code: 1, kind: AuctionFirstPrice},
	{code: 2, kind: AuctionSecondPricePlus},
}, 500, AuctionExchangeSpecific)

// ExchangeAuction builds an exchange-specific auction type. code must be
// greater than 500.
func ExchangeAuction(code int32) (AuctionType, error) {
	if err := auctionTypeShape.payload(code); err != nil {
		return AuctionType{}, err
	}
	return AuctionType{kind: AuctionExchangeSpecific, code: code}, nil
}

// ParseAuctionType decodes a wire integer.
func ParseAuctionType(v int32) (AuctionType, error) {
	kind, code, err := auctionTypeShape.decode(int64(v))
	if err != nil {
		return AuctionType{}, err
	}
	return AuctionType{kind: kind, code: code}, nil
}

func (a AuctionType) Kind() AuctionKind { return a.kind }

// ExchangeCode returns the rule code of an exchange-specific auction.
func (a AuctionType) ExchangeCode() (int32, bool) {
	return a.code, a.kind == AuctionExchangeSpecific
}

// Code returns the wire integer.
func (a AuctionType) Code() int32 {
	return auctionTypeShape.encode(a.kind, a.code)
}

func (a AuctionType) String() string {
	switch a.kind {
	case AuctionFirstPrice:
		return "FirstPrice"
	case AuctionSecondPricePlus:
		return "SecondPricePlus"
	}
	return fmt.Sprintf("ExchangeSpecific(%d)", a.code)
}

func (a AuctionType) MarshalCode() int32 { return a.Code() }

func (a *AuctionType) UnmarshalCode(v int64) error {
	kind, code, err := auctionTypeShape.decode(v)
	if err != nil {
		return err
	}
	*a = AuctionType{kind: kind, code: code}
	return nil
}

func (a AuctionType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(a), nil }

func (a *AuctionType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, a) }

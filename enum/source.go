package enum

import "github.com/anirudhraja/openrtb/wire"

// SaleDecision lists the entity responsible for the final impression sale decision (fd).
type SaleDecision int8

const (
	DecisionExchange SaleDecision = iota
	DecisionUpstream
)

var saleDecisionSpan = newSpan[SaleDecision]("SaleDecision", 0,
	"Exchange", "Upstream",
)

// ParseSaleDecision decodes a wire integer.
func ParseSaleDecision(v int32) (SaleDecision, error) { return saleDecisionSpan.parse(int64(v)) }

func (s SaleDecision) String() string { return saleDecisionSpan.format(s) }

func (s SaleDecision) MarshalCode() int32 { return int32(s) }

func (s *SaleDecision) UnmarshalCode(v int64) error { return saleDecisionSpan.unmarshal(v, s) }

func (s SaleDecision) MarshalJSON() ([]byte, error) { return wire.MarshalCode(s), nil }

func (s *SaleDecision) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, s) }

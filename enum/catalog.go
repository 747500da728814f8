package enum

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/openrtb/schema"
)

// Value is implemented by the pointer of every coded type in this package.
type Value interface {
	schema.CodeMarshaler
	schema.CodeUnmarshaler
	fmt.Stringer
}

var catalog = map[string]func() Value{
	"AuctionType":             func() Value { return new(AuctionType) },
	"MaxExtendedAdDuration":   func() Value { return new(MaxExtendedAdDuration) },
	"StartDelay":              func() Value { return new(StartDelay) },
	"Flag":                    func() Value { return new(Flag) },
	"BannerAdType":            func() Value { return new(BannerAdType) },
	"CreativeAttribute":       func() Value { return new(CreativeAttribute) },
	"AdPosition":              func() Value { return new(AdPosition) },
	"ExpandableDirection":     func() Value { return new(ExpandableDirection) },
	"APIFramework":            func() Value { return new(APIFramework) },
	"CompanionType":           func() Value { return new(CompanionType) },
	"VideoLinearity":          func() Value { return new(VideoLinearity) },
	"Protocol":                func() Value { return new(Protocol) },
	"VideoPlacementType":      func() Value { return new(VideoPlacementType) },
	"PlaybackMethod":          func() Value { return new(PlaybackMethod) },
	"PlaybackCessationMode":   func() Value { return new(PlaybackCessationMode) },
	"ContentDeliveryMethod":   func() Value { return new(ContentDeliveryMethod) },
	"FeedType":                func() Value { return new(FeedType) },
	"VolumeNormalizationMode": func() Value { return new(VolumeNormalizationMode) },
	"ProductionQuality":       func() Value { return new(ProductionQuality) },
	"ContentContext":          func() Value { return new(ContentContext) },
	"IQGMediaRating":          func() Value { return new(IQGMediaRating) },
	"LocationType":            func() Value { return new(LocationType) },
	"DeviceType":              func() Value { return new(DeviceType) },
	"ConnectionType":          func() Value { return new(ConnectionType) },
	"IPLocationService":       func() Value { return new(IPLocationService) },
	"SaleDecision":            func() Value { return new(SaleDecision) },
}

// New returns a zero value of the named coded type.
func New(name string) (Value, bool) {
	f, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the names of all coded types, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

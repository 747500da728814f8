package enum

import "github.com/anirudhraja/openrtb/wire"

// ===== CREATIVE AND PLACEMENT LISTS (OPENRTB 5.2 TO 5.6, 5.14) =====

// BannerAdType is OpenRTB 5.2 banner ad types (btype).
type BannerAdType int8

const (
	BannerXHTMLTextAd BannerAdType = 1 + iota
	BannerXHTMLBannerAd
	BannerJavaScriptAd
	BannerIframe
)

var bannerAdTypeSpan = newSpan[BannerAdType]("BannerAdType", 1,
	"XHTMLTextAd", "XHTMLBannerAd", "JavaScriptAd", "Iframe",
)

// ParseBannerAdType decodes a wire integer.
func ParseBannerAdType(v int32) (BannerAdType, error) { return bannerAdTypeSpan.parse(int64(v)) }

func (b BannerAdType) String() string { return bannerAdTypeSpan.format(b) }

func (b BannerAdType) MarshalCode() int32 { return int32(b) }

func (b *BannerAdType) UnmarshalCode(v int64) error { return bannerAdTypeSpan.unmarshal(v, b) }

func (b BannerAdType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(b), nil }

func (b *BannerAdType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, b) }

// CreativeAttribute is OpenRTB 5.3 creative attributes (battr).
type CreativeAttribute int8

const (
	AttrAudioAutoPlay CreativeAttribute = 1 + iota
	AttrAudioUserInitiated
	AttrExpandableAutomatic
	AttrExpandableClickInitiated
	AttrExpandableRolloverInitiated
	AttrInBannerVideoAutoPlay
	AttrInBannerVideoUserInitiated
	AttrPop
	AttrProvocativeOrSuggestive
	AttrShakyFlashingFlickering
	AttrSurveys
	AttrTextOnly
	AttrUserInteractive
	AttrWindowsDialogOrAlert
	AttrHasAudioOnOffButton
	AttrAdProvidesSkipButton
	AttrAdobeFlash
)

var creativeAttributeSpan = newSpan[CreativeAttribute]("CreativeAttribute", 1,
	"AudioAutoPlay", "AudioUserInitiated", "ExpandableAutomatic",
	"ExpandableClickInitiated", "ExpandableRolloverInitiated", "InBannerVideoAutoPlay",
	"InBannerVideoUserInitiated", "Pop", "ProvocativeOrSuggestive",
	"ShakyFlashingFlickering", "Surveys", "TextOnly", "UserInteractive",
	"WindowsDialogOrAlert", "HasAudioOnOffButton", "AdProvidesSkipButton", "AdobeFlash",
)

// ParseCreativeAttribute decodes a wire integer.
func ParseCreativeAttribute(v int32) (CreativeAttribute, error) { return creativeAttributeSpan.parse(int64(v)) }

func (c CreativeAttribute) String() string { return creativeAttributeSpan.format(c) }

func (c CreativeAttribute) MarshalCode() int32 { return int32(c) }

func (c *CreativeAttribute) UnmarshalCode(v int64) error { return creativeAttributeSpan.unmarshal(v, c) }

func (c CreativeAttribute) MarshalJSON() ([]byte, error) { return wire.MarshalCode(c), nil }

func (c *CreativeAttribute) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, c) }

// AdPosition is OpenRTB 5.4 ad position on screen (pos).
type AdPosition int8

const (
	PosUnknown AdPosition = iota
	PosAboveTheFold
	PosMayOrMayNotBeVisible
	PosBelowTheFold
	PosHeader
	PosFooter
	PosSidebar
	PosFullScreen
)

var adPositionSpan = newSpan[AdPosition]("AdPosition", 0,
	"Unknown", "AboveTheFold", "MayOrMayNotBeVisible", "BelowTheFold", "Header", "Footer",
	"Sidebar", "FullScreen",
)

// ParseAdPosition decodes a wire integer.
func ParseAdPosition(v int32) (AdPosition, error) { return adPositionSpan.parse(int64(v)) }

func (a AdPosition) String() string { return adPositionSpan.format(a) }

func (a AdPosition) MarshalCode() int32 { return int32(a) }

func (a *AdPosition) UnmarshalCode(v int64) error { return adPositionSpan.unmarshal(v, a) }

func (a AdPosition) MarshalJSON() ([]byte, error) { return wire.MarshalCode(a), nil }

func (a *AdPosition) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, a) }

// ExpandableDirection is OpenRTB 5.5 directions in which an expandable ad may expand (expdir).
type ExpandableDirection int8

const (
	ExpandLeft ExpandableDirection = 1 + iota
	ExpandRight
	ExpandUp
	ExpandDown
	ExpandFullScreen
)

var expandableDirectionSpan = newSpan[ExpandableDirection]("ExpandableDirection", 1,
	"Left", "Right", "Up", "Down", "FullScreen",
)

// ParseExpandableDirection decodes a wire integer.
func ParseExpandableDirection(v int32) (ExpandableDirection, error) { return expandableDirectionSpan.parse(int64(v)) }

func (e ExpandableDirection) String() string { return expandableDirectionSpan.format(e) }

func (e ExpandableDirection) MarshalCode() int32 { return int32(e) }

func (e *ExpandableDirection) UnmarshalCode(v int64) error { return expandableDirectionSpan.unmarshal(v, e) }

func (e ExpandableDirection) MarshalJSON() ([]byte, error) { return wire.MarshalCode(e), nil }

func (e *ExpandableDirection) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, e) }

// APIFramework is OpenRTB 5.6 API frameworks supported by the placement (api).
type APIFramework int8

const (
	APIVPAID1 APIFramework = 1 + iota
	APIVPAID2
	APIMRAID1
	APIORMMA
	APIMRAID2
	APIMRAID3
)

var apiFrameworkSpan = newSpan[APIFramework]("APIFramework", 1,
	"VPAID1", "VPAID2", "MRAID1", "ORMMA", "MRAID2", "MRAID3",
)

// ParseAPIFramework decodes a wire integer.
func ParseAPIFramework(v int32) (APIFramework, error) { return apiFrameworkSpan.parse(int64(v)) }

func (a APIFramework) String() string { return apiFrameworkSpan.format(a) }

func (a APIFramework) MarshalCode() int32 { return int32(a) }

func (a *APIFramework) UnmarshalCode(v int64) error { return apiFrameworkSpan.unmarshal(v, a) }

func (a APIFramework) MarshalJSON() ([]byte, error) { return wire.MarshalCode(a), nil }

func (a *APIFramework) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, a) }

// CompanionType is OpenRTB 5.14 companion ad types (companiontype).
type CompanionType int8

const (
	CompanionStatic CompanionType = 1 + iota
	CompanionHTML
	CompanionIframe
)

var companionTypeSpan = newSpan[CompanionType]("CompanionType", 1,
	"Static", "HTML", "Iframe",
)

// ParseCompanionType decodes a wire integer.
func ParseCompanionType(v int32) (CompanionType, error) { return companionTypeSpan.parse(int64(v)) }

func (c CompanionType) String() string { return companionTypeSpan.format(c) }

func (c CompanionType) MarshalCode() int32 { return int32(c) }

func (c *CompanionType) UnmarshalCode(v int64) error { return companionTypeSpan.unmarshal(v, c) }

func (c CompanionType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(c), nil }

func (c *CompanionType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, c) }

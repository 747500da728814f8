package enum

import "github.com/anirudhraja/openrtb/wire"

// ===== VIDEO AND AUDIO LISTS (OPENRTB 5.7 TO 5.11, 5.15 TO 5.17) =====

// VideoLinearity is OpenRTB 5.7 video linearity (linearity).
type VideoLinearity int8

const (
	LinearityLinear VideoLinearity = 1 + iota
	LinearityNonLinear
)

var videoLinearitySpan = newSpan[VideoLinearity]("VideoLinearity", 1,
	"Linear", "NonLinear",
)

// ParseVideoLinearity decodes a wire integer.
func ParseVideoLinearity(v int32) (VideoLinearity, error) { return videoLinearitySpan.parse(int64(v)) }

func (l VideoLinearity) String() string { return videoLinearitySpan.format(l) }

func (l VideoLinearity) MarshalCode() int32 { return int32(l) }

func (l *VideoLinearity) UnmarshalCode(v int64) error { return videoLinearitySpan.unmarshal(v, l) }

func (l VideoLinearity) MarshalJSON() ([]byte, error) { return wire.MarshalCode(l), nil }

func (l *VideoLinearity) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, l) }

// Protocol is OpenRTB 5.8 video and audio bid response protocols (protocols).
type Protocol int8

const (
	ProtocolVAST1 Protocol = 1 + iota
	ProtocolVAST2
	ProtocolVAST3
	ProtocolVAST1Wrapper
	ProtocolVAST2Wrapper
	ProtocolVAST3Wrapper
	ProtocolVAST4
	ProtocolVAST4Wrapper
	ProtocolDAAST1
	ProtocolDAAST1Wrapper
)

var protocolSpan = newSpan[Protocol]("Protocol", 1,
	"VAST1", "VAST2", "VAST3", "VAST1Wrapper", "VAST2Wrapper", "VAST3Wrapper", "VAST4",
	"VAST4Wrapper", "DAAST1", "DAAST1Wrapper",
)

// ParseProtocol decodes a wire integer.
func ParseProtocol(v int32) (Protocol, error) { return protocolSpan.parse(int64(v)) }

func (p Protocol) String() string { return protocolSpan.format(p) }

func (p Protocol) MarshalCode() int32 { return int32(p) }

func (p *Protocol) UnmarshalCode(v int64) error { return protocolSpan.unmarshal(v, p) }

func (p Protocol) MarshalJSON() ([]byte, error) { return wire.MarshalCode(p), nil }

func (p *Protocol) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, p) }

// VideoPlacementType is OpenRTB 5.9 video placement types (placement).
type VideoPlacementType int8

const (
	PlacementInStream VideoPlacementType = 1 + iota
	PlacementInBanner
	PlacementInArticle
	PlacementInFeed
	PlacementInterstitial
)

var videoPlacementTypeSpan = newSpan[VideoPlacementType]("VideoPlacementType", 1,
	"InStream", "InBanner", "InArticle", "InFeed", "Interstitial",
)

// ParseVideoPlacementType decodes a wire integer.
func ParseVideoPlacementType(v int32) (VideoPlacementType, error) { return videoPlacementTypeSpan.parse(int64(v)) }

func (p VideoPlacementType) String() string { return videoPlacementTypeSpan.format(p) }

func (p VideoPlacementType) MarshalCode() int32 { return int32(p) }

func (p *VideoPlacementType) UnmarshalCode(v int64) error { return videoPlacementTypeSpan.unmarshal(v, p) }

func (p VideoPlacementType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(p), nil }

func (p *VideoPlacementType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, p) }

// PlaybackMethod is OpenRTB 5.10 video playback methods (playbackmethod).
type PlaybackMethod int8

const (
	PlaybackPageLoadSoundOn PlaybackMethod = 1 + iota
	PlaybackPageLoadSoundOff
	PlaybackClickSoundOn
	PlaybackMouseOverSoundOn
	PlaybackEnterViewportSoundOn
	PlaybackEnterViewportSoundOff
)

var playbackMethodSpan = newSpan[PlaybackMethod]("PlaybackMethod", 1,
	"PageLoadSoundOn", "PageLoadSoundOff", "ClickSoundOn", "MouseOverSoundOn",
	"EnterViewportSoundOn", "EnterViewportSoundOff",
)

// ParsePlaybackMethod decodes a wire integer.
func ParsePlaybackMethod(v int32) (PlaybackMethod, error) { return playbackMethodSpan.parse(int64(v)) }

func (p PlaybackMethod) String() string { return playbackMethodSpan.format(p) }

func (p PlaybackMethod) MarshalCode() int32 { return int32(p) }

func (p *PlaybackMethod) UnmarshalCode(v int64) error { return playbackMethodSpan.unmarshal(v, p) }

func (p PlaybackMethod) MarshalJSON() ([]byte, error) { return wire.MarshalCode(p), nil }

func (p *PlaybackMethod) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, p) }

// PlaybackCessationMode is OpenRTB 5.11 modes of playback termination (playbackend).
type PlaybackCessationMode int8

const (
	PlaybackEndVideoCompletion PlaybackCessationMode = 1 + iota
	PlaybackEndLeavingViewport
	PlaybackEndLeavingViewportFloating
)

var playbackCessationModeSpan = newSpan[PlaybackCessationMode]("PlaybackCessationMode", 1,
	"VideoCompletion", "LeavingViewport", "LeavingViewportFloating",
)

// ParsePlaybackCessationMode decodes a wire integer.
func ParsePlaybackCessationMode(v int32) (PlaybackCessationMode, error) { return playbackCessationModeSpan.parse(int64(v)) }

func (p PlaybackCessationMode) String() string { return playbackCessationModeSpan.format(p) }

func (p PlaybackCessationMode) MarshalCode() int32 { return int32(p) }

func (p *PlaybackCessationMode) UnmarshalCode(v int64) error { return playbackCessationModeSpan.unmarshal(v, p) }

func (p PlaybackCessationMode) MarshalJSON() ([]byte, error) { return wire.MarshalCode(p), nil }

func (p *PlaybackCessationMode) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, p) }

// ContentDeliveryMethod is OpenRTB 5.15 content delivery methods (delivery).
type ContentDeliveryMethod int8

const (
	DeliveryStreaming ContentDeliveryMethod = 1 + iota
	DeliveryProgressive
	DeliveryDownload
)

var contentDeliveryMethodSpan = newSpan[ContentDeliveryMethod]("ContentDeliveryMethod", 1,
	"Streaming", "Progressive", "Download",
)

// ParseContentDeliveryMethod decodes a wire integer.
func ParseContentDeliveryMethod(v int32) (ContentDeliveryMethod, error) { return contentDeliveryMethodSpan.parse(int64(v)) }

func (c ContentDeliveryMethod) String() string { return contentDeliveryMethodSpan.format(c) }

func (c ContentDeliveryMethod) MarshalCode() int32 { return int32(c) }

func (c *ContentDeliveryMethod) UnmarshalCode(v int64) error { return contentDeliveryMethodSpan.unmarshal(v, c) }

func (c ContentDeliveryMethod) MarshalJSON() ([]byte, error) { return wire.MarshalCode(c), nil }

func (c *ContentDeliveryMethod) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, c) }

// FeedType is OpenRTB 5.16 audio feed types (feed).
type FeedType int8

const (
	FeedMusicService FeedType = 1 + iota
	FeedFMAMBroadcast
	FeedPodcast
)

var feedTypeSpan = newSpan[FeedType]("FeedType", 1,
	"MusicService", "FMAMBroadcast", "Podcast",
)

// ParseFeedType decodes a wire integer.
func ParseFeedType(v int32) (FeedType, error) { return feedTypeSpan.parse(int64(v)) }

func (f FeedType) String() string { return feedTypeSpan.format(f) }

func (f FeedType) MarshalCode() int32 { return int32(f) }

func (f *FeedType) UnmarshalCode(v int64) error { return feedTypeSpan.unmarshal(v, f) }

func (f FeedType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(f), nil }

func (f *FeedType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, f) }

// VolumeNormalizationMode is OpenRTB 5.17 volume normalization modes (nvol).
type VolumeNormalizationMode int8

const (
	VolumeNone VolumeNormalizationMode = iota
	VolumeAverageVolume
	VolumePeakVolume
	VolumeLoudness
	VolumeCustomVolume
)

var volumeNormalizationModeSpan = newSpan[VolumeNormalizationMode]("VolumeNormalizationMode", 0,
	"None", "AverageVolume", "PeakVolume", "Loudness", "CustomVolume",
)

// ParseVolumeNormalizationMode decodes a wire integer.
func ParseVolumeNormalizationMode(v int32) (VolumeNormalizationMode, error) { return volumeNormalizationModeSpan.parse(int64(v)) }

func (n VolumeNormalizationMode) String() string { return volumeNormalizationModeSpan.format(n) }

func (n VolumeNormalizationMode) MarshalCode() int32 { return int32(n) }

func (n *VolumeNormalizationMode) UnmarshalCode(v int64) error { return volumeNormalizationModeSpan.unmarshal(v, n) }

func (n VolumeNormalizationMode) MarshalJSON() ([]byte, error) { return wire.MarshalCode(n), nil }

func (n *VolumeNormalizationMode) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, n) }

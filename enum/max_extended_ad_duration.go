package enum

import (
	"fmt"

	"github.com/anirudhraja/openrtb/wire"
)

// ExtendedKind identifies the variant held by a MaxExtendedAdDuration.
type ExtendedKind int8

const (
	ExtendedNotAllowed ExtendedKind = iota
	ExtendedNoLimit
	ExtendedSpecific
)

// MaxExtendedAdDuration is the maximum extended ad duration if extension is
// allowed (maxextended). -1 means no limit, 0 means extension is not allowed
// and a positive value is the number of seconds of extended play supported
// beyond the maxduration value. The zero value is NotAllowed.
type MaxExtendedAdDuration struct {
	kind    ExtendedKind
	seconds int32
}

var (
	ExtensionNoLimit    = MaxExtendedAdDuration{kind: ExtendedNoLimit}
	ExtensionNotAllowed = MaxExtendedAdDuration{kind: ExtendedNotAllowed}
)

var maxExtendedShape = newOpenShape("MaxExtendedAdDuration", []rule[ExtendedKind]{
	{code: -1, kind: ExtendedNoLimit},
	{code: 0, kind: ExtendedNotAllowed},
}, 0, ExtendedSpecific)

// ExtendedSeconds builds a specific extension limit. seconds must be positive.
func ExtendedSeconds(seconds int32) (MaxExtendedAdDuration, error) {
	if err := maxExtendedShape.payload(seconds); err != nil {
		return MaxExtendedAdDuration{}, err
	}
	return MaxExtendedAdDuration{kind: ExtendedSpecific, seconds: seconds}, nil
}

// ParseMaxExtendedAdDuration decodes a wire integer.
func ParseMaxExtendedAdDuration(v int32) (MaxExtendedAdDuration, error) {
	kind, seconds, err := maxExtendedShape.decode(int64(v))
	if err != nil {
		return MaxExtendedAdDuration{}, err
	}
	return MaxExtendedAdDuration{kind: kind, seconds: seconds}, nil
}

func (m MaxExtendedAdDuration) Kind() ExtendedKind { return m.kind }

// Seconds returns the limit of a specific extension.
func (m MaxExtendedAdDuration) Seconds() (int32, bool) {
	return m.seconds, m.kind == ExtendedSpecific
}

// Code returns the wire integer.
func (m MaxExtendedAdDuration) Code() int32 {
	return maxExtendedShape.encode(m.kind, m.seconds)
}

func (m MaxExtendedAdDuration) String() string {
	switch m.kind {
	case ExtendedNoLimit:
		return "NoLimit"
	case ExtendedNotAllowed:
		return "NotAllowed"
	}
	return fmt.Sprintf("Specific(%d)", m.seconds)
}

func (m MaxExtendedAdDuration) MarshalCode() int32 { return m.Code() }

func (m *MaxExtendedAdDuration) UnmarshalCode(v int64) error {
	kind, seconds, err := maxExtendedShape.decode(v)
	if err != nil {
		return err
	}
	*m = MaxExtendedAdDuration{kind: kind, seconds: seconds}
	return nil
}

func (m MaxExtendedAdDuration) MarshalJSON() ([]byte, error) { return wire.MarshalCode(m), nil }

func (m *MaxExtendedAdDuration) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, m) }

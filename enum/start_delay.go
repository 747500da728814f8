package enum

import (
	"fmt"

	"github.com/anirudhraja/openrtb/wire"
)

// StartDelayKind identifies the variant held by a StartDelay.
type StartDelayKind int8

const (
	DelayPreRoll StartDelayKind = iota
	DelayGenericMidRoll
	DelayGenericPostRoll
	DelayMidRoll
)

// StartDelay is the start delay in seconds for pre-roll, mid-roll or
// post-roll ad placements (startdelay, OpenRTB 5.12). The zero value is
// PreRoll.
type StartDelay struct {
	kind    StartDelayKind
	seconds int32
}

var (
	PreRoll         = StartDelay{kind: DelayPreRoll}
	GenericMidRoll  = StartDelay{kind: DelayGenericMidRoll}
	GenericPostRoll = StartDelay{kind: DelayGenericPostRoll}
)

var startDelayShape = newOpenShape("StartDelay", []rule[StartDelayKind]{
	{code: 0, kind: DelayPreRoll},
	{code: -1, kind: DelayGenericMidRoll},
	{code: -2, kind: DelayGenericPostRoll},
}, 0, DelayMidRoll)

// MidRoll builds a mid-roll delay of the given number of seconds, which must
// be positive.
func MidRoll(seconds int32) (StartDelay, error) {
	if err := startDelayShape.payload(seconds); err != nil {
		return StartDelay{}, err
	}
	return StartDelay{kind: DelayMidRoll, seconds: seconds}, nil
}

// ParseStartDelay decodes a wire integer.
func ParseStartDelay(v int32) (StartDelay, error) {
	kind, seconds, err := startDelayShape.decode(int64(v))
	if err != nil {
		return StartDelay{}, err
	}
	return StartDelay{kind: kind, seconds: seconds}, nil
}

func (s StartDelay) Kind() StartDelayKind { return s.kind }

// Seconds returns the offset of a mid-roll placement.
func (s StartDelay) Seconds() (int32, bool) {
	return s.seconds, s.kind == DelayMidRoll
}

// Code returns the wire integer.
func (s StartDelay) Code() int32 {
	return startDelayShape.encode(s.kind, s.seconds)
}

func (s StartDelay) String() string {
	switch s.kind {
	case DelayPreRoll:
		return "PreRoll"
	case DelayGenericMidRoll:
		return "GenericMidRoll"
	case DelayGenericPostRoll:
		return "GenericPostRoll"
	}
	return fmt.Sprintf("MidRoll(%d)", s.seconds)
}

func (s StartDelay) MarshalCode() int32 { return s.Code() }

func (s *StartDelay) UnmarshalCode(v int64) error {
	kind, seconds, err := startDelayShape.decode(v)
	if err != nil {
		return err
	}
	*s = StartDelay{kind: kind, seconds: seconds}
	return nil
}

func (s StartDelay) MarshalJSON() ([]byte, error) { return wire.MarshalCode(s), nil }

func (s *StartDelay) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, s) }

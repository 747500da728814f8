package enum

import "github.com/anirudhraja/openrtb/wire"

// Flag is a 0/1 indicator. The zero value is No.
type Flag struct {
	yes bool
}

var (
	No  = Flag{}
	Yes = Flag{yes: true}
)

var flagShape = newShape("Flag", []rule[bool]{
	{code: 0, kind: false},
	{code: 1, kind: true},
})

// FlagOf converts a bool.
func FlagOf(b bool) Flag { return Flag{yes: b} }

// ParseFlag decodes a wire integer.
func ParseFlag(v int32) (Flag, error) {
	yes, _, err := flagShape.decode(int64(v))
	if err != nil {
		return Flag{}, err
	}
	return Flag{yes: yes}, nil
}

func (f Flag) Bool() bool { return f.yes }

// Code returns the wire integer.
func (f Flag) Code() int32 { return flagShape.encode(f.yes, 0) }

func (f Flag) String() string {
	if f.yes {
		return "Yes"
	}
	return "No"
}

func (f Flag) MarshalCode() int32 { return f.Code() }

func (f *Flag) UnmarshalCode(v int64) error {
	yes, _, err := flagShape.decode(v)
	if err != nil {
		return err
	}
	f.yes = yes
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) { return wire.MarshalCode(f), nil }

func (f *Flag) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, f) }

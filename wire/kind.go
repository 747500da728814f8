package wire

import jsoniter "github.com/json-iterator/go"

// ===== JSON VALUE KINDS =====

// Kind is the kind of the next JSON value in a Decoder.
type Kind int8

const (
	KindInvalid Kind = iota // not the start of a JSON value, or end of input
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func kindOf(vt jsoniter.ValueType) Kind {
	switch vt {
	case jsoniter.NilValue:
		return KindNull
	case jsoniter.BoolValue:
		return KindBool
	case jsoniter.NumberValue:
		return KindNumber
	case jsoniter.StringValue:
		return KindString
	case jsoniter.ArrayValue:
		return KindArray
	case jsoniter.ObjectValue:
		return KindObject
	}
	return KindInvalid
}

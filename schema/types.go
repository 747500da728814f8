package schema

import "reflect"

// ===== CODED-VALUE CONTRACT =====

// CodeMarshaler is implemented by coded-value types whose wire form is a
// single JSON integer. MarshalCode must never fail.
type CodeMarshaler interface {
	MarshalCode() int32
}

// CodeUnmarshaler is the decode half of the coded-value contract. The full
// parsed integer is passed so that values outside the 32-bit range are
// rejected by the type with its own description of the legal forms.
type CodeUnmarshaler interface {
	UnmarshalCode(v int64) error
}

// ===== MESSAGE DESCRIPTORS =====

// Message describes an aggregate record: a Go struct whose exported fields
// map to JSON object members.
type Message struct {
	Name   string       `json:"name"`   // "BidRequest"
	GoType reflect.Type `json:"-"`      // struct type the descriptor was built from
	Fields []*Field     `json:"fields"` // declaration order, which is also emission order

	byName map[string]int
}

// Field describes one member of a Message.
type Field struct {
	Name     string     `json:"name"`      // JSON member name, e.g. "tmax"
	Index    int        `json:"index"`     // struct field index
	Label    FieldLabel `json:"label"`     // optional, required or repeated
	NonEmpty bool       `json:"non_empty"` // required sequence that must hold at least one element
	Type     FieldType  `json:"type"`
}

// Required reports whether the member must be present in a decoded object.
func (f *Field) Required() bool {
	return f.Label == LabelRequired
}

// FieldLabel represents field presence policy
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType represents field type information
type FieldType struct {
	Kind      TypeKind      `json:"kind"`                // primitive, message, coded, raw, repeated
	Primitive PrimitiveType `json:"primitive,omitempty"` // for primitive types
	Message   string        `json:"message,omitempty"`   // for message types: "Imp"
	Elem      *FieldType    `json:"elem,omitempty"`      // for repeated element type
	Pointer   bool          `json:"pointer,omitempty"`   // optional value held behind a pointer
	GoType    reflect.Type  `json:"-"`                   // element type with any pointer removed
}

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
	KindCoded     TypeKind = "coded"
	KindRaw       TypeKind = "raw"
	KindRepeated  TypeKind = "repeated"
)

// PrimitiveType represents the plain scalar types a member may carry
type PrimitiveType string

const (
	TypeString  PrimitiveType = "string"
	TypeInt32   PrimitiveType = "int32"
	TypeInt64   PrimitiveType = "int64"
	TypeFloat64 PrimitiveType = "float64"
)

// Lookup returns the field with the given member name, or nil.
func (m *Message) Lookup(name string) *Field {
	if m.byName == nil {
		for _, f := range m.Fields {
			if f.Name == name {
				return f
			}
		}
		return nil
	}
	if i, ok := m.byName[name]; ok {
		return m.Fields[i]
	}
	return nil
}

// Position returns the declaration position of the named member, or -1.
func (m *Message) Position(name string) int {
	if m.byName != nil {
		if i, ok := m.byName[name]; ok {
			return i
		}
		return -1
	}
	for i, f := range m.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Seal builds the name index. Descriptors must not be modified afterwards.
func (m *Message) Seal() {
	m.byName = make(map[string]int, len(m.Fields))
	for i, f := range m.Fields {
		m.byName[f.Name] = i
	}
}

// String renders the type the way descriptor tables print it, e.g.
// "[]Imp", "*AuctionType", "string".
func (t FieldType) String() string {
	prefix := ""
	if t.Pointer {
		prefix = "*"
	}
	switch t.Kind {
	case KindRepeated:
		if t.Elem == nil {
			return "[]?"
		}
		return "[]" + t.Elem.String()
	case KindPrimitive:
		return prefix + string(t.Primitive)
	case KindMessage:
		return prefix + t.Message
	case KindRaw:
		return "raw"
	}
	if t.GoType != nil {
		return prefix + t.GoType.Name()
	}
	return prefix + string(t.Kind)
}

// ===== PROTO DEFINITIONS =====

// ProtoFile represents a single parsed .proto file used to cross-check
// the Go declarations.
type ProtoFile struct {
	Name     string              `json:"name"`     // openrtb.proto
	Package  string              `json:"package"`  // package name
	Syntax   string              `json:"syntax"`   // proto2 or proto3
	Messages map[string]*Message `json:"messages"` // flattened by simple name
}

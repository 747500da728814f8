package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/openrtb/schema"
)

// LoadProto parses a .proto definition of the bid request objects so that the
// Go declarations can be cross-checked against it. Nested messages are
// flattened by their simple name; only member names and labels are kept.
func LoadProto(name string, r io.Reader) (*schema.ProtoFile, error) {
	parsed, err := protoparser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	protoFile := &schema.ProtoFile{
		Name:     name,
		Syntax:   "proto2",
		Messages: make(map[string]*schema.Message),
	}
	if parsed.Syntax != nil && parsed.Syntax.ProtobufVersion != "" {
		protoFile.Syntax = parsed.Syntax.ProtobufVersion
	}

	for _, body := range parsed.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Package:
			protoFile.Package = b.Name
		case *protoparserparser.Message:
			if err := collectMessage(protoFile, b); err != nil {
				return nil, err
			}
		}
	}
	return protoFile, nil
}

func collectMessage(protoFile *schema.ProtoFile, m *protoparserparser.Message) error {
	if _, ok := protoFile.Messages[m.MessageName]; ok {
		return fmt.Errorf("%s: message %s declared twice", protoFile.Name, m.MessageName)
	}
	msg := &schema.Message{Name: m.MessageName}
	protoFile.Messages[m.MessageName] = msg

	for _, body := range m.MessageBody {
		switch b := body.(type) {
		case *protoparserparser.Field:
			field := &schema.Field{Name: b.FieldName, Label: schema.LabelOptional}
			switch {
			case b.IsRepeated:
				field.Label = schema.LabelRepeated
			case b.IsRequired:
				field.Label = schema.LabelRequired
			}
			field.Type = protoFieldType(b.Type, b.IsRepeated)
			msg.Fields = append(msg.Fields, field)
		case *protoparserparser.Message:
			if err := collectMessage(protoFile, b); err != nil {
				return err
			}
		}
	}
	msg.Seal()
	return nil
}

func protoFieldType(typeName string, repeated bool) schema.FieldType {
	var ft schema.FieldType
	switch typeName {
	case "string":
		ft = schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeString}
	case "int32", "sint32", "uint32", "bool":
		ft = schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeInt32}
	case "int64", "sint64", "uint64":
		ft = schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeInt64}
	case "double", "float":
		ft = schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeFloat64}
	case "bytes":
		ft = schema.FieldType{Kind: schema.KindRaw}
	default:
		// enum or message reference; the simple name is enough for reporting
		name := typeName
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		ft = schema.FieldType{Kind: schema.KindMessage, Message: name}
	}
	if repeated {
		elem := ft
		return schema.FieldType{Kind: schema.KindRepeated, Elem: &elem}
	}
	return ft
}

// ===== DRIFT REPORT =====

// DriftKind classifies a difference between a Go descriptor and a proto one.
type DriftKind string

const (
	DriftMissingInProto DriftKind = "missing in proto"
	DriftMissingInGo    DriftKind = "missing in go"
	DriftLabel          DriftKind = "label mismatch"
)

// Drift is one difference found by Diff.
type Drift struct {
	Message string
	Field   string
	Kind    DriftKind
	Go      schema.FieldLabel
	Proto   schema.FieldLabel
}

func (d Drift) String() string {
	if d.Kind == DriftLabel {
		return fmt.Sprintf("%s.%s: %s (go %s, proto %s)", d.Message, d.Field, d.Kind, d.Go, d.Proto)
	}
	return fmt.Sprintf("%s.%s: %s", d.Message, d.Field, d.Kind)
}

// Diff compares member names and presence labels of a Go descriptor against
// a descriptor loaded from a .proto file. Extension members ("ext") are
// ignored since proto definitions model them as extension ranges.
func Diff(goMsg, protoMsg *schema.Message) []Drift {
	var drift []Drift
	for _, f := range goMsg.Fields {
		if f.Name == "ext" {
			continue
		}
		pf := protoMsg.Lookup(f.Name)
		if pf == nil {
			drift = append(drift, Drift{Message: goMsg.Name, Field: f.Name, Kind: DriftMissingInProto})
			continue
		}
		// proto has no way to mark a repeated member required
		if f.Label != pf.Label && !(f.Type.Kind == schema.KindRepeated && pf.Label == schema.LabelRepeated) {
			drift = append(drift, Drift{Message: goMsg.Name, Field: f.Name, Kind: DriftLabel, Go: f.Label, Proto: pf.Label})
		}
	}
	for _, pf := range protoMsg.Fields {
		if pf.Name == "ext" {
			continue
		}
		if goMsg.Lookup(pf.Name) == nil {
			drift = append(drift, Drift{Message: goMsg.Name, Field: pf.Name, Kind: DriftMissingInGo})
		}
	}
	sort.SliceStable(drift, func(i, j int) bool { return drift[i].Field < drift[j].Field })
	return drift
}

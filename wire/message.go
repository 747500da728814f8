package wire

import (
	"fmt"
	"reflect"

	"github.com/anirudhraja/openrtb/registry"
	"github.com/anirudhraja/openrtb/schema"
)

var defaultRegistry = registry.NewRegistry()

// MessageDecoder handles message decoding operations
type MessageDecoder struct {
	decoder *Decoder
}

// MessageEncoder handles message encoding operations
type MessageEncoder struct {
	encoder *Encoder
}

// NewMessageDecoder creates a new message decoder
func NewMessageDecoder(d *Decoder) *MessageDecoder {
	if d.registry == nil {
		d.registry = defaultRegistry
	}
	return &MessageDecoder{decoder: d}
}

// NewMessageEncoder creates a new message encoder
func NewMessageEncoder(e *Encoder) *MessageEncoder {
	if e.registry == nil {
		e.registry = defaultRegistry
	}
	return &MessageEncoder{encoder: e}
}

// ===== ENTRY POINTS =====

// DecodeMessage decodes a JSON document into v, which must be a pointer to a
// struct. v is only written when the whole document decodes successfully.
func DecodeMessage(data []byte, v interface{}, registry *registry.Registry, config Config) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil pointer to struct, got %T", v)
	}

	d := NewDecoderWithRegistry(data, registry, config)
	defer d.Release()
	md := NewMessageDecoder(d)

	msg, err := d.registry.MessageFor(rv.Elem().Type())
	if err != nil {
		return err
	}
	out := reflect.New(msg.GoType).Elem()
	if err := md.DecodeMessage(msg, out); err != nil {
		return err
	}
	if err := d.Finish(); err != nil {
		return err
	}
	rv.Elem().Set(out)
	return nil
}

// EncodeMessage encodes v, a struct or pointer to struct, as a JSON object.
func EncodeMessage(v interface{}, registry *registry.Registry) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("encode source must not be a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("encode source must be a struct, got %T", v)
	}

	e := NewEncoderWithRegistry(registry)
	defer e.Release()
	me := NewMessageEncoder(e)

	msg, err := e.registry.MessageFor(rv.Type())
	if err != nil {
		return nil, err
	}
	if err := me.EncodeMessage(msg, rv); err != nil {
		return nil, err
	}
	return e.Bytes()
}

// DECODER METHODS

// DecodeMessage decodes one JSON object into out, an addressable struct value
// described by msg.
func (md *MessageDecoder) DecodeMessage(msg *schema.Message, out reflect.Value) error {
	d := md.decoder
	seen := make([]bool, len(msg.Fields))

	err := d.ReadObject(func(name string) error {
		i := msg.Position(name)
		if i < 0 {
			// Unknown member - skip it
			return d.Skip()
		}
		if seen[i] {
			return wrapWithField(ErrDuplicateField, name)
		}
		seen[i] = true
		field := msg.Fields[i]
		return wrapWithField(md.decodeField(field, out.Field(field.Index)), name)
	})
	if err != nil {
		return err
	}

	for i, field := range msg.Fields {
		if !field.Required() {
			continue
		}
		if err := md.checkRequired(field, seen[i], out.Field(field.Index)); err != nil {
			return wrapWithField(err, field.Name)
		}
	}
	return nil
}

func (md *MessageDecoder) checkRequired(field *schema.Field, present bool, fv reflect.Value) error {
	strict := field.NonEmpty && md.decoder.config.RequireNonEmpty
	switch {
	case !present && strict:
		return ErrEmptyRequiredSequence
	case !present:
		return ErrMissingRequiredField
	case strict && fv.Len() == 0:
		return ErrEmptyRequiredSequence
	}
	return nil
}

func (md *MessageDecoder) decodeField(field *schema.Field, fv reflect.Value) error {
	d := md.decoder
	if d.Next() == KindNull {
		if field.Required() {
			return newTypeMismatch(field.Type.String(), KindNull)
		}
		if _, err := d.ReadNull(); err != nil {
			return err
		}
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	return md.decodeValue(&field.Type, fv)
}

func (md *MessageDecoder) decodeValue(ft *schema.FieldType, fv reflect.Value) error {
	if ft.Pointer {
		p := reflect.New(ft.GoType)
		if err := md.decodeElem(ft, p.Elem()); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}
	return md.decodeElem(ft, fv)
}

func (md *MessageDecoder) decodeElem(ft *schema.FieldType, fv reflect.Value) error {
	d := md.decoder
	switch ft.Kind {
	case schema.KindPrimitive:
		return md.decodePrimitive(ft.Primitive, fv)

	case schema.KindCoded:
		u, ok := fv.Addr().Interface().(schema.CodeUnmarshaler)
		if !ok {
			return fmt.Errorf("%s does not implement CodeUnmarshaler", fv.Type())
		}
		return d.ReadCode(u)

	case schema.KindRaw:
		raw, err := d.ReadRawObject()
		if err != nil {
			return err
		}
		fv.SetBytes(raw)
		return nil

	case schema.KindMessage:
		msg, err := d.registry.MessageFor(ft.GoType)
		if err != nil {
			return err
		}
		return md.DecodeMessage(msg, fv)

	case schema.KindRepeated:
		return md.decodeRepeated(ft, fv)
	}
	return fmt.Errorf("unsupported field kind: %s", ft.Kind)
}

func (md *MessageDecoder) decodePrimitive(pt schema.PrimitiveType, fv reflect.Value) error {
	d := md.decoder
	switch pt {
	case schema.TypeString:
		s, err := d.ReadString()
		if err != nil {
			return err
		}
		fv.SetString(s)
	case schema.TypeInt32:
		v, err := d.ReadInt32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case schema.TypeInt64:
		v, err := d.ReadInt64()
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case schema.TypeFloat64:
		v, err := d.ReadFloat64()
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	default:
		return fmt.Errorf("unsupported primitive type: %s", pt)
	}
	return nil
}

// decodeRepeated reads a JSON array. The result is never nil, so a present
// empty array stays distinguishable from an absent member.
func (md *MessageDecoder) decodeRepeated(ft *schema.FieldType, fv reflect.Value) error {
	d := md.decoder
	slice := reflect.MakeSlice(fv.Type(), 0, 4)
	err := d.ReadArray(func(i int) error {
		if d.Next() == KindNull {
			return wrapWithIndex(newTypeMismatch(ft.Elem.String(), KindNull), i)
		}
		elem := reflect.New(fv.Type().Elem()).Elem()
		if err := md.decodeValue(ft.Elem, elem); err != nil {
			return wrapWithIndex(err, i)
		}
		slice = reflect.Append(slice, elem)
		return nil
	})
	if err != nil {
		return err
	}
	fv.Set(slice)
	return nil
}

// ENCODER METHODS

// EncodeMessage writes the members of v in declaration order. Absent
// optional members are omitted; required members are always written.
func (me *MessageEncoder) EncodeMessage(msg *schema.Message, v reflect.Value) error {
	e := me.encoder
	e.BeginObject()
	for _, field := range msg.Fields {
		fv := v.Field(field.Index)
		if !field.Required() && isAbsent(fv) {
			continue
		}
		e.Field(field.Name)
		if err := me.encodeValue(&field.Type, fv); err != nil {
			return wrapWithField(err, field.Name)
		}
	}
	e.EndObject()
	return nil
}

func isAbsent(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.Ptr, reflect.Slice:
		return fv.IsNil()
	}
	return false
}

func (me *MessageEncoder) encodeValue(ft *schema.FieldType, fv reflect.Value) error {
	if ft.Pointer {
		fv = fv.Elem()
	}
	e := me.encoder
	switch ft.Kind {
	case schema.KindPrimitive:
		switch ft.Primitive {
		case schema.TypeString:
			e.String(fv.String())
		case schema.TypeInt32:
			e.Int32(int32(fv.Int()))
		case schema.TypeInt64:
			e.Int64(fv.Int())
		case schema.TypeFloat64:
			e.Float64(fv.Float())
		default:
			return fmt.Errorf("unsupported primitive type: %s", ft.Primitive)
		}

	case schema.KindCoded:
		m, ok := fv.Interface().(schema.CodeMarshaler)
		if !ok {
			return fmt.Errorf("%s does not implement CodeMarshaler", fv.Type())
		}
		e.Code(m)

	case schema.KindRaw:
		e.Raw(fv.Bytes())

	case schema.KindMessage:
		msg, err := e.registry.MessageFor(ft.GoType)
		if err != nil {
			return err
		}
		return me.EncodeMessage(msg, fv)

	case schema.KindRepeated:
		e.BeginArray()
		for i := 0; i < fv.Len(); i++ {
			if err := me.encodeValue(ft.Elem, fv.Index(i)); err != nil {
				return wrapWithIndex(err, i)
			}
		}
		e.EndArray()

	default:
		return fmt.Errorf("unsupported field kind: %s", ft.Kind)
	}
	return nil
}

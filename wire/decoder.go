package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/anirudhraja/openrtb/registry"
	"github.com/anirudhraja/openrtb/schema"
)

// Decoder pulls JSON values one at a time from an input document
type Decoder struct {
	iter     *jsoniter.Iterator
	registry *registry.Registry
	config   Config
	// malformed is set when the document failed the grammar check; every
	// read then reports it.
	malformed error
}

// NewDecoder creates a new JSON decoder over data. Call Release when done.
func NewDecoder(data []byte) *Decoder {
	return NewDecoderWithRegistry(data, nil, DefaultConfig())
}

// NewDecoderWithRegistry creates a decoder with schema registry
func NewDecoderWithRegistry(data []byte, registry *registry.Registry, config Config) *Decoder {
	d := &Decoder{
		registry: registry,
		config:   config,
	}
	if err := checkGrammar(data); err != nil {
		d.malformed = err
		data = nil
	}
	d.iter = JSON.BorrowIterator(data)
	return d
}

// checkGrammar rejects documents that are not well-formed JSON. The iterator
// reads a bare null in member-name position as the name "", and Skip carries
// the same leniency into captured ext objects, so structure is checked once
// up front.
func checkGrammar(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Msg: fmt.Sprintf("%s at offset %d", se.Error(), se.Offset)}
	}
	return &SyntaxError{Msg: "document is not well-formed"}
}

// Release returns the underlying iterator to its pool. The decoder must not
// be used afterwards.
func (d *Decoder) Release() {
	if d.iter != nil {
		JSON.ReturnIterator(d.iter)
		d.iter = nil
	}
}

// syntaxErr converts the iterator's error state. Reaching the end of input is
// not an error by itself.
func (d *Decoder) syntaxErr() error {
	if d.malformed != nil {
		return d.malformed
	}
	if d.iter.Error == nil || d.iter.Error == io.EOF {
		return nil
	}
	return &SyntaxError{Msg: d.iter.Error.Error()}
}

// unexpected builds the error for a value of kind k where expected was wanted.
func (d *Decoder) unexpected(expected string, k Kind) error {
	if k == KindInvalid {
		if err := d.syntaxErr(); err != nil {
			return err
		}
		if d.iter.Error == io.EOF {
			return &SyntaxError{Msg: "unexpected end of input"}
		}
		return &SyntaxError{Msg: "invalid character where " + expected + " was expected"}
	}
	return newTypeMismatch(expected, k)
}

// Next reports the kind of the next value without consuming it
func (d *Decoder) Next() Kind {
	return kindOf(d.iter.WhatIsNext())
}

// ReadNull consumes a null literal if one is next
func (d *Decoder) ReadNull() (bool, error) {
	if d.Next() != KindNull {
		return false, nil
	}
	d.iter.ReadNil()
	return true, d.syntaxErr()
}

// ReadString reads a JSON string
func (d *Decoder) ReadString() (string, error) {
	return NewRawDecoder(d).DecodeString()
}

// ReadInteger reads a JSON integer with no fraction or exponent part
func (d *Decoder) ReadInteger() (int64, error) {
	return NewNumberDecoder(d).DecodeInteger()
}

// ReadInt32 reads a JSON integer that fits in 32 bits
func (d *Decoder) ReadInt32() (int32, error) {
	return NewNumberDecoder(d).DecodeInt32()
}

// ReadInt64 reads a JSON integer that fits in 64 bits
func (d *Decoder) ReadInt64() (int64, error) {
	return NewNumberDecoder(d).DecodeInteger()
}

// ReadFloat64 reads any JSON number
func (d *Decoder) ReadFloat64() (float64, error) {
	return NewNumberDecoder(d).DecodeFloat64()
}

// ReadCode reads one JSON integer into a coded-value type
func (d *Decoder) ReadCode(dst schema.CodeUnmarshaler) error {
	return NewNumberDecoder(d).DecodeCode(dst)
}

// ReadRawObject captures the next JSON object verbatim
func (d *Decoder) ReadRawObject() ([]byte, error) {
	return NewRawDecoder(d).DecodeRawObject()
}

// ReadObject iterates the members of a JSON object. fn must consume exactly
// one value for every member it is called with.
func (d *Decoder) ReadObject(fn func(name string) error) error {
	if k := d.Next(); k != KindObject {
		return d.unexpected("object", k)
	}
	var cbErr error
	ok := d.iter.ReadObjectCB(func(_ *jsoniter.Iterator, name string) bool {
		if err := d.syntaxErr(); err != nil {
			cbErr = err
			return false
		}
		cbErr = fn(name)
		return cbErr == nil
	})
	if cbErr != nil {
		return cbErr
	}
	if err := d.syntaxErr(); err != nil {
		return err
	}
	if !ok {
		return &SyntaxError{Msg: "unterminated object"}
	}
	return nil
}

// ReadArray iterates the elements of a JSON array. fn must consume exactly
// one value per call.
func (d *Decoder) ReadArray(fn func(i int) error) error {
	if k := d.Next(); k != KindArray {
		return d.unexpected("array", k)
	}
	var cbErr error
	i := 0
	ok := d.iter.ReadArrayCB(func(*jsoniter.Iterator) bool {
		if k := d.Next(); k == KindInvalid {
			cbErr = d.unexpected("value", k)
			return false
		}
		cbErr = fn(i)
		i++
		return cbErr == nil
	})
	if cbErr != nil {
		return cbErr
	}
	if err := d.syntaxErr(); err != nil {
		return err
	}
	if !ok {
		return &SyntaxError{Msg: "unterminated array"}
	}
	return nil
}

// Skip consumes the next value whatever its kind
func (d *Decoder) Skip() error {
	if k := d.Next(); k == KindInvalid {
		return d.unexpected("value", k)
	}
	d.iter.Skip()
	return d.syntaxErr()
}

// Finish verifies that nothing but whitespace follows the decoded value
func (d *Decoder) Finish() error {
	if err := d.syntaxErr(); err != nil {
		return err
	}
	if d.iter.WhatIsNext() != jsoniter.InvalidValue || d.iter.Error == nil {
		return &SyntaxError{Msg: "trailing data after document"}
	}
	return nil
}

// ===== CODED VALUE HELPERS =====

// UnmarshalCode decodes a standalone JSON integer into dst. Coded-value types
// use it to implement json.Unmarshaler.
func UnmarshalCode(data []byte, dst schema.CodeUnmarshaler) error {
	d := NewDecoder(data)
	defer d.Release()
	if err := d.ReadCode(dst); err != nil {
		return err
	}
	return d.Finish()
}

// MarshalCode renders the wire integer of v. Coded-value types use it to
// implement json.Marshaler.
func MarshalCode(v schema.CodeMarshaler) []byte {
	e := NewEncoder()
	defer e.Release()
	NewNumberEncoder(e).EncodeCode(v)
	out, _ := e.Bytes()
	return out
}

package wire

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/anirudhraja/openrtb/registry"
	"github.com/anirudhraja/openrtb/schema"
)

// Encoder pushes JSON values into an output buffer
type Encoder struct {
	stream   *jsoniter.Stream
	registry *registry.Registry
	frames   []frame
}

// frame tracks one open object or array
type frame struct {
	array bool
	count int
}

// NewEncoder creates a new JSON encoder. Call Release when done.
func NewEncoder() *Encoder {
	return &Encoder{
		stream: JSON.BorrowStream(nil),
	}
}

// NewEncoderWithRegistry creates an encoder with schema registry
func NewEncoderWithRegistry(registry *registry.Registry) *Encoder {
	return &Encoder{
		stream:   JSON.BorrowStream(nil),
		registry: registry,
	}
}

// Release returns the underlying stream to its pool. Slices returned by
// Bytes stay valid.
func (e *Encoder) Release() {
	if e.stream != nil {
		JSON.ReturnStream(e.stream)
		e.stream = nil
	}
}

// Bytes returns a copy of the encoded bytes
func (e *Encoder) Bytes() ([]byte, error) {
	if e.stream.Error != nil {
		return nil, e.stream.Error
	}
	if len(e.frames) != 0 {
		return nil, fmt.Errorf("encoder: %d unclosed containers", len(e.frames))
	}
	buf := e.stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.stream.Reset(nil)
	e.frames = e.frames[:0]
}

// beforeValue writes the separator needed ahead of an array element
func (e *Encoder) beforeValue() {
	if len(e.frames) == 0 {
		return
	}
	top := &e.frames[len(e.frames)-1]
	if !top.array {
		return
	}
	if top.count > 0 {
		e.stream.WriteMore()
	}
	top.count++
}

// BeginObject opens a JSON object
func (e *Encoder) BeginObject() {
	e.beforeValue()
	e.stream.WriteObjectStart()
	e.frames = append(e.frames, frame{})
}

// Field writes a member name inside the current object
func (e *Encoder) Field(name string) {
	top := &e.frames[len(e.frames)-1]
	if top.count > 0 {
		e.stream.WriteMore()
	}
	top.count++
	e.stream.WriteObjectField(name)
}

// EndObject closes the current object
func (e *Encoder) EndObject() {
	e.frames = e.frames[:len(e.frames)-1]
	e.stream.WriteObjectEnd()
}

// BeginArray opens a JSON array
func (e *Encoder) BeginArray() {
	e.beforeValue()
	e.stream.WriteArrayStart()
	e.frames = append(e.frames, frame{array: true})
}

// EndArray closes the current array
func (e *Encoder) EndArray() {
	e.frames = e.frames[:len(e.frames)-1]
	e.stream.WriteArrayEnd()
}

// String writes a JSON string
func (e *Encoder) String(s string) { NewRawEncoder(e).EncodeString(s) }

// Int32 writes a 32-bit integer
func (e *Encoder) Int32(v int32) { NewNumberEncoder(e).EncodeInt32(v) }

// Int64 writes a 64-bit integer
func (e *Encoder) Int64(v int64) { NewNumberEncoder(e).EncodeInt64(v) }

// Float64 writes a number
func (e *Encoder) Float64(v float64) { NewNumberEncoder(e).EncodeFloat64(v) }

// Code writes the wire integer of a coded value
func (e *Encoder) Code(v schema.CodeMarshaler) { NewNumberEncoder(e).EncodeCode(v) }

// Raw writes a captured JSON object verbatim
func (e *Encoder) Raw(raw []byte) { NewRawEncoder(e).EncodeRawObject(raw) }

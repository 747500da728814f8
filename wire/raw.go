package wire

import (
	"bytes"
	"encoding/json"
)

// RawDecoder handles string and verbatim object decoding operations
type RawDecoder struct {
	decoder *Decoder
}

// RawEncoder handles string and verbatim object encoding operations
type RawEncoder struct {
	encoder *Encoder
}

// NewRawDecoder creates a new raw decoder
func NewRawDecoder(d *Decoder) *RawDecoder {
	return &RawDecoder{decoder: d}
}

// NewRawEncoder creates a new raw encoder
func NewRawEncoder(e *Encoder) *RawEncoder {
	return &RawEncoder{encoder: e}
}

// DECODER METHODS

// DecodeString reads a JSON string with escapes resolved
func (rd *RawDecoder) DecodeString() (string, error) {
	d := rd.decoder
	if k := d.Next(); k != KindString {
		return "", d.unexpected("string", k)
	}
	s := d.iter.ReadString()
	if err := d.syntaxErr(); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeRawObject captures the next JSON object verbatim. The returned slice
// is a copy and does not alias the input.
func (rd *RawDecoder) DecodeRawObject() ([]byte, error) {
	d := rd.decoder
	if k := d.Next(); k != KindObject {
		return nil, d.unexpected("object", k)
	}
	raw := d.iter.SkipAndReturnBytes()
	if err := d.syntaxErr(); err != nil {
		return nil, err
	}
	return raw, nil
}

// ENCODER METHODS

// EncodeString writes a JSON string. HTML characters are not escaped.
func (re *RawEncoder) EncodeString(s string) {
	re.encoder.beforeValue()
	re.encoder.stream.WriteString(s)
}

// EncodeRawObject writes a previously captured object verbatim. An empty
// capture is written as {}. Bytes that are not a single JSON object are
// recorded as an encoder error instead of being written.
func (re *RawEncoder) EncodeRawObject(raw []byte) {
	re.encoder.beforeValue()
	if len(raw) == 0 {
		re.encoder.stream.WriteEmptyObject()
		return
	}
	if !json.Valid(raw) || !bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("{")) {
		if re.encoder.stream.Error == nil {
			re.encoder.stream.Error = &SyntaxError{Msg: "raw object is not a JSON object"}
		}
		return
	}
	re.encoder.stream.Write(raw)
}

package wire

import (
	"errors"
	"math"
	"strconv"

	"github.com/anirudhraja/openrtb/schema"
)

// NumberDecoder handles JSON number decoding operations
type NumberDecoder struct {
	decoder *Decoder
}

// NumberEncoder handles JSON number encoding operations
type NumberEncoder struct {
	encoder *Encoder
}

// NewNumberDecoder creates a new number decoder
func NewNumberDecoder(d *Decoder) *NumberDecoder {
	return &NumberDecoder{decoder: d}
}

// NewNumberEncoder creates a new number encoder
func NewNumberEncoder(e *Encoder) *NumberEncoder {
	return &NumberEncoder{encoder: e}
}

// DECODER METHODS

// readLiteral reads the next value as a number literal and checks it against
// the JSON number grammar. integral reports the absence of fraction and
// exponent parts.
func (nd *NumberDecoder) readLiteral(expected string) (lit string, integral bool, err error) {
	d := nd.decoder
	if k := d.Next(); k != KindNumber {
		return "", false, d.unexpected(expected, k)
	}
	lit = string(d.iter.ReadNumber())
	if err := d.syntaxErr(); err != nil {
		return "", false, err
	}
	valid, integral := scanNumber(lit)
	if !valid {
		return "", false, &SyntaxError{Msg: "invalid number literal " + strconv.Quote(lit)}
	}
	return lit, integral, nil
}

// DecodeInteger reads a JSON integer. Numbers with a fraction or exponent
// part are a type mismatch even when their value is integral.
func (nd *NumberDecoder) DecodeInteger() (int64, error) {
	v, overflow, err := nd.readInteger()
	if err != nil {
		return 0, err
	}
	if overflow != "" {
		return 0, &TypeMismatchError{Expected: "64-bit integer", Got: "number " + overflow}
	}
	return v, nil
}

// readInteger reads an integral literal. When it does not fit in 64 bits, v
// is clamped to the nearest bound and the literal is returned alongside.
func (nd *NumberDecoder) readInteger() (v int64, overflow string, err error) {
	lit, integral, err := nd.readLiteral("integer")
	if err != nil {
		return 0, "", err
	}
	if !integral {
		return 0, "", &TypeMismatchError{Expected: "integer", Got: "number " + lit}
	}
	v, err = strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if lit[0] == '-' {
			return math.MinInt64, lit, nil
		}
		return math.MaxInt64, lit, nil
	}
	return v, "", nil
}

// DecodeInt32 reads a JSON integer that must fit in 32 bits.
func (nd *NumberDecoder) DecodeInt32() (int32, error) {
	v, err := nd.DecodeInteger()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &TypeMismatchError{Expected: "32-bit integer", Got: "number " + strconv.FormatInt(v, 10)}
	}
	return int32(v), nil
}

// DecodeFloat64 reads any JSON number as a float64.
func (nd *NumberDecoder) DecodeFloat64() (float64, error) {
	lit, _, err := nd.readLiteral("number")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &TypeMismatchError{Expected: "64-bit float", Got: "number " + lit}
	}
	return v, nil
}

// DecodeCode reads a JSON integer and hands it to a coded-value type. An
// integer beyond 64 bits reaches the type clamped, so it fails with the
// type's own invalid value error, reported with the literal as written.
func (nd *NumberDecoder) DecodeCode(dst schema.CodeUnmarshaler) error {
	v, overflow, err := nd.readInteger()
	if err != nil {
		return err
	}
	err = dst.UnmarshalCode(v)
	var ive *InvalidValueError
	if overflow != "" && errors.As(err, &ive) {
		ive.Literal = overflow
	}
	return err
}

// scanNumber checks s against the JSON number grammar:
// -? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func scanNumber(s string) (valid, integral bool) {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		for i < n && isDigit(s[i]) {
			i++
		}
	default:
		return false, false
	}
	integral = true
	if i < n && s[i] == '.' {
		integral = false
		i++
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false, false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		integral = false
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false, false
		}
	}
	return i == n, integral
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ENCODER METHODS

// EncodeInt32 writes a 32-bit integer
func (ne *NumberEncoder) EncodeInt32(v int32) {
	ne.encoder.beforeValue()
	ne.encoder.stream.WriteInt32(v)
}

// EncodeInt64 writes a 64-bit integer
func (ne *NumberEncoder) EncodeInt64(v int64) {
	ne.encoder.beforeValue()
	ne.encoder.stream.WriteInt64(v)
}

// EncodeFloat64 writes a float in the shortest form that round-trips.
// NaN and infinities are recorded as an encoder error.
func (ne *NumberEncoder) EncodeFloat64(v float64) {
	ne.encoder.beforeValue()
	ne.encoder.stream.WriteFloat64(v)
}

// EncodeCode writes the wire integer of a coded value
func (ne *NumberEncoder) EncodeCode(v schema.CodeMarshaler) {
	ne.EncodeInt32(v.MarshalCode())
}

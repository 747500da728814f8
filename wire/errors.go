package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every decode failure matches exactly one of these with errors.Is.
var (
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidEnumeratedValue = errors.New("invalid enumerated value")
	ErrTypeMismatch           = errors.New("type mismatch")
	ErrEmptyRequiredSequence  = errors.New("empty required sequence")
	ErrDuplicateField         = errors.New("duplicate field")
	ErrSyntax                 = errors.New("malformed json")
)

// FieldError represents a decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["imp", "[0]", "video", "startdelay"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at path %s: %v", e.Path(), e.Err)
}

// Path renders the field path with array indices attached to their member,
// e.g. "imp[0].video.startdelay".
func (e *FieldError) Path() string {
	var b strings.Builder
	for i, seg := range e.FieldPath {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField wraps an error with a field name
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}

// wrapWithIndex wraps an error with a sequence position
func wrapWithIndex(err error, i int) error {
	return wrapWithField(err, fmt.Sprintf("[%d]", i))
}

// PathOf returns the rendered field path of err, or "" when err carries none.
func PathOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Path()
	}
	return ""
}

// ===== VALUE ERRORS =====

// InvalidValueError reports a wire integer outside a coded type's legal set.
type InvalidValueError struct {
	Type     string // coded type name, e.g. "AuctionType"
	Value    int64  // the integer as it appeared on the wire
	Expected string // legal forms, e.g. "1 or 2 or greater than 500"
	Literal  string // set when the wire integer does not fit in Value
}

func (e *InvalidValueError) Error() string {
	if e.Literal != "" {
		return fmt.Sprintf("invalid value: %s, expected %s", e.Literal, e.Expected)
	}
	return fmt.Sprintf("invalid value: %d, expected %s", e.Value, e.Expected)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidEnumeratedValue
}

// TypeMismatchError reports a JSON value of the wrong kind.
type TypeMismatchError struct {
	Expected string // "integer"
	Got      string // "string", "number 1.5"
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expected)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// SyntaxError reports input that is not well-formed JSON.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "malformed json: " + e.Msg
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func newTypeMismatch(expected string, got Kind) error {
	return &TypeMismatchError{Expected: expected, Got: got.String()}
}

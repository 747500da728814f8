package wire

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anirudhraja/openrtb/registry"
)

// testLevel is a minimal coded type accepting 0 to 3
type testLevel struct{ v int32 }

func (l testLevel) MarshalCode() int32 { return l.v }

func (l *testLevel) UnmarshalCode(v int64) error {
	if v < 0 || v > 3 {
		return &InvalidValueError{Type: "testLevel", Value: v, Expected: "0 to 3"}
	}
	l.v = int32(v)
	return nil
}

type testInner struct {
	ID    string     `json:"id" rtb:"required"`
	Level *testLevel `json:"level,omitempty"`
	Price *float64   `json:"price,omitempty"`
}

type testDoc struct {
	ID    string      `json:"id" rtb:"required"`
	Items []testInner `json:"items" rtb:"required,nonempty"`
	Count *int32      `json:"count,omitempty"`
	Big   *int64      `json:"big,omitempty"`
	Tags  []string    `json:"tags,omitempty"`
	Codes []testLevel `json:"codes,omitempty"`
	Inner *testInner  `json:"inner,omitempty"`
	Ext   []byte      `json:"ext,omitempty"`
}

func decodeDoc(t *testing.T, input string, config Config) (*testDoc, error) {
	t.Helper()
	var doc testDoc
	err := DecodeMessage([]byte(input), &doc, registry.NewRegistry(), config)
	return &doc, err
}

func TestMessage_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "all members",
			input: `{"id":"r1","items":[{"id":"a","level":2,"price":1.5}],"count":0,"big":9007199254740993,"tags":["x","<y>"],"codes":[0,3,1],"inner":{"id":"n"},"ext":{"b":[1,2],"a":{"z":null}}}`,
		},
		{
			name:  "default document",
			input: `{"id":"","items":[]}`,
		},
		{
			name:  "present empty optional sequence",
			input: `{"id":"x","items":[],"tags":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeDoc(t, tt.input, Config{})
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			out, err := EncodeMessage(doc, registry.NewRegistry())
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if string(out) != tt.input {
				t.Errorf("round trip mismatch\nwant %s\ngot  %s", tt.input, out)
			}
		})
	}
}

func TestMessage_DecodeValues(t *testing.T) {
	doc, err := decodeDoc(t, `{"items":[{"id":"a","level":1}],"id":"r","count":7,"codes":[2]}`, Config{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	price := (*float64)(nil)
	want := testDoc{
		ID:    "r",
		Items: []testInner{{ID: "a", Level: &testLevel{v: 1}, Price: price}},
		Count: func() *int32 { v := int32(7); return &v }(),
		Codes: []testLevel{{v: 2}},
	}
	if !reflect.DeepEqual(*doc, want) {
		t.Errorf("expected %+v, got %+v", want, *doc)
	}
}

func TestMessage_EncodeZeroValue(t *testing.T) {
	out, err := EncodeMessage(testDoc{}, nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(out) != `{"id":"","items":[]}` {
		t.Errorf("unexpected encoding %s", out)
	}
}

func TestMessage_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		config   Config
		wantErr  error
		wantPath string
	}{
		{
			name:     "empty object",
			input:    `{}`,
			wantErr:  ErrMissingRequiredField,
			wantPath: "id",
		},
		{
			name:     "missing sequence",
			input:    `{"id":"x"}`,
			wantErr:  ErrMissingRequiredField,
			wantPath: "items",
		},
		{
			name:     "strict missing sequence",
			input:    `{"id":"x"}`,
			config:   Config{RequireNonEmpty: true},
			wantErr:  ErrEmptyRequiredSequence,
			wantPath: "items",
		},
		{
			name:     "strict empty sequence",
			input:    `{"id":"x","items":[]}`,
			config:   Config{RequireNonEmpty: true},
			wantErr:  ErrEmptyRequiredSequence,
			wantPath: "items",
		},
		{
			name:     "nested missing member",
			input:    `{"id":"x","items":[{"id":"a"},{"level":1}]}`,
			wantErr:  ErrMissingRequiredField,
			wantPath: "items[1].id",
		},
		{
			name:     "nested invalid code",
			input:    `{"id":"x","items":[{"id":"a"},{"id":"b","level":7}]}`,
			wantErr:  ErrInvalidEnumeratedValue,
			wantPath: "items[1].level",
		},
		{
			name:     "invalid code in sequence",
			input:    `{"id":"x","items":[],"codes":[1,-1]}`,
			wantErr:  ErrInvalidEnumeratedValue,
			wantPath: "codes[1]",
		},
		{
			name:     "string where integer expected",
			input:    `{"id":"x","items":[],"count":"3"}`,
			wantErr:  ErrTypeMismatch,
			wantPath: "count",
		},
		{
			name:     "fractional integer",
			input:    `{"id":"x","items":[],"count":3.0}`,
			wantErr:  ErrTypeMismatch,
			wantPath: "count",
		},
		{
			name:     "null required",
			input:    `{"id":null,"items":[]}`,
			wantErr:  ErrTypeMismatch,
			wantPath: "id",
		},
		{
			name:     "null element",
			input:    `{"id":"x","items":[null]}`,
			wantErr:  ErrTypeMismatch,
			wantPath: "items[0]",
		},
		{
			name:     "ext not an object",
			input:    `{"id":"x","items":[],"ext":[1]}`,
			wantErr:  ErrTypeMismatch,
			wantPath: "ext",
		},
		{
			name:     "duplicate member",
			input:    `{"id":"x","id":"y","items":[]}`,
			wantErr:  ErrDuplicateField,
			wantPath: "id",
		},
		{
			name:    "not an object",
			input:   `["id"]`,
			wantErr: ErrTypeMismatch,
		},
		{
			name:    "truncated",
			input:   `{"id":"x","items":[`,
			wantErr: ErrSyntax,
		},
		{
			name:    "truncated after element",
			input:   `{"id":"x","items":[{"id":"a"},`,
			wantErr: ErrSyntax,
		},
		{
			name:    "null member name",
			input:   `{"id":"x","items":[],null:1}`,
			wantErr: ErrSyntax,
		},
		{
			name:    "null member name in ext",
			input:   `{"id":"x","items":[],"ext":{"a":1,null:2}}`,
			wantErr: ErrSyntax,
		},
		{
			name:    "null member name in skipped member",
			input:   `{"id":"x","items":[],"future":{"a":{"b":1,null:2}}}`,
			wantErr: ErrSyntax,
		},
		{
			name:     "code beyond 64 bits",
			input:    `{"id":"x","items":[{"id":"a","level":99999999999999999999}]}`,
			wantErr:  ErrInvalidEnumeratedValue,
			wantPath: "items[0].level",
		},
		{
			name:    "trailing data",
			input:   `{"id":"x","items":[]} {}`,
			wantErr: ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDoc(t, tt.input, tt.config)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if got := PathOf(err); got != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, got)
			}
		})
	}
}

func TestMessage_UnknownAndNullMembers(t *testing.T) {
	input := `{"zzz":{"a":[1,{"b":"c"}]},"id":"x","count":null,"items":[],"future":[true,false,null],"inner":null}`
	doc, err := decodeDoc(t, input, Config{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.Count != nil || doc.Inner != nil {
		t.Errorf("null optional members should be absent: %+v", doc)
	}
	out, err := EncodeMessage(doc, nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(out) != `{"id":"x","items":[]}` {
		t.Errorf("unexpected re-encoding %s", out)
	}
}

func TestMessage_EncodeMalformedExt(t *testing.T) {
	for _, ext := range []string{`{"a":1,null:2}`, `[1]`, `{"a":`} {
		doc := testDoc{ID: "x", Items: []testInner{}, Ext: []byte(ext)}
		if out, err := EncodeMessage(&doc, registry.NewRegistry()); !errors.Is(err, ErrSyntax) {
			t.Errorf("ext %s: expected syntax error, got %s, %v", ext, out, err)
		}
	}
}

func TestMessage_EmptyMemberName(t *testing.T) {
	doc, err := decodeDoc(t, `{"id":"x","":1,"items":[],"ext":{"":2}}`, Config{})
	if err != nil {
		t.Fatalf("an empty member name is legal JSON: %v", err)
	}
	out, err := EncodeMessage(doc, registry.NewRegistry())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(out) != `{"id":"x","items":[],"ext":{"":2}}` {
		t.Errorf("unexpected re-encoding %s", out)
	}
}

func TestMessage_NoPartialDocument(t *testing.T) {
	doc := testDoc{ID: "keep"}
	err := DecodeMessage([]byte(`{"id":"new","items":[{"id":"a","level":9}]}`), &doc, nil, Config{})
	if err == nil {
		t.Fatal("expected error")
	}
	if doc.ID != "keep" || doc.Items != nil {
		t.Errorf("target modified on failure: %+v", doc)
	}
}

func TestMessage_BadTargets(t *testing.T) {
	var doc testDoc
	if err := DecodeMessage([]byte(`{}`), doc, nil, Config{}); err == nil {
		t.Error("expected error for non-pointer target")
	}
	if err := DecodeMessage([]byte(`{}`), (*testDoc)(nil), nil, Config{}); err == nil {
		t.Error("expected error for nil pointer target")
	}
	if _, err := EncodeMessage(42, nil); err == nil {
		t.Error("expected error for non-struct source")
	}
}

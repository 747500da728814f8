package openrtb

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/anirudhraja/openrtb/wire"
)

func TestExt_Get(t *testing.T) {
	ext := Ext(`{"prebid":{"debug":true,"bidders":["a","b"]},"gdpr":1}`)

	if !ext.Get("prebid", "debug").ToBool() {
		t.Error("expected prebid.debug to be true")
	}
	if got := ext.Get("prebid", "bidders", 1).ToString(); got != "b" {
		t.Errorf("expected bidders[1] = b, got %q", got)
	}
	if got := ext.Get("gdpr").ToInt(); got != 1 {
		t.Errorf("expected gdpr = 1, got %d", got)
	}
	if ext.Get("missing").LastError() == nil {
		t.Error("missing path should report an error")
	}
	if Ext(nil).Get("a").LastError() == nil {
		t.Error("absent extension should report an error")
	}
}

func TestExt_Struct(t *testing.T) {
	ext := Ext(`{"b":"x","a":1,"nested":{"list":[true,null]}}`)

	s, err := ext.Struct()
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if got := s.Fields["a"].GetNumberValue(); got != 1 {
		t.Errorf("expected a = 1, got %v", got)
	}
	if got := s.Fields["nested"].GetStructValue().Fields["list"].GetListValue().Values[0].GetBoolValue(); !got {
		t.Error("expected nested.list[0] = true")
	}

	back, err := ExtFromStruct(s)
	if err != nil {
		t.Fatalf("ExtFromStruct: %v", err)
	}
	want := `{"a":1,"b":"x","nested":{"list":[true,null]}}`
	if string(back) != want {
		t.Errorf("expected %s, got %s", want, back)
	}

	if s, err := Ext(nil).Struct(); s != nil || err != nil {
		t.Errorf("absent extension should give nil, got %v, %v", s, err)
	}
}

func TestExtFromStruct_Built(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{"gdpr": 1, "consent": "BOJ"})
	if err != nil {
		t.Fatal(err)
	}
	ext, err := ExtFromStruct(s)
	if err != nil {
		t.Fatalf("ExtFromStruct: %v", err)
	}
	if string(ext) != `{"consent":"BOJ","gdpr":1}` {
		t.Errorf("unexpected ext %s", ext)
	}
}

func TestExt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ext
		wantErr error
	}{
		{name: "object", input: `{"a":[1,2]}`, want: Ext(`{"a":[1,2]}`)},
		{name: "empty object", input: `{}`, want: Ext(`{}`)},
		{name: "null", input: `null`, want: nil},
		{name: "array", input: `[1]`, wantErr: wire.ErrTypeMismatch},
		{name: "string", input: `"x"`, wantErr: wire.ErrTypeMismatch},
		{name: "truncated", input: `{"a":`, wantErr: wire.ErrSyntax},
		{name: "trailing", input: `{} {}`, wantErr: wire.ErrSyntax},
		{name: "null member name", input: `{"a":1,null:2}`, wantErr: wire.ErrSyntax},
		{name: "nested null member name", input: `{"a":{"b":1,null:2}}`, wantErr: wire.ErrSyntax},
		{name: "empty member name", input: `{"":1}`, want: Ext(`{"":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := Ext(`{"old":1}`)
			err := ext.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(ext) != string(tt.want) || (tt.want == nil) != (ext == nil) {
				t.Errorf("expected %q, got %q", tt.want, ext)
			}
		})
	}
}

func TestExt_MarshalJSON(t *testing.T) {
	tests := []struct {
		ext  Ext
		want string
	}{
		{ext: nil, want: "null"},
		{ext: Ext{}, want: "{}"},
		{ext: Ext(`{"a":1}`), want: `{"a":1}`},
	}
	for _, tt := range tests {
		got, err := tt.ext.MarshalJSON()
		if err != nil || string(got) != tt.want {
			t.Errorf("MarshalJSON(%q) = %s, %v; want %s", tt.ext, got, err, tt.want)
		}
	}

	for _, bad := range []Ext{Ext(`{"a":1,null:2}`), Ext(`[1]`), Ext(`{"a":`)} {
		if got, err := bad.MarshalJSON(); !errors.Is(err, wire.ErrSyntax) {
			t.Errorf("MarshalJSON(%q) = %s, %v; want syntax error", bad, got, err)
		}
	}
}

func TestBidRequest_MalformedExt(t *testing.T) {
	var req BidRequest
	err := Unmarshal([]byte(`{"id":"x","imp":[],"ext":{"a":1,null:2}}`), &req)
	if !errors.Is(err, wire.ErrSyntax) {
		t.Errorf("decode: expected syntax error, got %v", err)
	}

	req = BidRequest{ID: "x", Imp: []Imp{}, Ext: Ext(`{"a":1,null:2}`)}
	if out, err := Marshal(&req); !errors.Is(err, wire.ErrSyntax) {
		t.Errorf("encode: expected syntax error, got %s, %v", out, err)
	}
}

package openrtb

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/anirudhraja/openrtb/wire"
)

// Ext holds exchange-specific extensions. It is a JSON object captured
// verbatim on decode and written back unchanged on encode; nil means absent.
type Ext []byte

// Get looks up a value inside the extension object, e.g.
// ext.Get("prebid", "bidder", 0). A missing path yields an Any whose
// LastError is set.
func (e Ext) Get(path ...interface{}) jsoniter.Any {
	if len(e) == 0 {
		return wire.JSON.Get([]byte("{}"), path...)
	}
	return wire.JSON.Get(e, path...)
}

// Struct converts the extension to a protobuf Struct for consumers that
// pass extensions over gRPC. Numbers become float64 values.
func (e Ext) Struct() (*structpb.Struct, error) {
	if e == nil {
		return nil, nil
	}
	var m map[string]interface{}
	if err := wire.JSON.Unmarshal(e, &m); err != nil {
		return nil, fmt.Errorf("ext: %w", err)
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("ext: %w", err)
	}
	return s, nil
}

// ExtFromStruct renders a protobuf Struct as an extension object with keys
// sorted.
func ExtFromStruct(s *structpb.Struct) (Ext, error) {
	if s == nil {
		return nil, nil
	}
	data, err := wire.JSON.Marshal(s.AsMap())
	if err != nil {
		return nil, fmt.Errorf("ext: %w", err)
	}
	return Ext(data), nil
}

// MarshalJSON writes the captured object, or null when absent. Bytes that
// are not a JSON object are an error.
func (e Ext) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	enc := wire.NewEncoder()
	defer enc.Release()
	enc.Raw(e)
	return enc.Bytes()
}

// UnmarshalJSON captures a JSON object. null clears the extension; any
// other kind is a type mismatch.
func (e *Ext) UnmarshalJSON(data []byte) error {
	d := wire.NewDecoder(data)
	defer d.Release()

	if ok, err := d.ReadNull(); err != nil {
		return err
	} else if ok {
		*e = nil
		return d.Finish()
	}
	raw, err := d.ReadRawObject()
	if err != nil {
		return err
	}
	if err := d.Finish(); err != nil {
		return err
	}
	*e = raw
	return nil
}

// Ptr returns a pointer to v, for filling optional members.
func Ptr[T any](v T) *T {
	return &v
}

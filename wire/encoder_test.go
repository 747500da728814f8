package wire

import (
	"math"
	"testing"
)

func TestEncoder_Containers(t *testing.T) {
	e := NewEncoder()
	defer e.Release()

	e.BeginObject()
	e.Field("a")
	e.Int32(1)
	e.Field("b")
	e.BeginArray()
	e.String("x")
	e.String("<y>&")
	e.BeginObject()
	e.EndObject()
	e.BeginArray()
	e.EndArray()
	e.EndArray()
	e.Field("c")
	e.Raw([]byte(`{"k":[1, 2]}`))
	e.Field("d")
	e.Int64(-9007199254740993)
	e.EndObject()

	got, err := e.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":1,"b":["x","<y>&",{},[]],"c":{"k":[1, 2]},"d":-9007199254740993}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEncoder_Floats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{1, "1"},
		{-12.75, "-12.75"},
		{1.1, "1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e := NewEncoder()
			defer e.Release()
			e.Float64(tt.in)
			got, err := e.Bytes()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEncoder_NaNIsError(t *testing.T) {
	e := NewEncoder()
	defer e.Release()
	e.Float64(math.NaN())
	if _, err := e.Bytes(); err == nil {
		t.Error("expected error for NaN")
	}
}

func TestEncoder_Unclosed(t *testing.T) {
	e := NewEncoder()
	defer e.Release()
	e.BeginObject()
	if _, err := e.Bytes(); err == nil {
		t.Error("expected error for unclosed object")
	}
}

func TestEncoder_Reset(t *testing.T) {
	e := NewEncoder()
	defer e.Release()
	e.String("first")
	e.Reset()
	e.BeginArray()
	e.Int32(1)
	e.Int32(2)
	e.EndArray()
	got, err := e.Bytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "[1,2]" {
		t.Errorf("expected [1,2], got %s", got)
	}
}

func TestMarshalCodeHelpers(t *testing.T) {
	l := testLevel{v: 3}
	if got := string(MarshalCode(l)); got != "3" {
		t.Errorf("expected 3, got %s", got)
	}

	var out testLevel
	if err := UnmarshalCode([]byte(" 2 "), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.v != 2 {
		t.Errorf("expected 2, got %d", out.v)
	}
	if err := UnmarshalCode([]byte("2 3"), &out); err == nil {
		t.Error("expected trailing data error")
	}
}

// Package enum implements the integer-coded values of OpenRTB 2.5: the
// closed lists of section 5 and the fields whose integer carries sentinels
// or an open-ended payload range (auction type, start delay, extended ad
// duration).
package enum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anirudhraja/openrtb/wire"
)

// ===== CODED SHAPES =====

// rule maps one reserved wire integer to a variant kind.
type rule[K comparable] struct {
	code int32
	kind K
}

// shape describes how a coded type maps wire integers to variants: reserved
// codes are checked in declaration order, then the open range
// floor < v <= MaxInt32 when open is set.
type shape[K comparable] struct {
	name     string
	fixed    []rule[K]
	open     bool
	floor    int32
	openKind K
	expected string
}

func newShape[K comparable](name string, fixed []rule[K]) *shape[K] {
	s := &shape[K]{name: name, fixed: fixed}
	s.expected = s.describe()
	return s
}

func newOpenShape[K comparable](name string, fixed []rule[K], floor int32, openKind K) *shape[K] {
	s := &shape[K]{name: name, fixed: fixed, open: true, floor: floor, openKind: openKind}
	s.expected = s.describe()
	return s
}

// describe renders the legal forms, e.g. "1 or 2 or greater than 500".
func (s *shape[K]) describe() string {
	parts := make([]string, 0, len(s.fixed)+1)
	for _, r := range s.fixed {
		parts = append(parts, strconv.FormatInt(int64(r.code), 10))
	}
	if s.open {
		parts = append(parts, "greater than "+strconv.FormatInt(int64(s.floor), 10))
	}
	return strings.Join(parts, " or ")
}

// decode returns the variant kind for v and, for the open range, its payload.
func (s *shape[K]) decode(v int64) (K, int32, error) {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		c := int32(v)
		for _, r := range s.fixed {
			if r.code == c {
				return r.kind, 0, nil
			}
		}
		if s.open && c > s.floor {
			return s.openKind, c, nil
		}
	}
	var zero K
	return zero, 0, s.invalid(v)
}

// encode is total over the kinds the shape declares.
func (s *shape[K]) encode(kind K, payload int32) int32 {
	if s.open && kind == s.openKind {
		return payload
	}
	for _, r := range s.fixed {
		if r.kind == kind {
			return r.code
		}
	}
	panic(fmt.Sprintf("%s: undeclared variant %v", s.name, kind))
}

// payload validates a value for the open range.
func (s *shape[K]) payload(v int32) error {
	if !s.open || v <= s.floor {
		return s.invalid(int64(v))
	}
	return nil
}

func (s *shape[K]) invalid(v int64) error {
	return &wire.InvalidValueError{Type: s.name, Value: v, Expected: s.expected}
}

// ===== CLOSED RANGES =====

// span describes a plain enumeration: a contiguous range of codes, each
// with a name.
type span[T ~int8] struct {
	name     string
	lo       T
	names    []string
	expected string
}

func newSpan[T ~int8](name string, lo T, names ...string) *span[T] {
	hi := int64(lo) + int64(len(names)) - 1
	return &span[T]{
		name:     name,
		lo:       lo,
		names:    names,
		expected: fmt.Sprintf("%d to %d", lo, hi),
	}
}

func (s *span[T]) contains(v int64) bool {
	return v >= int64(s.lo) && v < int64(s.lo)+int64(len(s.names))
}

func (s *span[T]) parse(v int64) (T, error) {
	if !s.contains(v) {
		return 0, &wire.InvalidValueError{Type: s.name, Value: v, Expected: s.expected}
	}
	return T(v), nil
}

func (s *span[T]) unmarshal(v int64, dst *T) error {
	t, err := s.parse(v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

func (s *span[T]) format(v T) string {
	if s.contains(int64(v)) {
		return s.names[int64(v)-int64(s.lo)]
	}
	return s.name + "(" + strconv.FormatInt(int64(v), 10) + ")"
}

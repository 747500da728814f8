package registry

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/anirudhraja/openrtb/schema"
)

var (
	codeMarshalerType   = reflect.TypeOf((*schema.CodeMarshaler)(nil)).Elem()
	codeUnmarshalerType = reflect.TypeOf((*schema.CodeUnmarshaler)(nil)).Elem()
)

// Registry stores the descriptors of aggregate record types. Descriptors are
// built from struct declarations on first use and cached; a Registry is safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	messages map[reflect.Type]*schema.Message
	names    map[string]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[reflect.Type]*schema.Message),
		names:    make(map[string]reflect.Type),
	}
}

// Register builds the descriptor for the struct type of v (a struct value or
// a pointer to one) and every message type reachable from it, and makes them
// available by name.
func (r *Registry) Register(v interface{}) error {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("register: %T is not a struct", v)
	}
	_, err := r.MessageFor(t)
	return err
}

// MessageFor returns the descriptor for struct type t, building it if needed.
func (r *Registry) MessageFor(t reflect.Type) (*schema.Message, error) {
	r.mu.RLock()
	msg, ok := r.messages[t]
	r.mu.RUnlock()
	if ok {
		return msg, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.build(t, make(map[reflect.Type]bool))
}

// build must be called with r.mu held.
func (r *Registry) build(t reflect.Type, visiting map[reflect.Type]bool) (*schema.Message, error) {
	if msg, ok := r.messages[t]; ok {
		return msg, nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("message type must be a struct, got %s", t)
	}
	if visiting[t] {
		return nil, fmt.Errorf("message %s contains itself", t.Name())
	}
	visiting[t] = true
	defer delete(visiting, t)

	msg := &schema.Message{Name: t.Name(), GoType: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, ok := memberName(sf)
		if !ok {
			continue
		}
		if msg.Lookup(name) != nil {
			return nil, fmt.Errorf("%s.%s: duplicate member name %q", t.Name(), sf.Name, name)
		}

		field := &schema.Field{Name: name, Index: i, Label: schema.LabelOptional}
		if err := applyPolicy(field, sf.Tag.Get("rtb")); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}

		ft, err := r.classify(sf.Type, visiting)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		field.Type = *ft

		if err := checkPresence(field); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		if field.Label == schema.LabelOptional && ft.Kind == schema.KindRepeated {
			field.Label = schema.LabelRepeated
		}
		msg.Fields = append(msg.Fields, field)
	}
	msg.Seal()

	r.messages[t] = msg
	r.names[msg.Name] = t
	return msg, nil
}

// classify maps a Go type onto a wire field type
func (r *Registry) classify(t reflect.Type, visiting map[reflect.Type]bool) (*schema.FieldType, error) {
	if isCoded(t) {
		return &schema.FieldType{Kind: schema.KindCoded, GoType: t}, nil
	}

	switch t.Kind() {
	case reflect.Ptr:
		elem := t.Elem()
		if elem.Kind() == reflect.Ptr || elem.Kind() == reflect.Slice {
			return nil, fmt.Errorf("unsupported pointer type %s", t)
		}
		ft, err := r.classify(elem, visiting)
		if err != nil {
			return nil, err
		}
		ft.Pointer = true
		return ft, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &schema.FieldType{Kind: schema.KindRaw, GoType: t}, nil
		}
		if t.Elem().Kind() == reflect.Ptr {
			return nil, fmt.Errorf("sequence elements must not be pointers: %s", t)
		}
		elem, err := r.classify(t.Elem(), visiting)
		if err != nil {
			return nil, err
		}
		if elem.Kind == schema.KindRepeated || elem.Kind == schema.KindRaw {
			return nil, fmt.Errorf("nested sequences are not supported: %s", t)
		}
		return &schema.FieldType{Kind: schema.KindRepeated, Elem: elem, GoType: t}, nil
	case reflect.Struct:
		msg, err := r.build(t, visiting)
		if err != nil {
			return nil, err
		}
		return &schema.FieldType{Kind: schema.KindMessage, Message: msg.Name, GoType: t}, nil
	case reflect.String:
		return &schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeString, GoType: t}, nil
	case reflect.Int32:
		return &schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeInt32, GoType: t}, nil
	case reflect.Int64:
		return &schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeInt64, GoType: t}, nil
	case reflect.Float64:
		return &schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeFloat64, GoType: t}, nil
	}
	return nil, fmt.Errorf("unsupported field type %s", t)
}

func isCoded(t reflect.Type) bool {
	return t.Kind() != reflect.Ptr &&
		t.Implements(codeMarshalerType) &&
		reflect.PtrTo(t).Implements(codeUnmarshalerType)
}

// memberName extracts the JSON member name from the json struct tag.
func memberName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name := tag
	if i := strings.IndexByte(tag, ','); i >= 0 {
		name = tag[:i]
	}
	if name == "" {
		name = sf.Name
	}
	return name, true
}

// applyPolicy parses the rtb struct tag: "required" or "required,nonempty".
func applyPolicy(field *schema.Field, tag string) error {
	if tag == "" {
		return nil
	}
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "required":
			field.Label = schema.LabelRequired
		case "nonempty":
			field.NonEmpty = true
		case "":
		default:
			return fmt.Errorf("unknown rtb tag option %q", opt)
		}
	}
	if field.NonEmpty && field.Label != schema.LabelRequired {
		return fmt.Errorf("nonempty requires required")
	}
	return nil
}

// checkPresence makes sure the Go type can express the field's presence policy:
// optional members need a nil state, required members must not have one.
func checkPresence(field *schema.Field) error {
	nilable := field.Type.Pointer || field.Type.Kind == schema.KindRepeated || field.Type.Kind == schema.KindRaw
	if field.NonEmpty && field.Type.Kind != schema.KindRepeated {
		return fmt.Errorf("nonempty applies to sequences only")
	}
	switch field.Label {
	case schema.LabelRequired:
		if field.Type.Pointer {
			return fmt.Errorf("required member %q must not be a pointer", field.Name)
		}
	default:
		if !nilable {
			return fmt.Errorf("optional member %q must be a pointer, slice or raw object", field.Name)
		}
	}
	return nil
}

// GetMessage retrieves a registered message descriptor by name
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.names[name]; ok {
		return r.messages[t], nil
	}
	return nil, fmt.Errorf("message not found: %s", name)
}

// ListMessages returns all registered message names, sorted
func (r *Registry) ListMessages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

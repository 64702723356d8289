package types

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ValueKind identifies which variant a Value holds
type ValueKind int

const (
	// KindString is a plain string value
	KindString ValueKind = iota
	// KindStructured is a nested key/value literal
	KindStructured
	// KindDeferred is a computation invoked on lookup
	KindDeferred
)

// String returns the string representation of the kind
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStructured:
		return "structured"
	case KindDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// DeferredFunc produces a string when a deferred value is shown
type DeferredFunc func(ctx context.Context) (string, error)

// Value is a context entry. Exactly one of the three variants is set,
// selected by Kind.
type Value struct {
	kind       ValueKind
	str        string
	structured cty.Value
	deferred   DeferredFunc
}

// String creates a string value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Structured creates a structured value from a cty value
func Structured(v cty.Value) Value {
	return Value{kind: KindStructured, structured: v}
}

// Deferred creates a value that is computed each time it is resolved
func Deferred(fn DeferredFunc) Value {
	return Value{kind: KindDeferred, deferred: fn}
}

// FromGo converts a native Go value into a Value.
// Strings stay strings, functions become deferred values, cty values are
// kept as-is and everything else goes through its JSON encoding.
func FromGo(v interface{}) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case DeferredFunc:
		return Deferred(val), nil
	case func(context.Context) (string, error):
		return Deferred(val), nil
	case func() string:
		return Deferred(func(context.Context) (string, error) { return val(), nil }), nil
	case cty.Value:
		return Structured(val), nil
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("cannot encode %T: %w", v, err)
	}
	ty, err := ctyjson.ImpliedType(buf)
	if err != nil {
		return Value{}, fmt.Errorf("cannot infer type of %T: %w", v, err)
	}
	cv, err := ctyjson.Unmarshal(buf, ty)
	if err != nil {
		return Value{}, fmt.Errorf("cannot decode %T: %w", v, err)
	}
	return Structured(cv), nil
}

// Kind returns the variant held by the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// Cty returns the value as cty. Strings are wrapped, deferred values
// yield cty.NilVal.
func (v Value) Cty() cty.Value {
	switch v.kind {
	case KindString:
		return cty.StringVal(v.str)
	case KindStructured:
		return v.structured
	default:
		return cty.NilVal
	}
}

// IsObject reports whether the value is a structured object or map literal
func (v Value) IsObject() bool {
	if v.kind != KindStructured || v.structured == cty.NilVal || v.structured.IsNull() {
		return false
	}
	ty := v.structured.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

// Text returns the textual form of a string or structured value.
// Deferred values must be resolved with Resolve instead.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindStructured:
		return ctyText(v.structured)
	default:
		return "", fmt.Errorf("deferred value has no static text")
	}
}

// Resolve produces the substitution text for the value, invoking the
// computation when the value is deferred.
func (v Value) Resolve(ctx context.Context) (string, error) {
	if v.kind == KindDeferred {
		if v.deferred == nil {
			return "", nil
		}
		return v.deferred(ctx)
	}
	return v.Text()
}

// ctyText renders primitives as their string conversion and collections
// as compact JSON.
func ctyText(v cty.Value) (string, error) {
	if v == cty.NilVal || v.IsNull() {
		return "", nil
	}
	if !v.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	if v.Type().IsPrimitiveType() {
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return "", err
		}
		return s.AsString(), nil
	}
	buf, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

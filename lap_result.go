package lap

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindString
)

// Value is one resolved flag: a boolean (store-true flags), a string, or absent.
type Value struct {
	kind Kind
	b    bool
	s    string
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func AbsentValue() Value {
	return Value{}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Bool returns the boolean, or false for non-boolean values.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Str returns the string and whether the value actually holds one.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Any returns the value as bool, string or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	}
	return "<nil>"
}

// Result is the immutable outcome of a parse: one entry per registered flag,
// keyed by the flag name without its leading dashes, in registry order.
type Result struct {
	keys   []string
	values map[string]Value
}

func newResult() *Result {
	return &Result{values: make(map[string]Value)}
}

func (r *Result) set(key string, v Value) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Result) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Result) Len() int {
	return len(r.keys)
}

func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

func (r *Result) Lookup(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Bool reports the value of a store-true flag; unknown keys and non-boolean values are false.
func (r *Result) Bool(key string) bool {
	return r.values[key].Bool()
}

// Text returns the value of a store-value flag and whether one was supplied.
func (r *Result) Text(key string) (string, bool) {
	return r.values[key].Str()
}

// Map copies the result into a plain map of bool, string or nil values.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, key := range r.keys {
		out[key] = r.values[key].Any()
	}
	return out
}

// String renders "Result(key=value, ...)" in insertion order.
func (r *Result) String() string {
	parts := make([]string, 0, len(r.keys))
	for _, key := range r.keys {
		parts = append(parts, key+"="+r.values[key].String())
	}
	return "Result(" + strings.Join(parts, ", ") + ")"
}

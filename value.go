package jsontree

import (
	"strconv"

	"github.com/viant/jsontree/visitor"
)

// Kind identifies which variant of a Value is active.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Field is a single object member.
type Field struct {
	Key   string
	Value *Value
}

// Value is a parsed JSON value. Exactly one variant is active, selected by
// Kind. Values are immutable once returned by Parse; object fields keep
// insertion order, with a duplicate key overwriting the earlier member in
// place.
type Value struct {
	kind    Kind
	text    string
	number  float64
	boolean bool
	items   []*Value
	fields  []Field
}

// Shared scalar singletons; safe because parsed values are read-only.
var (
	nullValue  = &Value{kind: KindNull}
	trueValue  = &Value{kind: KindBoolean, boolean: true}
	falseValue = &Value{kind: KindBoolean}
)

// Kind returns the active variant.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null variant.
func (v *Value) IsNull() bool { return v != nil && v.kind == KindNull }

// Text returns the decoded string payload, or "" for non-string values.
func (v *Value) Text() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.text
}

// Float64 returns the numeric payload, or 0 for non-number values.
func (v *Value) Float64() float64 {
	if v == nil || v.kind != KindNumber {
		return 0
	}
	return v.number
}

// Int returns the numeric payload truncated to int, or 0 for non-number values.
func (v *Value) Int() int {
	return int(v.Float64())
}

// Bool returns the boolean payload, or false for non-boolean values.
func (v *Value) Bool() bool {
	if v == nil || v.kind != KindBoolean {
		return false
	}
	return v.boolean
}

// Len returns the element count of an array or the member count of an object.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	}
	return 0
}

// Item returns the i-th array element, or nil when out of range or not an array.
func (v *Value) Item(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Field returns the member value for key, or nil when absent or not an object.
func (v *Value) Field(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	if i := v.fieldIndex(key); i != -1 {
		return v.fields[i].Value
	}
	return nil
}

func (v *Value) fieldIndex(key string) int {
	for i := range v.fields {
		if v.fields[i].Key == key {
			return i
		}
	}
	return -1
}

// Keys returns object member keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.fields))
	for i := range v.fields {
		keys = append(keys, v.fields[i].Key)
	}
	return keys
}

// Get walks the tree by object keys and decimal array indexes, returning nil
// when any step is missing or of the wrong kind.
func (v *Value) Get(path ...string) *Value {
	for _, step := range path {
		if v == nil {
			return nil
		}
		switch v.kind {
		case KindObject:
			v = v.Field(step)
		case KindArray:
			i, err := strconv.Atoi(step)
			if err != nil {
				return nil
			}
			v = v.Item(i)
		default:
			return nil
		}
	}
	return v
}

// Exists reports whether Get resolves the path.
func (v *Value) Exists(path ...string) bool {
	return v.Get(path...) != nil
}

// Interface converts the tree to plain Go values: map[string]interface{},
// []interface{}, string, float64, bool and nil.
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		return v.number
	case KindBoolean:
		return v.boolean
	case KindObject:
		out := make(map[string]interface{}, len(v.fields))
		for i := range v.fields {
			out[v.fields[i].Key] = v.fields[i].Value.Interface()
		}
		return out
	case KindArray:
		out := make([]interface{}, 0, len(v.items))
		for _, item := range v.items {
			out = append(out, item.Interface())
		}
		return out
	}
	return nil
}

// Equal reports deep structural equality. Object comparison ignores member
// order; array comparison does not.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.text == o.text
	case KindNumber:
		return v.number == o.number
	case KindBoolean:
		return v.boolean == o.boolean
	case KindObject:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			other := o.Field(v.fields[i].Key)
			if other == nil || !v.fields[i].Value.Equal(other) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// Members returns a visitor over object members in insertion order.
func (v *Value) Members() visitor.Visitor[string, *Value] {
	if v == nil || v.kind != KindObject {
		return visitor.PairsVisitorOf[string, *Value](nil)
	}
	pairs := make([]visitor.Pair[string, *Value], 0, len(v.fields))
	for i := range v.fields {
		pairs = append(pairs, visitor.Pair[string, *Value]{Key: v.fields[i].Key, Element: v.fields[i].Value})
	}
	return visitor.PairsVisitorOf(pairs)
}

// Elements returns a visitor over array elements keyed by index.
func (v *Value) Elements() visitor.Visitor[int, *Value] {
	if v == nil || v.kind != KindArray {
		return visitor.SliceVisitorOf[*Value](nil)
	}
	return visitor.SliceVisitorOf(v.items)
}

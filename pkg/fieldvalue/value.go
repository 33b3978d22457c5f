package fieldvalue

import (
	"slices"
	"strings"
	"unicode/utf8"
)

type valueKind uint8

const (
	kindUndefined valueKind = iota
	kindScalar
	kindList
)

// Value is the current value of a field: a scalar, a list of checked values or
// undefined (a radio group with nothing checked, or no inputs at all).
type Value struct {
	kind   valueKind
	scalar string
	list   []string
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// Scalar returns a single-string value.
func Scalar(s string) Value {
	return Value{kind: kindScalar, scalar: s}
}

// List returns a multi-value (checked set) value. A nil list is an empty list.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: kindList, list: items}
}

// IsUndefined reports whether no input supplied a value.
func (v Value) IsUndefined() bool { return v.kind == kindUndefined }

// IsList reports whether v is a checked set.
func (v Value) IsList() bool { return v.kind == kindList }

// Items returns the checked values of a list value, or nil.
func (v Value) Items() []string {
	if v.kind != kindList {
		return nil
	}
	return slices.Clone(v.list)
}

// String renders the value the way string rules see it: lists are joined with
// commas and undefined is the empty string.
func (v Value) String() string {
	switch v.kind {
	case kindScalar:
		return v.scalar
	case kindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// Len is the character count of a scalar or the item count of a list.
func (v Value) Len() int {
	switch v.kind {
	case kindScalar:
		return utf8.RuneCountInString(v.scalar)
	case kindList:
		return len(v.list)
	default:
		return 0
	}
}

// Present reports whether the value counts as filled in: a non-empty scalar
// or a list with at least one item.
func (v Value) Present() bool {
	switch v.kind {
	case kindScalar:
		return v.scalar != ""
	case kindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// Equal compares kind and content exactly, without trimming or case folding.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindScalar:
		return v.scalar == o.scalar
	case kindList:
		return slices.Equal(v.list, o.list)
	default:
		return true
	}
}

// GetValue extracts the value of a field from its bound inputs.
func GetValue(inputs Inputs) Value {
	if len(inputs) == 0 {
		return Undefined()
	}

	switch inputs.Type() {
	case TypeRadio:
		for _, in := range inputs {
			if in.Checked {
				return Scalar(in.Value)
			}
		}
		return Undefined()
	case TypeCheckbox:
		checked := make([]string, 0, len(inputs))
		for _, in := range inputs {
			if in.Checked {
				checked = append(checked, in.Value)
			}
		}
		return List(checked...)
	default:
		return Scalar(inputs[0].Value)
	}
}

// ExistsValue reports whether a field has a value.
func ExistsValue(inputs Inputs) bool {
	return GetValue(inputs).Present()
}

package fieldvalue

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Form is an ordered in-memory set of bound inputs. It implements Lookup and
// Enumerator. A Form is not safe for concurrent mutation; Clone it per request.
type Form struct {
	inputs Inputs
}

// NewForm returns a form holding the given inputs in order.
func NewForm(inputs ...Input) *Form {
	f := &Form{}
	return f.Add(inputs...)
}

// FromValues builds a form from submitted values. Keys are visited in sorted
// order; a key with several values becomes a checked checkbox group, any other
// key a text input.
func FromValues(values url.Values) *Form {
	f := &Form{}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		vals := values[name]
		if len(vals) > 1 {
			for _, v := range vals {
				f.inputs = append(f.inputs, Input{Name: name, Type: TypeCheckbox, Value: v, Checked: true})
			}
			continue
		}
		v := ""
		if len(vals) == 1 {
			v = vals[0]
		}
		f.inputs = append(f.inputs, Input{Name: name, Type: "text", Value: v})
	}
	return f
}

// Add appends inputs to the form.
func (f *Form) Add(inputs ...Input) *Form {
	for _, in := range inputs {
		in.Attrs = maps.Clone(in.Attrs)
		f.inputs = append(f.inputs, in)
	}
	return f
}

// LookupByName returns the inputs bound to name in document order.
func (f *Form) LookupByName(name string) Inputs {
	var out Inputs
	for _, in := range f.inputs {
		if in.Name == name {
			out = append(out, in)
		}
	}
	return out
}

// Inputs returns a copy of every input in document order.
func (f *Form) Inputs() Inputs {
	return slices.Clone(f.inputs)
}

// Set binds values to a single name, see Bind.
func (f *Form) Set(name string, values ...string) *Form {
	for i := range f.inputs {
		if f.inputs[i].Name == name {
			f.bindOne(i, values, f.scalarIndex(i))
		}
	}
	return f
}

// Bind applies submitted values to the form. Checkbox and radio inputs are
// checked when their value was submitted under their name and unchecked
// otherwise. Other inputs take the submitted values in order; a missing value
// leaves them empty. A number input receiving text that is not a number is
// emptied and flagged as BadInput.
func (f *Form) Bind(values url.Values) *Form {
	for i := range f.inputs {
		f.bindOne(i, values[f.inputs[i].Name], f.scalarIndex(i))
	}
	return f
}

func (f *Form) bindOne(i int, submitted []string, scalarIdx int) {
	in := &f.inputs[i]
	switch in.Type {
	case TypeCheckbox, TypeRadio:
		in.Checked = slices.Contains(submitted, in.Value)
	default:
		in.Value = ""
		in.BadInput = false
		if scalarIdx < len(submitted) {
			in.Value = submitted[scalarIdx]
		}
		if in.Type == TypeNumber && in.Value != "" {
			if _, err := strconv.ParseFloat(strings.TrimSpace(in.Value), 64); err != nil {
				in.Value = ""
				in.BadInput = true
			}
		}
	}
}

// scalarIndex is the position of input i among the scalar inputs sharing its name.
func (f *Form) scalarIndex(i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if f.inputs[j].Name == f.inputs[i].Name && f.inputs[j].Type != TypeCheckbox && f.inputs[j].Type != TypeRadio {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the form.
func (f *Form) Clone() *Form {
	return NewForm(f.inputs...)
}

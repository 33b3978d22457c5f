package fieldvalue

// Input types with special value semantics. Every other type, including the
// empty string used for <select> and <textarea>, is read as a scalar.
const (
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
	TypeNumber   = "number"
)

// Input is one bound control of a field: a text box, one checkbox of a group,
// one radio option, a select, and so on.
type Input struct {
	Name    string
	Type    string
	Value   string
	Checked bool

	// Required mirrors the native required constraint.
	Required bool
	// Attrs holds the remaining native constraints by attribute name
	// (min, max, minlength, maxlength, pattern).
	Attrs map[string]string

	// BadInput is set by the host when the control holds text it could not
	// convert (a browser reports this for <input type="number">). The value is
	// empty in that case.
	BadInput bool
	// ValidationMessage is the host's own description of a bad input.
	ValidationMessage string
}

// Attr returns the named constraint attribute and whether it is set.
func (in Input) Attr(name string) (string, bool) {
	v, ok := in.Attrs[name]
	return v, ok
}

// Inputs is the ordered collection of controls bound to one name.
type Inputs []Input

// Type returns the type of the first control, or "" for an empty collection.
func (ins Inputs) Type() string {
	if len(ins) == 0 {
		return ""
	}
	return ins[0].Type
}

// Lookup resolves a field name to its bound inputs. Implementations return an
// empty collection for unknown names.
type Lookup interface {
	LookupByName(name string) Inputs
}

// Enumerator lists every bound input in document order.
type Enumerator interface {
	Inputs() Inputs
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) Inputs

// LookupByName calls f(name).
func (f LookupFunc) LookupByName(name string) Inputs {
	return f(name)
}

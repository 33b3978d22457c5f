// Package fieldvalue reads the current value of named form fields.
//
// A field is bound to one or more Input controls. GetValue turns the bound
// inputs into a Value according to the control type:
//
//   - checkbox groups yield the ordered list of checked values,
//   - radio groups yield the checked option's value, or undefined,
//   - every other control yields the first input's raw value.
//
// ExistsValue reports whether that value counts as filled in. An empty
// collection of inputs is a valid state meaning "no value"; the package never
// returns an error for it.
//
// # Sources
//
// Validation code resolves names through the Lookup interface. Form is the
// in-memory implementation and can be built directly, from submitted
// url.Values (FromValues), from an HTML document (ParseHTML) or filled from an
// HTTP request (BindRequest):
//
//	form, err := fieldvalue.ParseHTML(strings.NewReader(page))
//	if err != nil {
//	    return err
//	}
//	if err := fieldvalue.BindRequest(r, form); err != nil {
//	    return err
//	}
//	email := fieldvalue.GetValue(form.LookupByName("email"))
package fieldvalue

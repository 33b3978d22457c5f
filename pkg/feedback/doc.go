// Package feedback is the default presenter for validation errors.
//
// Markup follows the Bootstrap form convention: a field with errors carries
// the "is-invalid" class and is followed by one
// <div class="invalid-feedback"> block per message. Messages are sanitized
// with bluemonday before they are placed into markup, so custom rule output
// can never inject HTML.
//
//	m := feedback.NewMarkup(form, engine.Catalog())
//	for _, e := range errs {
//	    m.SetError(e.Field, e.Message)
//	}
//
//	// in a template
//	<input name="email" class="form-control {{ .Markup.Class "email" }}">
//	{{ .Markup.Feedback "email" }}
//
// AlertText builds the plain-text summary used by alert style presentation.
package feedback

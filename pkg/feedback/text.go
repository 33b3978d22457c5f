package feedback

import (
	"github.com/dmitrymomot/formrules/pkg/messages"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// AlertText is the VALIDATE_ERROR headline followed by one "label : message"
// line per error. It is empty when errs is empty.
func AlertText(catalog messages.Catalog, errs validator.ValidationErrors) string {
	if errs.IsEmpty() {
		return ""
	}
	if catalog == nil {
		catalog = messages.Japanese()
	}
	return catalog.Text(messages.ValidateError) + "\n" + errs.Join("\n")
}

// Package formrules validates submitted form data against declarative field
// rules and presents the outcome.
//
// The rule engine lives in pkg/validator; this package wires it to the two
// places a submission is checked:
//
//   - Form, which validates bound inputs on demand and presents the errors
//     through Hooks (inline per field, or as one alert summary).
//   - Guard, HTTP middleware that binds each request into a clone of a form
//     template and rejects invalid submissions before the handler runs.
//
// Basic Usage:
//
//	signup := fieldvalue.NewForm(
//		fieldvalue.Input{Name: "email", Type: "email", Required: true},
//		fieldvalue.Input{Name: "password", Type: "password"},
//		fieldvalue.Input{Name: "password_confirm", Type: "password"},
//	)
//	fields := []validator.Field{
//		{Name: "email", Label: "E-mail", Rules: validator.Rules{"required", "email"}},
//		{Name: "password", Rules: validator.Rules{"required", "minlength:8", "confirm"}},
//	}
//
//	r := chi.NewRouter()
//	r.With(formrules.Guard(signup, fields)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//		form := formrules.FormFromContext(r.Context())
//		// every rule passed
//	})
//
// Presenting errors in server-rendered pages:
//
//	form := formrules.New(signup.Clone().Bind(r.PostForm), fields)
//	ok, err := form.Validate(ctx)
//	// form.Markup().Class("email"), form.Markup().Feedback("email")
//
// Hooks replace the default presenter piece by piece:
//
//	form := formrules.New(bound, fields, formrules.WithHooks(formrules.Hooks{
//		Alert: func(msg string) { flash.Add(msg) },
//		Result: func(ok bool, errs validator.ValidationErrors) bool {
//			return ok || onlyWarnings(errs)
//		},
//	}))
//	ok, err := form.ValidateAlert(ctx)
package formrules

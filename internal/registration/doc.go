// Package registration holds the registration form's domain: the raw input
// captured by the form controls, the schema it is validated against, the
// typed submission produced by a successful validation and the notification
// shown once a submission has been accepted.
//
// Validation never panics and never logs. It maps raw input either to a
// fully valid Submission or to Errors, a per-field mapping of the first
// violated constraint and its user-facing message:
//
//	sub, errs := registration.Validate(in)
//	if len(errs) > 0 {
//	    // render errs.Message(registration.FieldName) next to the name input
//	}
package registration

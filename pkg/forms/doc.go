// Package forms models the login, registration, category and transaction
// dialogs of the finance client without any rendering.
//
// Every form owns a validator.Engine. Setters store the input and, where the
// dialog validates as the user types, run the field's rules immediately so
// HasError and GetError reflect the current value. Submit runs a bulk pass
// that replaces the error map, and on success returns the request body for
// the API after checking it against the request contract in package finance.
//
// Open starts a new session: it clears every error and assigns a fresh ID
// that tags the form's log records.
package forms

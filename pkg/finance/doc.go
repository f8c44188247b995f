// Package finance holds the types exchanged with the finance API: users,
// categories, transactions and the request bodies the forms produce.
//
// Request types carry go-playground validate tags describing the contract the
// API enforces. CheckRequest runs those checks and reports failures as
// validator.ValidationErrors keyed by JSON field name, so a request built by a
// form can be verified once more before it leaves the process.
package finance

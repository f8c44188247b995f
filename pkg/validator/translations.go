package validator

import "embed"

// Translations holds the default message catalogs (translations/*.yaml),
// keyed by language with every rule under "validation" and form field
// display names under "fields".
//
//go:embed translations/*.yaml
var Translations embed.FS

// Package sanitizer normalizes raw form input before it is validated and
// copied into API requests.
//
// Every helper is a pure func(T) T so helpers chain with Apply or Compose:
//
//	name := sanitizer.Apply(raw, sanitizer.Trim, sanitizer.NormalizeWhitespace)
//	clean := sanitizer.Compose(sanitizer.StripControl, sanitizer.Trim)
package sanitizer

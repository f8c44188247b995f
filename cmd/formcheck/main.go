// Command formcheck validates a form payload the way the finance client does
// and prints the resulting error map.
//
//	formcheck [-lang it] [-format json] payload.yaml
//
// The payload names a form and its input values:
//
//	form: transaction
//	today: "2024-03-01"
//	categories:
//	  - {categoryId: 3, categoryName: Food, type: EXPENSE}
//	values:
//	  amount: 12.5
//	  categoryId: 3
//
// Use "-" to read the payload from stdin. JSON payloads are accepted too.
// The exit status is 0 when the form is valid, 1 when it is not and 2 on
// usage or input errors.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

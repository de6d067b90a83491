// Package migrations holds the ordered SQL schema files applied by `table-booking migrate`.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose SQL migrations that define the
// committees, contributors, contributions and expenditures schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose migrations for the console's local
// settings database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

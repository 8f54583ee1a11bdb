// Package migrations embeds the SQL schema and seed files so the server
// binary can initialize a fresh database on its own.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

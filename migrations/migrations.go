// Package migrations embeds the SQL schema so binaries and tests apply the same files.
package migrations

import "embed"

// FS holds the *.up.sql and *.down.sql files
//
//go:embed *.sql
var FS embed.FS

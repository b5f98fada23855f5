// Package migrations embeds the schema migrations for every supported driver.
package migrations

import "embed"

// FS holds sqlite/*.sql and postgres/*.sql, named NNN_description.sql
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

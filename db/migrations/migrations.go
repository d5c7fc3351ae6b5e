package migrations

import "embed"

// FS embeds the SQL migrations in this directory for the golang-migrate
// iofs source driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1

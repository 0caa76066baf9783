package migrations

import "embed"

// Migrations holds the goose files for the PostgreSQL schema.
//
//go:embed *.sql
var Migrations embed.FS

// Package migrations — SQL-миграции goose, вшитые в бинарь.
package migrations

import "embed"

// FS — все *.sql миграции.
//
//go:embed *.sql
var FS embed.FS

// Package migrations содержит SQL-схему сервиса
package migrations

import "embed"

// FS файлы миграций, применяются в лексикографическом порядке
//
//go:embed *.sql
var FS embed.FS

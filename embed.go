// Package homoglyph holds the assets embedded into the service binary: the
// default homoglyph equivalence data and the database migrations.
package homoglyph

import "embed"

// Data contains the default equivalence table sources
// (data/homoglyph_map.json and data/char_codes.txt).
//
//go:embed data/*.txt data/*.json
var Data embed.FS

// Migrations contains goose migrations for the shortener tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package migrations embeds the SQL schema migrations shipped with the binary.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql
var files embed.FS

// SQLite returns the sqlite migration file set rooted at the directory the
// migration runner reads from.
func SQLite() (fs.FS, error) {
	return fs.Sub(files, "sqlite")
}

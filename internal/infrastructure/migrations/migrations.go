// Package migrations embebe el esquema SQL versionado (NNNN_nombre.up.sql / .down.sql).
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sql/*.sql
var files embed.FS

// FS devuelve los archivos de migración en la raíz del fs.FS.
func FS() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err) // el directorio está embebido en compilación
	}
	return sub
}

package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static devuelve los archivos de la SPA con static/ como raíz
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

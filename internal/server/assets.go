package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// assetServer serves the embedded stylesheet and any other bundled assets.
func assetServer() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time; a failure here
		// means the binary itself is broken.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

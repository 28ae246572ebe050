// Package views embeds the dashboard templates and static assets.
package views

import (
	"embed"
	"io/fs"
)

//go:embed layouts partials *.html
var FS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package web embeds the templates, static assets and content data.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

//go:embed data/*.json
var data embed.FS

// Templates returns the HTML templates, rooted at the template directory.
func Templates() fs.FS { return mustSub(templates, "templates") }

// Static returns the CSS and JS assets.
func Static() fs.FS { return mustSub(static, "static") }

// Data returns the static JSON content.
func Data() fs.FS { return mustSub(data, "data") }

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

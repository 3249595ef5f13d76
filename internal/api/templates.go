// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"embed"
	"html/template"
	"io/fs"
	"os"
)

const indexTemplate = "index.html.tmpl"

//go:embed web/templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed web/static
var embeddedStatic embed.FS

// indexPage is the data passed to the dashboard page template.
type indexPage struct {
	Title   string
	Regions []string
	Nonce   string
	Version string
}

// loadTemplates parses the page templates from dir, or from the embedded
// copy when dir is empty.
func loadTemplates(dir string) (*template.Template, error) {
	var source fs.FS
	if dir != "" {
		source = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "web/templates")
		if err != nil {
			return nil, err
		}
		source = sub
	}
	return template.ParseFS(source, "*.tmpl")
}

// staticFS returns the embedded assets rooted at web/static.
func staticFS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "web/static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Templates exposes the built-in input templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultMappings maps the built-in template types to their template names.
func DefaultMappings() map[string]string {
	return map[string]string{
		"datalist": "datalist",
		"switch":   "switch",
	}
}

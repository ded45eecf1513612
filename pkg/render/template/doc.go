// Package template defines the template engine seam used by template-backed
// input renderers. The gotemplate subpackage provides a pongo2
// implementation with filters for input markup (idsuffix, label, trim).
package template

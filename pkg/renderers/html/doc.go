// Package html contains the built-in HTML renderers for input declarations:
// text, select, radio and checkbox are seeded into the dispatcher cache,
// while textarea and the remaining HTML5 input types are offered as
// providers discovered on first use.
//
// Attribute names are written in sorted order so output is deterministic.
// Attribute values are HTML-escaped; a boolean true renders a bare attribute
// and false or nil omits it. Radio and checkbox labels pass through a
// bluemonday policy that keeps inline formatting only.
package html

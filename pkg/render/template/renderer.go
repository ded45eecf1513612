package template

import (
	"io"
)

// TemplateRenderer is the engine contract template-backed input renderers
// rely on. Both calls return the output and also write it to out when
// writers are supplied. RenderTemplate loads name from the engine's sources;
// RenderString compiles content inline.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
}

package web

import (
	"html/template"
	"io"
	"os"
	"path"
)

// RenderContext maps template variable names to their values for one response
type RenderContext map[string]string

// TemplateEngine renders a named template with a RenderContext
type TemplateEngine interface {
	Render(w io.Writer, name string, data RenderContext) error
}

// FileTemplates loads templates from Dir on every render.
// Edits to the files show up without a restart and a missing file is a render error.
type FileTemplates struct {
	Dir   string
	Funcs template.FuncMap
}

// Render parses Dir/name and executes it into w
func (t FileTemplates) Render(w io.Writer, name string, data RenderContext) error {
	tmpl, err := template.New(path.Base(name)).Funcs(t.Funcs).ParseFS(os.DirFS(t.Dir), name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

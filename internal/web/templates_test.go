package web

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileTemplatesRender(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.html"), `<p>{{.username}}</p>`)
	writeFile(t, filepath.Join(dir, "nested", "shout.html"), `<p>{{shout .username}}</p>`)

	engine := FileTemplates{
		Dir:   dir,
		Funcs: template.FuncMap{"shout": strings.ToUpper},
	}

	testCases := []struct {
		name string
		data RenderContext
		want string
	}{
		{"hello.html", RenderContext{"username": "admin"}, "<p>admin</p>"},
		{"hello.html", RenderContext{"username": "<b>"}, "<p>&lt;b&gt;</p>"},
		{"nested/shout.html", RenderContext{"username": "admin"}, "<p>ADMIN</p>"},
	}
	for _, tc := range testCases {
		var buf bytes.Buffer
		if err := engine.Render(&buf, tc.name, tc.data); err != nil {
			t.Fatalf("Render(%s): %v", tc.name, err)
		}
		if buf.String() != tc.want {
			t.Errorf("Render(%s) = %q, want %q", tc.name, buf.String(), tc.want)
		}
	}
}

func TestFileTemplatesReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	engine := FileTemplates{Dir: dir}

	writeFile(t, path, "v1")
	var buf bytes.Buffer
	if err := engine.Render(&buf, "page.html", nil); err != nil || buf.String() != "v1" {
		t.Fatalf("first render: %q, %v", buf.String(), err)
	}

	writeFile(t, path, "v2")
	buf.Reset()
	if err := engine.Render(&buf, "page.html", nil); err != nil || buf.String() != "v2" {
		t.Fatalf("render after edit: %q, %v", buf.String(), err)
	}
}

func TestFileTemplatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.html"), `{{.username`)
	engine := FileTemplates{Dir: dir}

	for _, name := range []string{"missing.html", "broken.html", "../escape.html"} {
		var buf bytes.Buffer
		if err := engine.Render(&buf, name, RenderContext{"username": "admin"}); err == nil {
			t.Errorf("Render(%s): expected error", name)
		}
	}
}

package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lecterntools/lectern/document"
)

func TestWriteHTML(t *testing.T) {
	input := `# One

First body.

## Two

Second body.
`
	doc, err := document.Parse([]byte(input), "talk.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := Build(doc)

	var buf bytes.Buffer
	if err := d.WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `id="slide-1"`) || !strings.Contains(out, `id="slide-2"`) {
		t.Errorf("expected 1-based slide section ids, got:\n%s", out)
	}
	if strings.Contains(out, `id="slide-3"`) {
		t.Error("exported more sections than slides")
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "First body.") {
		t.Errorf("expected slide content inside sections, got:\n%s", out)
	}
	if !strings.Contains(out, "<title>One</title>") {
		t.Errorf("expected deck title in head, got:\n%s", out)
	}
	if !strings.Contains(out, "2 of 2") {
		t.Errorf("expected slide counters, got:\n%s", out)
	}
	if !strings.Contains(out, `id="one"`) || !strings.Contains(out, `id="two"`) {
		t.Errorf("expected title anchors per slide, got:\n%s", out)
	}
}

func TestWriteHTMLDuplicateTitles(t *testing.T) {
	input := "## Demo\n\na\n\n## Demo\n\nb\n"
	doc, err := document.Parse([]byte(input), "talk.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := Build(doc).WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `id="demo"`) || !strings.Contains(out, `id="demo-1"`) {
		t.Errorf("expected deduplicated title anchors, got:\n%s", out)
	}
}

func TestExportHTMLFile(t *testing.T) {
	doc, err := document.Parse([]byte("# Only\n\nBody.\n"), "talk.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := Build(doc)

	path := filepath.Join(t.TempDir(), "out.html")
	if err := ExportHTML(d, path); err != nil {
		t.Fatalf("ExportHTML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("export should be a standalone HTML document")
	}
}

package deck

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/lecterntools/lectern/errors"
	"github.com/lecterntools/lectern/util/sanitize"
)

// exportTemplate is the shell for exported decks: one section element
// per slide, addressable as #slide-<1-based>.
const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #1f1f28; color: #dcd7ba; }
section.slide { min-height: 100vh; box-sizing: border-box; padding: 4rem 6rem; border-bottom: 1px solid #54546d; }
section.slide h1 { color: #7e9cd8; }
section.slide h2 { color: #957fb8; }
section.slide pre { background: #16161d; padding: 1rem; overflow-x: auto; }
section.slide:target { outline: 2px solid #7e9cd8; }
.slide-number { float: right; color: #54546d; font-size: 0.8rem; }
</style>
</head>
<body>
{{- range .Slides}}
<section class="slide" id="slide-{{.Number}}">
{{- if .Anchor}}
<a id="{{.Anchor}}"></a>
{{- end}}
<span class="slide-number">{{.Number}} of {{$.Count}}</span>
{{.Content}}
</section>
{{- end}}
</body>
</html>
`

type exportSlide struct {
	Number  int
	Anchor  string
	Content template.HTML
}

type exportData struct {
	Title  string
	Count  int
	Slides []exportSlide
}

// WriteHTML renders the deck as a standalone HTML document.
func (d *Deck) WriteHTML(w io.Writer) error {
	tmpl, err := template.New("deck").Parse(exportTemplate)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExportFailed, "failed to parse export template")
	}

	data := exportData{
		Title: d.Title,
		Count: d.Len(),
	}
	anchors := make(map[string]int)
	for _, s := range d.Slides {
		var blocks []string
		for _, n := range s.Nodes {
			if n.HTML == "" {
				continue
			}
			blocks = append(blocks, n.HTML)
		}
		data.Slides = append(data.Slides, exportSlide{
			Number: s.Index + 1,
			Anchor: slideAnchor(s.Title(), anchors),
			// Node HTML comes from the loaders' renderers, not from
			// user-controlled template input.
			Content: template.HTML(strings.Join(blocks, "\n")),
		})
	}

	return tmpl.Execute(w, data)
}

// slideAnchor derives a title anchor unique within the document, so
// repeated headings stay addressable.
func slideAnchor(title string, seen map[string]int) string {
	a := sanitize.ForAnchor(title)
	if a == "" {
		return ""
	}
	seen[a]++
	if n := seen[a]; n > 1 {
		return fmt.Sprintf("%s-%d", a, n-1)
	}
	return a
}

// ExportHTML writes the deck to a file.
func ExportHTML(d *Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportFailed(path, err)
	}
	defer f.Close()

	if err := d.WriteHTML(f); err != nil {
		return errors.ExportFailed(path, err)
	}
	return nil
}

// Package document loads Markdown and HTML files into the flat ordered
// node sequence the deck segmenter consumes.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lecterntools/lectern/errors"
)

// Kind tags a content node's role in slide segmentation.
type Kind string

const (
	// KindHeading1 is a rank-1 heading; the first one starts a slide.
	KindHeading1 Kind = "heading-1"
	// KindHeading2 is a rank-2 heading; every one starts a slide.
	KindHeading2 Kind = "heading-2"
	// KindRule is a horizontal separator; it breaks slides and is never displayed.
	KindRule Kind = "rule"
	// KindOther is slide payload with no segmentation role.
	KindOther Kind = "other"
)

// Format identifies the source markup of a document.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Node is one top-level content element. Nodes are immutable after
// load; ID is the node's position in the original sequence.
type Node struct {
	ID      int    `json:"id"`
	Kind    Kind   `json:"kind"`
	Level   int    `json:"level,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	HTML    string `json:"-"`
	Code    bool   `json:"code,omitempty"`
}

// Meta holds front matter values.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Theme  string `yaml:"theme"`
	Date   string `yaml:"date"`
}

// Document is a loaded source file as a flat node sequence.
type Document struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Meta   Meta   `json:"meta"`
	Nodes  []Node `json:"nodes"`
}

// Title resolves the document title: front matter first, then the first
// rank-1 heading, then the file base name.
func (d *Document) Title() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	for _, n := range d.Nodes {
		if n.Kind == KindHeading1 {
			return n.Title
		}
	}
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DocumentNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDocNotFound, "failed to read document").
			WithDetail("path", path)
	}
	return Parse(data, path)
}

// Parse parses document bytes, choosing the format by file extension.
func Parse(data []byte, path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return parseMarkdown(data, path)
	case ".html", ".htm":
		return parseHTML(data, path)
	default:
		return nil, errors.UnsupportedFormat(path, ext)
	}
}

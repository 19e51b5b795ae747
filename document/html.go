package document

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/lecterntools/lectern/errors"
)

// parseHTML extracts the flat node sequence from an HTML document: the
// element children of <body>, in order. A single wrapping container
// (div, main, article, section) is descended into so wrapped documents
// still expose their real content sequence.
func parseHTML(data []byte, path string) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}

	doc := &Document{
		Path:   path,
		Format: FormatHTML,
	}
	if title := findTitle(root); title != "" {
		doc.Meta.Title = title
	}

	body := findBody(root)
	if body == nil {
		body = root
	}
	body = unwrapContainer(body)

	id := 0
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "script", "style", "head", "nav":
			continue
		}

		node := Node{ID: id, Kind: KindOther}
		switch c.Data {
		case "h1":
			node.Kind = KindHeading1
			node.Level = 1
			node.Title = textContent(c)
			node.Content = node.Title
		case "h2":
			node.Kind = KindHeading2
			node.Level = 2
			node.Title = textContent(c)
			node.Content = node.Title
		case "hr":
			node.Kind = KindRule
			node.Content = "---"
		case "pre":
			node.Code = true
			node.Content = strings.Trim(rawText(c), "\n")
		default:
			if level := headingLevel(c.Data); level > 0 {
				node.Level = level
				node.Title = textContent(c)
			}
			node.Content = textContent(c)
		}
		node.HTML = renderElement(c)

		doc.Nodes = append(doc.Nodes, node)
		id++
	}

	return doc, nil
}

// unwrapContainer descends through lone wrapper elements until it finds
// a node with more than one element child.
func unwrapContainer(n *html.Node) *html.Node {
	for {
		var only *html.Node
		count := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			count++
			only = c
		}
		if count != 1 || only == nil {
			return n
		}
		switch only.Data {
		case "div", "main", "article", "section":
			n = only
		default:
			return n
		}
	}
}

func renderElement(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent collects the text of an element, normalized for display.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// rawText collects text without whitespace normalization, for <pre> bodies.
func rawText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

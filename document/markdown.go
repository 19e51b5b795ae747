package document

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// parseMarkdown extracts the flat node sequence from Markdown source.
// Only the top-level blocks of the AST become nodes; heading rank 3+
// is payload, not a segmentation signal.
func parseMarkdown(data []byte, path string) (*Document, error) {
	meta, src := extractFrontMatter(data)

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &Document{
		Path:   path,
		Format: FormatMarkdown,
		Meta:   meta,
	}

	id := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		node := Node{ID: id, Kind: KindOther}

		switch block := n.(type) {
		case *ast.Heading:
			node.Level = block.Level
			node.Title = string(block.Text(src))
			node.Content = node.Title
			switch block.Level {
			case 1:
				node.Kind = KindHeading1
			case 2:
				node.Kind = KindHeading2
			}
		case *ast.ThematicBreak:
			node.Kind = KindRule
			node.Content = "---"
		case *ast.FencedCodeBlock:
			node.Code = true
			node.Content = rawLines(block, src)
		case *ast.CodeBlock:
			node.Code = true
			node.Content = rawLines(block, src)
		default:
			node.Content = blockSource(n, src)
		}

		node.HTML = renderBlockHTML(md, src, n)

		doc.Nodes = append(doc.Nodes, node)
		id++
	}

	return doc, nil
}

// renderBlockHTML renders a single top-level block to HTML.
func renderBlockHTML(md goldmark.Markdown, src []byte, n ast.Node) string {
	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, n); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}

// rawLines joins a block's source lines, used for code block bodies.
func rawLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// blockSource recovers the raw source span of a block, expanded to whole
// lines so list bullets and quote markers survive.
func blockSource(n ast.Node, src []byte) string {
	start, stop := -1, -1
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if start == -1 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if start == -1 {
		return ""
	}

	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for stop < len(src) && src[stop] != '\n' {
		stop++
	}
	return strings.TrimRight(string(src[start:stop]), " \t\n")
}

// extractFrontMatter strips a leading YAML front matter block. The block
// must start at the first line and close with a bare --- line; anything
// that does not parse as YAML is left in place, so a document opening
// with a plain horizontal rule keeps it.
func extractFrontMatter(src []byte) (Meta, []byte) {
	var meta Meta

	lines := strings.SplitAfter(string(src), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != "---" {
		return meta, src
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") != "---" {
			continue
		}
		block := strings.Join(lines[1:i], "")
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return Meta{}, src
		}
		rest := strings.Join(lines[i+1:], "")
		return meta, []byte(rest)
	}

	return Meta{}, src
}

package embedding

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New()

// TextForItem derives the text to embed for an item. Precedence: explicit
// text content (markdown flattened to plain text), else a synthetic string
// from the media URL, else one from the file name, else empty.
func TextForItem(textContent, mediaURL, fileName string) string {
	if strings.TrimSpace(textContent) != "" {
		return FlattenMarkdown(textContent)
	}
	if mediaURL != "" {
		return "media:" + mediaURL
	}
	if fileName != "" {
		return "file:" + fileName
	}
	return ""
}

// FlattenMarkdown strips markdown structure from a text memory, returning the
// plain text the embedding model should see. Plain text passes through
// unchanged apart from whitespace normalization.
func FlattenMarkdown(content string) string {
	source := []byte(content)
	doc := markdownParser.Parser().Parse(text.NewReader(source))

	var parts []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			parts = append(parts, string(segment.Value(source)))
		case *ast.AutoLink:
			parts = append(parts, string(node.URL(source)))
		}
		return ast.WalkContinue, nil
	})

	flat := strings.Join(parts, " ")
	return strings.Join(strings.Fields(flat), " ")
}

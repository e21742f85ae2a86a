package rodwrapper

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type TextConfig struct {
	TagsToSkip    []string
	MaxOutputSize int
}

var DefaultTextConfig = TextConfig{
	TagsToSkip: []string{
		"script", "style", "noscript", "svg", "iframe",
		"link", "meta", "head", "title", "template",
	},
	MaxOutputSize: 2000,
}

// VisibleText returns the human-readable text of a document body, one block
// per line, truncated to cfg.MaxOutputSize bytes.
func VisibleText(rawHTML string, cfg *TextConfig) string {
	if cfg == nil {
		cfg = &DefaultTextConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	root := findBodyNode(doc)
	if root == nil {
		root = doc
	}

	var lines []string
	collectText(root, cfg, &lines)

	return truncateText(strings.Join(lines, "\n"), cfg.MaxOutputSize)
}

func findBodyNode(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBodyNode(c); b != nil {
			return b
		}
	}
	return nil
}

func collectText(n *html.Node, cfg *TextConfig, lines *[]string) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			*lines = append(*lines, text)
		}
		return
	case html.ElementNode:
		if isOneOf(n.Data, cfg.TagsToSkip...) {
			return
		}
		if n.Data == "input" {
			if v := inputHint(n); v != "" {
				*lines = append(*lines, v)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, cfg, lines)
	}
}

// inputHint names an input by its placeholder or button label. Typed values
// are never included so passwords do not end up in logs.
func inputHint(n *html.Node) string {
	var typ, placeholder, value string
	for _, a := range n.Attr {
		switch a.Key {
		case "type":
			typ = strings.ToLower(a.Val)
		case "placeholder":
			placeholder = a.Val
		case "value":
			value = a.Val
		}
	}
	if placeholder != "" {
		return "[" + placeholder + "]"
	}
	if (typ == "submit" || typ == "button") && value != "" {
		return "[" + value + "]"
	}
	return ""
}

func truncateText(s string, maxSize int) string {
	if maxSize > 0 && len(s) > maxSize {
		for maxSize > 0 && !utf8.RuneStart(s[maxSize]) {
			maxSize--
		}
		return s[:maxSize] + "\n... (truncated)"
	}
	return s
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

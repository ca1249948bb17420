package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Article is the text content lifted out of a fetched HTML page
type Article struct {
	Title  string
	Author string
	Body   string
}

// skipElements never contribute visible article text
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"button":   true,
}

// ParseArticle extracts the title, author metadata, and visible body text
// from an HTML document
func ParseArticle(htmlContent string) (Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return Article{}, fmt.Errorf("parsing article HTML: %w", err)
	}

	var article Article
	var body strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skipElements[n.Data] {
				return
			}
			switch n.Data {
			case "title":
				if article.Title == "" {
					article.Title = CleanText(textContent(n))
				}
				return
			case "meta":
				if author := metaAuthor(n); author != "" && article.Author == "" {
					article.Author = author
				}
				return
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "blockquote":
				body.WriteByte('\n')
			}
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				body.WriteString(text)
				body.WriteByte(' ')
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	article.Body = CleanText(body.String())
	if article.Author == "" {
		article.Author = bylineAuthor(doc)
	}
	return article, nil
}

// metaAuthor reads <meta name="author" content="..."> and the common
// article:author property variant
func metaAuthor(n *html.Node) string {
	var name, property, content string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "name":
			name = strings.ToLower(attr.Val)
		case "property":
			property = strings.ToLower(attr.Val)
		case "content":
			content = attr.Val
		}
	}
	if name == "author" || property == "article:author" {
		return CleanText(content)
	}
	return ""
}

// bylineAuthor falls back to elements carrying an author-ish class or
// rel=author link when no meta tag names the author
func bylineAuthor(doc *html.Node) string {
	var author string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if author != "" {
			return
		}
		if n.Type == html.ElementNode && !skipElements[n.Data] {
			for _, attr := range n.Attr {
				key := strings.ToLower(attr.Key)
				val := strings.ToLower(attr.Val)
				if (key == "class" && strings.Contains(val, "author")) ||
					(key == "rel" && val == "author") ||
					(key == "itemprop" && val == "author") {
					if text := CleanText(textContent(n)); text != "" && len(text) < 100 {
						author = strings.TrimPrefix(text, "By ")
						return
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return author
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

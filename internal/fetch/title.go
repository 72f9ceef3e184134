package fetch

import (
	"strings"

	"golang.org/x/net/html"
)

// Marketplace suffixes stripped off page titles.
var titleSuffixes = []string{" | eBay", " - eBay", " | Newegg.com", " - Newegg.com"}

// Title extracts the listing title from a page: the og:title meta tag
// when present, the <title> element otherwise.
func Title(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	if t := findMetaTitle(doc); t != "" {
		return cleanTitle(t)
	}
	return cleanTitle(findTitleElement(doc))
}

func findMetaTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "meta" {
		var property, content string
		for _, a := range n.Attr {
			switch a.Key {
			case "property", "name":
				property = a.Val
			case "content":
				content = a.Val
			}
		}
		if property == "og:title" && content != "" {
			return content
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findMetaTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findTitleElement(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return sb.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitleElement(c); t != "" {
			return t
		}
	}
	return ""
}

func cleanTitle(t string) string {
	t = strings.Join(strings.Fields(t), " ")
	for _, suffix := range titleSuffixes {
		t = strings.TrimSuffix(t, suffix)
	}
	return strings.TrimSpace(t)
}

package dataset

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlToText converts an HTML job description into markdown text. Values
// without markup, or that fail to convert, are returned unchanged.
func htmlToText(description string) (string, bool) {
	if !strings.Contains(description, "<") || !strings.Contains(description, ">") {
		return description, false
	}

	md, err := htmltomarkdown.ConvertString(description)
	if err != nil {
		return description, false
	}
	return strings.TrimSpace(md), true
}

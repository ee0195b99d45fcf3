package htmlscan

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText strips markup and returns the readable text with whitespace
// collapsed. Script, style and title contents are skipped.
func VisibleText(src string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	skipping := ""

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch tag := string(name); tag {
			case "script", "style", "title":
				skipping = tag
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == skipping {
				skipping = ""
			}
		case html.TextToken:
			if skipping != "" {
				continue
			}
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
}

// WordCount counts whitespace separated words of the visible text.
func WordCount(text string) uint32 {
	return uint32(len(strings.Fields(text)))
}

package htmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		text  string
		words uint32
	}{
		{name: "empty", html: "", text: "", words: 0},
		{
			name:  "document",
			html:  `<html><head><title>T</title><style>p{color:red}</style></head><body><p>Hello &amp; welcome</p><script>var x=1;</script><p>to&nbsp;the   show</p></body></html>`,
			text:  "Hello & welcome to the show",
			words: 6,
		},
		{
			name:  "fragment with comments",
			html:  `<!-- hidden --><td>Buy <b>now</b></td>`,
			text:  "Buy now",
			words: 2,
		},
		{
			name:  "malformed",
			html:  `<div><p>Unclosed <span>text`,
			text:  "Unclosed text",
			words: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := VisibleText(tt.html)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.words, WordCount(text))
		})
	}
}

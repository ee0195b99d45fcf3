package htmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Clean(t *testing.T) {
	findings := Classify(`<table><tr><td style="padding:8px">Hello</td></tr></table>`)

	assert.False(t, findings.WordProcessor)
	assert.False(t, findings.OnlineDocument)
	assert.False(t, findings.RichText)
	assert.Empty(t, findings.Matches)
	assert.Zero(t, findings.EstimatedBloatBytes)
}

func TestClassify_WordProcessor(t *testing.T) {
	html := `<p class="MsoNormal" style="mso-line-height-rule:exactly;">Hi<o:p></o:p></p>`
	findings := Classify(html)

	assert.True(t, findings.WordProcessor)
	assert.False(t, findings.OnlineDocument)
	assert.False(t, findings.RichText)
	assert.Equal(t, uint64(58), findings.WordProcessorBytes)
	assert.Equal(t, uint64(58), findings.EstimatedBloatBytes)
	assert.Contains(t, findings.Matches, "word processor: vendor XML tags (2 matches)")
	assert.Contains(t, findings.Matches, "word processor: vendor style class names (1 matches)")
}

func TestClassify_OfficeXMLBlock(t *testing.T) {
	html := `<!--[if gte mso 9]><xml><o:OfficeDocumentSettings><o:AllowPNG/></o:OfficeDocumentSettings></xml><![endif]--><p>x</p>`
	findings := Classify(html)

	assert.True(t, findings.WordProcessor)
	assert.Contains(t, findings.Matches, "word processor: conditional Office XML blocks (1 matches)")
}

func TestClassify_VMLIsNotBloat(t *testing.T) {
	html := `<html xmlns:v="urn:schemas-microsoft-com:vml"><v:roundrect arcsize="10%"></v:roundrect></html>`
	findings := Classify(html)

	assert.False(t, findings.WordProcessor)
}

func TestClassify_OnlineDocument(t *testing.T) {
	html := `<b id="docs-internal-guid-1a2b-3c" style="font-weight:normal;"><p dir="ltr" class="c1 c2">x</p></b>`
	findings := Classify(html)

	assert.True(t, findings.OnlineDocument)
	assert.False(t, findings.WordProcessor)
	assert.Equal(t, uint64(56), findings.OnlineDocumentBytes)
	assert.Len(t, findings.Matches, 3)
}

func TestClassify_RichText(t *testing.T) {
	findings := Classify(`<font face="Arial">Hi</font>&nbsp;&nbsp;`)

	assert.True(t, findings.RichText)
	assert.Equal(t, uint64(38), findings.RichTextBytes)
	assert.Contains(t, findings.Matches, "rich text editor: non-breaking space entities (2 matches)")
}

func TestClassify_OverlapsAreCountedPerPattern(t *testing.T) {
	// The styled span is both an empty styled span and carries a font stack.
	html := `<span style="font-family:Arial,Helvetica,sans-serif"></span>`
	findings := Classify(html)

	stack := uint64(len(`font-family:Arial,Helvetica,sans-serif`))
	span := uint64(len(html))
	assert.Equal(t, stack+span, findings.EstimatedBloatBytes)
}

func TestClassify_SumsAcrossClasses(t *testing.T) {
	html := `<p class="MsoNormal">a</p><p dir="ltr">b</p><font>c</font>`
	findings := Classify(html)

	assert.True(t, findings.WordProcessor)
	assert.True(t, findings.OnlineDocument)
	assert.True(t, findings.RichText)
	assert.Equal(t,
		findings.WordProcessorBytes+findings.OnlineDocumentBytes+findings.RichTextBytes,
		findings.EstimatedBloatBytes)
}

func TestClassify_VendorArtifactBytes(t *testing.T) {
	tests := []struct {
		name          string
		html          string
		wordProcessor bool
		bytes         uint64
	}{
		{
			name:          "style rule ends at the brace",
			html:          `<style>td{mso-line-height-rule:exactly}</style><p class="x">Hello world</p>`,
			wordProcessor: true,
			bytes:         uint64(len(`mso-line-height-rule:exactly`)),
		},
		{
			name:          "only the vendor class token counts",
			html:          `<p class="MsoNormal intro">Hello</p>`,
			wordProcessor: true,
			bytes:         uint64(len(`MsoNormal `)),
		},
		{
			name:          "whole attribute when every class is vendor",
			html:          `<p class="MsoNormal MsoListParagraph">Hello</p>`,
			wordProcessor: true,
			bytes:         uint64(len(` class="MsoNormal MsoListParagraph"`)),
		},
		{
			name: "vendor-like suffix",
			html: `<p class="intro-MsoLike">Hello</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Classify(tt.html)

			assert.Equal(t, tt.wordProcessor, findings.WordProcessor)
			assert.Equal(t, tt.bytes, findings.WordProcessorBytes)
		})
	}
}

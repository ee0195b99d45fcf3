package htmlscan

import (
	"strings"
	"testing"

	"email_size_analyzer/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestScanStructure(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected models.StructureMetrics
	}{
		{
			name:     "empty input",
			html:     "",
			expected: models.StructureMetrics{},
		},
		{
			name:     "plain text",
			html:     "just words, no tags",
			expected: models.StructureMetrics{},
		},
		{
			name: "nested layout",
			html: `<table><tr><td><div><span>hi</span></div></td></tr></table>`,
			expected: models.StructureMetrics{
				TableCount:      1,
				DivCount:        1,
				SpanCount:       1,
				TotalNodes:      10,
				MaxNestingDepth: 5,
			},
		},
		{
			name: "void elements do not nest",
			html: `<div><br><img src="a.png"><hr/><p>x</p></div>`,
			expected: models.StructureMetrics{
				DivCount:        1,
				TotalNodes:      7,
				MaxNestingDepth: 2,
			},
		},
		{
			name: "self closing tags do not nest",
			html: `<div><custom /><custom/></div>`,
			expected: models.StructureMetrics{
				DivCount:        1,
				TotalNodes:      4,
				MaxNestingDepth: 1,
			},
		},
		{
			name: "unbalanced markup recovers",
			html: `<div></div></div><div><div>`,
			expected: models.StructureMetrics{
				DivCount:        3,
				TotalNodes:      5,
				MaxNestingDepth: 2,
			},
		},
		{
			name: "upper case tags",
			html: `<TABLE><TR><TD>x</TD></TR></TABLE>`,
			expected: models.StructureMetrics{
				TableCount:      1,
				TotalNodes:      6,
				MaxNestingDepth: 3,
			},
		},
		{
			name: "inline styles",
			html: `<p style="color:red">a</p><p style='x'>b</p>`,
			expected: models.StructureMetrics{
				TotalNodes:       4,
				MaxNestingDepth:  1,
				InlineStyleCount: 2,
				InlineStyleBytes: 26,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScanStructure(tt.html))
		})
	}
}

func TestScanStructure_OnlyClosingTags(t *testing.T) {
	for _, html := range []string{
		"</div></div></div>",
		strings.Repeat("</table>", 500),
		"</span></p></td></tr></table></body></html>",
	} {
		assert.NotPanics(t, func() {
			m := ScanStructure(html)
			assert.Equal(t, uint32(0), m.MaxNestingDepth)
		})
	}
}

func TestScanStructure_DeepNesting(t *testing.T) {
	html := strings.Repeat("<div>", 20) + "x" + strings.Repeat("</div>", 20)
	m := ScanStructure(html)

	assert.Equal(t, uint32(20), m.MaxNestingDepth)
	assert.Equal(t, uint32(20), m.DivCount)
	assert.Equal(t, uint32(40), m.TotalNodes)
}

func TestScanStructure_IgnoresCommentsAndDoctype(t *testing.T) {
	m := ScanStructure(`<!DOCTYPE html><!-- note --><p>x</p>`)

	assert.Equal(t, uint32(2), m.TotalNodes)
	assert.Equal(t, uint32(1), m.MaxNestingDepth)
}

// Package htmlscan inspects raw email HTML without building a DOM. Every
// function here accepts malformed markup and never fails.
package htmlscan

import (
	"strings"

	"email_size_analyzer/internal/domain/models"
)

// ScanStructure counts tags, inline styles and the deepest run of open
// non-void elements. Closing tags on an empty stack are ignored, so the depth
// never goes negative.
func ScanStructure(src string) models.StructureMetrics {
	var m models.StructureMetrics
	depth := uint32(0)

	for _, match := range tagExpr.FindAllStringSubmatch(src, -1) {
		closing := match[1] == "/"
		name := strings.ToLower(match[2])
		attrs := match[3]

		m.TotalNodes++

		_, void := voidElements[name]
		selfClosing := strings.HasSuffix(strings.TrimSpace(attrs), "/")

		if closing {
			if !void && depth > 0 {
				depth--
			}
			continue
		}

		switch name {
		case "table":
			m.TableCount++
		case "div":
			m.DivCount++
		case "span":
			m.SpanCount++
		}

		if void || selfClosing {
			continue
		}
		depth++
		if depth > m.MaxNestingDepth {
			m.MaxNestingDepth = depth
		}
	}

	for _, style := range inlineStyleExpr.FindAllString(src, -1) {
		m.InlineStyleCount++
		m.InlineStyleBytes += uint64(len(strings.TrimLeft(style, " \t\r\n\f")))
	}

	return m
}

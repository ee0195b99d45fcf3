package service

import (
	"fmt"
	"sort"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/bytemeter"
	"email_size_analyzer/internal/pkg/htmlscan"
)

// Limits above which a suggestion fires.
const (
	maxTables       = 10
	maxInlineStyles = 50
	maxNestingDepth = 15
	maxEmptySpans   = 5
	maxComments     = 2
	maxNbsp         = 20
	maxWords        = 800
)

// SavingsHeuristics are per-unit byte estimates attached to suggestions. They
// are presentation figures, not guarantees.
type SavingsHeuristics struct {
	BytesPerExcessTable        uint64
	BytesPerExcessInlineStyle  uint64
	BytesPerExcessNestingLevel uint64
	BytesPerEmptySpan          uint64
	BytesPerComment            uint64
	BytesPerNbsp               uint64
	BytesPerExcessWord         uint64
}

func DefaultSavingsHeuristics() SavingsHeuristics {
	return SavingsHeuristics{
		BytesPerExcessTable:        200,
		BytesPerExcessInlineStyle:  40,
		BytesPerExcessNestingLevel: 100,
		BytesPerEmptySpan:          20,
		BytesPerComment:            60,
		BytesPerNbsp:               5,
		BytesPerExcessWord:         6,
	}
}

// Suggest evaluates every rule independently and returns the ones that fire,
// most urgent first. Rules of equal priority keep their evaluation order.
func Suggest(m models.StructureMetrics, f models.SourceFindings, wordCount uint32, html string, h SavingsHeuristics) []models.Suggestion {
	suggestions := []models.Suggestion{}
	add := func(s models.Suggestion) {
		suggestions = append(suggestions, s)
	}

	if f.WordProcessor {
		add(models.Suggestion{
			ID:                    "remove-word-processor-markup",
			Category:              models.CategoryMetadata,
			Priority:              1,
			Description:           fmt.Sprintf("Word processor formatting detected (%s of vendor markup)", bytemeter.Label(f.WordProcessorBytes)),
			EstimatedSavingsBytes: f.WordProcessorBytes,
			Action:                "Run the sanitizer or paste the copy as plain text before formatting it",
		})
	}

	if f.OnlineDocument {
		add(models.Suggestion{
			ID:                    "remove-online-document-markup",
			Category:              models.CategoryMetadata,
			Priority:              1,
			Description:           fmt.Sprintf("Online document metadata detected (%s of editor markers)", bytemeter.Label(f.OnlineDocumentBytes)),
			EstimatedSavingsBytes: f.OnlineDocumentBytes,
			Action:                "Strip editor ids, generated classes and direction attributes with the sanitizer",
		})
	}

	if count, size := htmlscan.DataURIImages(html); count > 0 {
		add(models.Suggestion{
			ID:                    "externalize-inline-images",
			Category:              models.CategoryImages,
			Priority:              1,
			Description:           fmt.Sprintf("%d image(s) embedded as data URIs (%s)", count, bytemeter.Label(size)),
			EstimatedSavingsBytes: size,
			Action:                "Host images and reference them by URL instead of embedding base64 data",
		})
	}

	if m.TableCount > maxTables {
		excess := uint64(m.TableCount - maxTables)
		add(models.Suggestion{
			ID:                    "reduce-tables",
			Category:              models.CategoryStructure,
			Priority:              1,
			Description:           fmt.Sprintf("%d tables found (recommended: %d or fewer)", m.TableCount, maxTables),
			EstimatedSavingsBytes: excess * h.BytesPerExcessTable,
			Action:                "Merge adjacent layout tables and drop tables used only for spacing",
		})
	}

	if m.InlineStyleCount > maxInlineStyles {
		excess := uint64(m.InlineStyleCount - maxInlineStyles)
		add(models.Suggestion{
			ID:                    "consolidate-inline-styles",
			Category:              models.CategoryStyling,
			Priority:              2,
			Description:           fmt.Sprintf("%d inline style attributes (%s)", m.InlineStyleCount, bytemeter.Label(m.InlineStyleBytes)),
			EstimatedSavingsBytes: excess * h.BytesPerExcessInlineStyle,
			Action:                "Move repeated declarations into a <style> block or shorten them",
		})
	}

	if m.MaxNestingDepth > maxNestingDepth {
		excess := uint64(m.MaxNestingDepth - maxNestingDepth)
		add(models.Suggestion{
			ID:                    "flatten-nesting",
			Category:              models.CategoryStructure,
			Priority:              2,
			Description:           fmt.Sprintf("Elements nest %d levels deep (recommended: %d or fewer)", m.MaxNestingDepth, maxNestingDepth),
			EstimatedSavingsBytes: excess * h.BytesPerExcessNestingLevel,
			Action:                "Remove wrapper elements that carry no styling",
		})
	}

	if spans := htmlscan.CountEmptySpans(html); spans > maxEmptySpans {
		add(models.Suggestion{
			ID:                    "remove-empty-spans",
			Category:              models.CategoryContent,
			Priority:              3,
			Description:           fmt.Sprintf("%d empty span elements", spans),
			EstimatedSavingsBytes: uint64(spans) * h.BytesPerEmptySpan,
			Action:                "Delete spans that wrap no content",
		})
	}

	if comments := htmlscan.CountComments(html); comments > maxComments {
		add(models.Suggestion{
			ID:                    "remove-comments",
			Category:              models.CategoryContent,
			Priority:              3,
			Description:           fmt.Sprintf("%d HTML comments", comments),
			EstimatedSavingsBytes: uint64(comments) * h.BytesPerComment,
			Action:                "Remove comments other than conditional blocks",
		})
	}

	if nbsp := htmlscan.CountNbsp(html); nbsp > maxNbsp {
		add(models.Suggestion{
			ID:                    "replace-nbsp",
			Category:              models.CategoryContent,
			Priority:              3,
			Description:           fmt.Sprintf("%d non-breaking space entities", nbsp),
			EstimatedSavingsBytes: uint64(nbsp) * h.BytesPerNbsp,
			Action:                "Replace &nbsp; with regular spaces where wrapping is acceptable",
		})
	}

	if wordCount > maxWords {
		excess := uint64(wordCount - maxWords)
		add(models.Suggestion{
			ID:                    "shorten-copy",
			Category:              models.CategoryContent,
			Priority:              2,
			Description:           fmt.Sprintf("%d words of copy (recommended: %d or fewer)", wordCount, maxWords),
			EstimatedSavingsBytes: excess * h.BytesPerExcessWord,
			Action:                "Trim the copy or link to a landing page for the long form",
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})

	return suggestions
}

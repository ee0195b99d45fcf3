package service

import (
	"strings"
	"testing"

	"email_size_analyzer/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionIDs(s []models.Suggestion) []string {
	ids := make([]string, 0, len(s))
	for _, v := range s {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestSuggest_CleanInputHasNoSuggestions(t *testing.T) {
	got := Suggest(models.StructureMetrics{TableCount: 3}, models.SourceFindings{}, 120, "<p>hi</p>", DefaultSavingsHeuristics())

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggest_TablesAndInlineStyles(t *testing.T) {
	m := models.StructureMetrics{TableCount: 12, InlineStyleCount: 60, InlineStyleBytes: 1800}

	got := Suggest(m, models.SourceFindings{}, 0, "", DefaultSavingsHeuristics())

	require.Len(t, got, 2)
	assert.Equal(t, "reduce-tables", got[0].ID)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, models.CategoryStructure, got[0].Category)
	assert.Equal(t, uint64(400), got[0].EstimatedSavingsBytes)
	assert.Contains(t, got[0].Description, "12 tables")

	assert.Equal(t, "consolidate-inline-styles", got[1].ID)
	assert.Equal(t, 2, got[1].Priority)
	assert.Equal(t, models.CategoryStyling, got[1].Category)
	assert.Equal(t, uint64(400), got[1].EstimatedSavingsBytes)
}

func TestSuggest_ThresholdsAreExclusive(t *testing.T) {
	m := models.StructureMetrics{TableCount: 10, InlineStyleCount: 50, MaxNestingDepth: 15}
	html := strings.Repeat("<span></span>", 5) + strings.Repeat("<!-- x -->", 2) + strings.Repeat("&nbsp;", 20)

	got := Suggest(m, models.SourceFindings{}, 800, html, DefaultSavingsHeuristics())

	assert.Empty(t, got)
}

func TestSuggest_SourceFindings(t *testing.T) {
	f := models.SourceFindings{
		WordProcessor:       true,
		OnlineDocument:      true,
		WordProcessorBytes:  300,
		OnlineDocumentBytes: 120,
	}

	got := Suggest(models.StructureMetrics{}, f, 0, "", DefaultSavingsHeuristics())

	assert.Equal(t, []string{"remove-word-processor-markup", "remove-online-document-markup"}, suggestionIDs(got))
	assert.Equal(t, uint64(300), got[0].EstimatedSavingsBytes)
	assert.Equal(t, uint64(120), got[1].EstimatedSavingsBytes)
	for _, s := range got {
		assert.Equal(t, models.CategoryMetadata, s.Category)
	}
}

func TestSuggest_OrdersByPriority(t *testing.T) {
	m := models.StructureMetrics{MaxNestingDepth: 18, TableCount: 11}
	html := strings.Repeat("<span> </span>", 6) +
		`<img src="data:image/png;base64,iVBORw0KGgo=">`

	got := Suggest(m, models.SourceFindings{}, 900, html, DefaultSavingsHeuristics())

	assert.Equal(t, []string{
		"externalize-inline-images",
		"reduce-tables",
		"flatten-nesting",
		"shorten-copy",
		"remove-empty-spans",
	}, suggestionIDs(got))

	byID := map[string]models.Suggestion{}
	for _, s := range got {
		byID[s.ID] = s
	}
	assert.Equal(t, uint64(300), byID["flatten-nesting"].EstimatedSavingsBytes)
	assert.Equal(t, uint64(600), byID["shorten-copy"].EstimatedSavingsBytes)
	assert.Equal(t, uint64(120), byID["remove-empty-spans"].EstimatedSavingsBytes)
	assert.Equal(t, models.CategoryImages, byID["externalize-inline-images"].Category)
}

func TestSuggest_CustomHeuristics(t *testing.T) {
	h := DefaultSavingsHeuristics()
	h.BytesPerComment = 1
	h.BytesPerNbsp = 2

	html := strings.Repeat("<!-- note -->", 3) + strings.Repeat("&nbsp;", 21)
	got := Suggest(models.StructureMetrics{}, models.SourceFindings{}, 0, html, h)

	require.Len(t, got, 2)
	assert.Equal(t, "remove-comments", got[0].ID)
	assert.Equal(t, uint64(3), got[0].EstimatedSavingsBytes)
	assert.Equal(t, "replace-nbsp", got[1].ID)
	assert.Equal(t, uint64(42), got[1].EstimatedSavingsBytes)
}

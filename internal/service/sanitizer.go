package service

import (
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/bytemeter"
	"email_size_analyzer/internal/pkg/htmlscan"
	"email_size_analyzer/internal/pkg/metrics"
)

// Sanitize strips word-processor and online-document markup, empty spans and
// non-conditional comments, then collapses whitespace. The pass repeats until
// it stops changing the text, so sanitizing the output again is a no-op. A
// pass only deletes text or turns whitespace into single spaces, so the loop
// terminates and the result is never larger than the input.
func Sanitize(html string) (string, uint64) {
	before := bytemeter.SizeOf(html)
	cleaned := html

	for {
		next := sanitizePass(cleaned)
		if next == cleaned {
			break
		}
		cleaned = next
	}

	removed := before - bytemeter.SizeOf(cleaned)
	metrics.SanitizeBytesRemoved.Observe(float64(removed))
	return cleaned, removed
}

func sanitizePass(html string) string {
	for _, table := range []htmlscan.PatternTable{htmlscan.WordProcessorPatterns, htmlscan.OnlineDocumentPatterns} {
		for _, p := range table.Patterns {
			html = p.Remove(html)
		}
	}

	html = htmlscan.EmptySpanExpr.ReplaceAllString(html, "")

	html = htmlscan.CommentExpr.ReplaceAllStringFunc(html, func(comment string) string {
		if htmlscan.IsConditionalComment(comment) {
			return comment
		}
		return ""
	})

	return htmlscan.WhitespaceRun.ReplaceAllString(html, " ")
}

// SanitizeReport carries the cleaned markup with the verdicts measured before
// and after cleaning.
type SanitizeReport struct {
	CleanedHTML  string              `json:"cleaned_html"`
	BytesRemoved uint64              `json:"bytes_removed"`
	Before       *models.SizeVerdict `json:"before"`
	After        *models.SizeVerdict `json:"after"`
}

func (a *Analyzer) SanitizeAndMeasure(html string, opts AnalyzeOptions) *SanitizeReport {
	cleaned, removed := Sanitize(html)
	a.log.Debugf(`sanitizer removed %d bytes`, removed)

	return &SanitizeReport{
		CleanedHTML:  cleaned,
		BytesRemoved: removed,
		Before:       a.Analyze(html, opts),
		After:        a.Analyze(cleaned, opts),
	}
}

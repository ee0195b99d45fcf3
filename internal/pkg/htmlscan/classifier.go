package htmlscan

import (
	"fmt"

	"email_size_analyzer/internal/domain/models"
)

// Classify runs every pattern of every table over src. A table that matches at
// least once flags its source class; all matched bytes are summed, overlaps
// included.
func Classify(src string) models.SourceFindings {
	findings := models.SourceFindings{Matches: []string{}}

	for _, table := range Tables {
		matched, bloat := matchTable(src, table, &findings.Matches)
		if !matched {
			continue
		}
		findings.EstimatedBloatBytes += bloat

		switch table.Class {
		case SourceWordProcessor:
			findings.WordProcessor = true
			findings.WordProcessorBytes = bloat
		case SourceOnlineDocument:
			findings.OnlineDocument = true
			findings.OnlineDocumentBytes = bloat
		case SourceRichText:
			findings.RichText = true
			findings.RichTextBytes = bloat
		}
	}

	return findings
}

func matchTable(src string, table PatternTable, descriptions *[]string) (bool, uint64) {
	matched := false
	var bloat uint64

	for _, p := range table.Patterns {
		hits, size := p.Find(src)
		if hits == 0 {
			continue
		}
		matched = true
		bloat += size
		*descriptions = append(*descriptions, fmt.Sprintf("%s: %s (%d matches)", table.Class.Label(), p.Description, hits))
	}

	return matched, bloat
}

package service

import (
	"fmt"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/bytemeter"
	"email_size_analyzer/internal/pkg/htmlscan"
	"email_size_analyzer/internal/pkg/metrics"

	log "github.com/sirupsen/logrus"
)

type EmailSizeAnalyzer interface {
	Analyze(html string, opts AnalyzeOptions) *models.SizeVerdict
}

type AnalyzeOptions struct {
	Subject         string
	Preheader       string
	IncludeEnvelope bool
}

func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{IncludeEnvelope: true}
}

type Analyzer struct {
	log        *log.Logger
	heuristics SavingsHeuristics
	workers    int

	scanStructure func(string) models.StructureMetrics
	classify      func(string) models.SourceFindings
}

func NewAnalyzer(log *log.Logger, heuristics SavingsHeuristics, workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		log:           log,
		heuristics:    heuristics,
		workers:       workers,
		scanStructure: htmlscan.ScanStructure,
		classify:      htmlscan.Classify,
	}
}

// StatusFor maps an estimated wire size to its status. Only the size matters.
func StatusFor(total uint64) models.SizeStatus {
	switch {
	case total <= models.OptimalMaxBytes:
		return models.StatusOptimal
	case total <= models.TargetMaxBytes:
		return models.StatusGood
	case total <= models.WarningMaxBytes:
		return models.StatusWarning
	case total < models.HardLimitBytes:
		return models.StatusDanger
	default:
		return models.StatusClipped
	}
}

// Analyze never panics and never fails: an internal fault turns into a
// warning verdict with zeroed metrics and Error set.
func (a *Analyzer) Analyze(html string, opts AnalyzeOptions) (verdict *models.SizeVerdict) {
	a.log.Debug(`email size analysis started...`)

	defer func() {
		if rec := recover(); rec != nil {
			a.log.WithField(`panic`, fmt.Sprintf(`%v`, rec)).Error(`email size analysis failed, returning fallback verdict`)
			verdict = fallbackVerdict(fmt.Sprintf(`analysis failed: %v`, rec))
		}
		metrics.EmailAnalysesTotal.WithLabelValues(string(verdict.Status)).Inc()
		metrics.EmailAnalyzedBytes.Observe(float64(verdict.TotalBytes))
		a.log.Debug(`email size analysis ended...`)
	}()

	raw := bytemeter.SizeOf(html)
	var envelope uint64
	if opts.IncludeEnvelope {
		envelope = EstimateEnvelope(opts.Subject, opts.Preheader)
	}
	total := raw + envelope

	structure := a.scanStructure(html)
	source := a.classify(html)
	text := htmlscan.VisibleText(html)
	words := htmlscan.WordCount(text)

	var remaining uint64
	if total < models.HardLimitBytes {
		remaining = models.HardLimitBytes - total
	}

	percent := total * 100 / models.HardLimitBytes
	if percent > 255 {
		percent = 255
	}

	return &models.SizeVerdict{
		TotalBytes:         total,
		RawBytes:           raw,
		EnvelopeBytes:      envelope,
		TotalSizeLabel:     bytemeter.Label(total),
		Status:             StatusFor(total),
		PercentOfHardLimit: uint8(percent),
		BytesRemaining:     remaining,
		Structure:          structure,
		Source:             source,
		Suggestions:        Suggest(structure, source, words, html, a.heuristics),
		WordCount:          words,
		CharCount:          bytemeter.CharCount(text),
	}
}

func fallbackVerdict(reason string) *models.SizeVerdict {
	return &models.SizeVerdict{
		Status:         models.StatusWarning,
		TotalSizeLabel: bytemeter.Label(0),
		Source:         models.SourceFindings{Matches: []string{}},
		Suggestions:    []models.Suggestion{},
		Error:          reason,
	}
}

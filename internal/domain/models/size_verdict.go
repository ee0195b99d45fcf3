package models

// Size thresholds in bytes. A verdict's status depends on these and nothing else.
const (
	OptimalMaxBytes uint64 = 60 * 1024
	TargetMaxBytes  uint64 = 90 * 1024
	WarningMaxBytes uint64 = 100 * 1024
	HardLimitBytes  uint64 = 102 * 1024
)

type SizeStatus string

const (
	StatusOptimal SizeStatus = "optimal"
	StatusGood    SizeStatus = "good"
	StatusWarning SizeStatus = "warning"
	StatusDanger  SizeStatus = "danger"
	StatusClipped SizeStatus = "clipped"
)

// Severity ranks a status, 0 being the best.
func (s SizeStatus) Severity() int {
	switch s {
	case StatusOptimal:
		return 0
	case StatusGood:
		return 1
	case StatusWarning:
		return 2
	case StatusDanger:
		return 3
	case StatusClipped:
		return 4
	}
	return -1
}

type SuggestionCategory string

const (
	CategoryStructure SuggestionCategory = "structure"
	CategoryContent   SuggestionCategory = "content"
	CategoryStyling   SuggestionCategory = "styling"
	CategoryImages    SuggestionCategory = "images"
	CategoryMetadata  SuggestionCategory = "metadata"
)

type StructureMetrics struct {
	TableCount       uint32 `json:"table_count"`
	DivCount         uint32 `json:"div_count"`
	SpanCount        uint32 `json:"span_count"`
	TotalNodes       uint32 `json:"total_nodes"`
	MaxNestingDepth  uint32 `json:"max_nesting_depth"`
	InlineStyleCount uint32 `json:"inline_style_count"`
	InlineStyleBytes uint64 `json:"inline_style_bytes"`
}

// SourceFindings flags paste artifacts. EstimatedBloatBytes sums every pattern
// match and may count overlapping matches more than once.
type SourceFindings struct {
	WordProcessor       bool     `json:"word_processor"`
	OnlineDocument      bool     `json:"online_document"`
	RichText            bool     `json:"rich_text"`
	Matches             []string `json:"matches"`
	EstimatedBloatBytes uint64   `json:"estimated_bloat_bytes"`
	WordProcessorBytes  uint64   `json:"word_processor_bytes"`
	OnlineDocumentBytes uint64   `json:"online_document_bytes"`
	RichTextBytes       uint64   `json:"rich_text_bytes"`
}

type Suggestion struct {
	ID                    string             `json:"id"`
	Category              SuggestionCategory `json:"category"`
	Priority              int                `json:"priority"`
	Description           string             `json:"description"`
	EstimatedSavingsBytes uint64             `json:"estimated_savings_bytes"`
	Action                string             `json:"action"`
}

type SizeVerdict struct {
	TotalBytes         uint64           `json:"total_bytes"`
	RawBytes           uint64           `json:"raw_bytes"`
	EnvelopeBytes      uint64           `json:"envelope_bytes"`
	TotalSizeLabel     string           `json:"total_size_label"`
	Status             SizeStatus       `json:"status"`
	PercentOfHardLimit uint8            `json:"percent_of_hard_limit"`
	BytesRemaining     uint64           `json:"bytes_remaining"`
	Structure          StructureMetrics `json:"structure"`
	Source             SourceFindings   `json:"source"`
	Suggestions        []Suggestion     `json:"suggestions"`
	WordCount          uint32           `json:"word_count"`
	CharCount          uint32           `json:"char_count"`
	Error              string           `json:"error,omitempty"`
}

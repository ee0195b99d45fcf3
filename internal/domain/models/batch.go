package models

type Variant struct {
	ID        string `json:"id"`
	HTML      string `json:"html"`
	Subject   string `json:"subject,omitempty"`
	Preheader string `json:"preheader,omitempty"`
}

type VariantVerdict struct {
	ID      string       `json:"id"`
	Verdict *SizeVerdict `json:"verdict"`
}

// BatchResult lists verdicts ascending by total size.
type BatchResult struct {
	Results       []VariantVerdict `json:"results"`
	RecommendedID string           `json:"recommended_id"`
}

package insights

// Insight severity and confidence come back from the model verbatim; they
// are not computed locally.
type Insight struct {
	Category   string  `json:"category"`
	Title      string  `json:"title"`
	Detail     string  `json:"detail"`
	Severity   string  `json:"severity"`
	Confidence float64 `json:"confidence"`
}

package evaluation

import "consentlens/internal/generation"

// Result is the outcome of a what-if analysis. Ephemeral: computed on demand,
// returned to the caller, never persisted.
type Result struct {
	OriginalOutput     string                   `json:"original_output"`
	ModifiedOutput     string                   `json:"modified_output"`
	OriginalConfidence float64                  `json:"original_confidence"`
	ModifiedConfidence float64                  `json:"modified_confidence"`
	SimilarityScore    float64                  `json:"similarity_score"`
	ConfidenceDelta    float64                  `json:"confidence_delta"`
	LatencyDiffMS      float64                  `json:"latency_diff_ms"`
	AttributionChanges []generation.Attribution `json:"attribution_changes"`
}

// Metrics summarizes the distance between two responses with unsigned
// magnitudes, for side-by-side display.
type Metrics struct {
	SimilarityScore    float64 `json:"similarity_score"`
	ConfidenceDelta    float64 `json:"confidence_delta"`
	LatencyDiffMS      float64 `json:"latency_diff_ms"`
	OutputLengthDiff   int     `json:"output_length_diff"`
	AttributionChanges int     `json:"attribution_changes"`
}

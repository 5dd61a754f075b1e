// Package models provides data structures for the data processing pipeline.
package models

// ProcessingReport summarizes a single pipeline run over an input sequence.
type ProcessingReport struct {
	// InputSize is the number of elements in the input sequence
	InputSize int

	// DistinctCount is the number of distinct values found
	DistinctCount int

	// DuplicatesRemoved is the number of input elements dropped as duplicates
	DuplicatesRemoved int

	// Values are the distinct input values, sorted ascending
	Values []int
}

// NewProcessingReport builds a ProcessingReport from an input sequence and
// the deduplicated sorted values produced from it.
func NewProcessingReport(input, values []int) *ProcessingReport {
	return &ProcessingReport{
		InputSize:         len(input),
		DistinctCount:     len(values),
		DuplicatesRemoved: len(input) - len(values),
		Values:            values,
	}
}

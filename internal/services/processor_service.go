// Package services contains business logic and coordination between components
package services

import (
	"github.com/powerhome/pac-data-processor/internal/models"
	"github.com/powerhome/pac-data-processor/internal/validators"
	"github.com/powerhome/pac-data-processor/pkg/sequence"
	"go.uber.org/zap"
)

// ProcessorService runs the deduplicate-and-sort pipeline over input
// sequences
type ProcessorService struct {
	logger    *zap.Logger
	validator *validators.InputValidator
}

// NewProcessorService creates a new ProcessorService
func NewProcessorService(logger *zap.Logger) *ProcessorService {
	return &ProcessorService{
		logger:    logger,
		validator: validators.NewInputValidator(logger),
	}
}

// Process deduplicates and sorts the input sequence and returns a report of
// the run. The operation is total: an empty input produces an empty report
// and no error is possible for any integer sequence.
func (s *ProcessorService) Process(input []int) *models.ProcessingReport {
	if !s.validator.NonEmpty(input) {
		s.logger.Debug("empty input sequence, nothing to process")
		return models.NewProcessingReport(input, nil)
	}

	values := sequence.DeduplicateAndSort(input)
	report := models.NewProcessingReport(input, values)

	s.logger.Debug("processed sequence",
		zap.Int("inputSize", report.InputSize),
		zap.Int("distinctCount", report.DistinctCount),
		zap.Int("duplicatesRemoved", report.DuplicatesRemoved))

	return report
}

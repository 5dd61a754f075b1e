package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProcess(t *testing.T) {
	svc := NewProcessorService(zap.NewNop())

	t.Run("deduplicates and sorts", func(t *testing.T) {
		report := svc.Process([]int{3, 1, 2, 3, 1})
		assert.Equal(t, 5, report.InputSize)
		assert.Equal(t, 3, report.DistinctCount)
		assert.Equal(t, 2, report.DuplicatesRemoved)
		assert.Equal(t, []int{1, 2, 3}, report.Values)
	})

	t.Run("empty input yields empty report", func(t *testing.T) {
		report := svc.Process([]int{})
		assert.Equal(t, 0, report.InputSize)
		assert.Equal(t, 0, report.DistinctCount)
		assert.Equal(t, 0, report.DuplicatesRemoved)
		assert.Empty(t, report.Values)
	})

	t.Run("single repeated value", func(t *testing.T) {
		report := svc.Process([]int{5, 5, 5})
		assert.Equal(t, []int{5}, report.Values)
		assert.Equal(t, 2, report.DuplicatesRemoved)
	})

	t.Run("negative values order normally", func(t *testing.T) {
		report := svc.Process([]int{-1, 0, -1, 2})
		assert.Equal(t, []int{-1, 0, 2}, report.Values)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := []int{9, 1, 9, 4}
		_ = svc.Process(input)
		assert.Equal(t, []int{9, 1, 9, 4}, input)
	})
}

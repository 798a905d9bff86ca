package inference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicConfidence(t *testing.T) {
	t.Run("empty text stays at base", func(t *testing.T) {
		assert.InDelta(t, 0.2, HeuristicConfidence(""), 0.001)
	})

	t.Run("date pattern raises score", func(t *testing.T) {
		withDate := HeuristicConfidence("15/03/2024")
		without := HeuristicConfidence("12 34 56")
		assert.Greater(t, withDate, without)
	})

	t.Run("month word raises score", func(t *testing.T) {
		assert.Greater(t,
			HeuristicConfidence("March order"),
			HeuristicConfidence("ZZZ ###"))
	})

	t.Run("rich document text scores high", func(t *testing.T) {
		text := "Invoice issued on 15 March 2024 for consulting services rendered. " +
			strings.Repeat("Payment due within thirty days of receipt. ", 3)
		assert.GreaterOrEqual(t, HeuristicConfidence(text), float32(0.7))
	})

	t.Run("never exceeds one", func(t *testing.T) {
		text := strings.Repeat("January 15/03/2024 readable words here. ", 20)
		assert.LessOrEqual(t, HeuristicConfidence(text), float32(1.0))
	})
}

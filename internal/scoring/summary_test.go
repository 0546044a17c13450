package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeBands(t *testing.T) {
	tests := []struct {
		score       int
		performance string
	}{
		{100, "exceptional"},
		{90, "exceptional"},
		{89, "excellent"},
		{80, "excellent"},
		{79, "good"},
		{70, "good"},
		{69, "satisfactory"},
		{60, "satisfactory"},
		{59, "needs improvement"},
		{0, "needs improvement"},
		{-5, "needs improvement"},
	}

	for _, tt := range tests {
		got := Summarize(tt.score)
		assert.Contains(t, got, "demonstrates "+tt.performance+" technical knowledge", "score %d", tt.score)
	}
}

func TestSummarizeEmbedsScore(t *testing.T) {
	assert.Contains(t, Summarize(85), "overall score of 85%")
}

func TestSummarizeRecommendations(t *testing.T) {
	assert.Contains(t, Summarize(95), "Outstanding candidate, highly recommended for senior positions.")
	assert.Contains(t, Summarize(85), "Strong candidate, highly recommended for the position.")
	assert.Contains(t, Summarize(75), "Solid candidate with good potential.")
	assert.Contains(t, Summarize(65), "Suitable candidate with room for growth.")
	assert.Contains(t, Summarize(40), "May need additional training and support.")
}

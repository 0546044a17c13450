package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankOrder(t *testing.T) {
	b := Default()
	require.Equal(t, 6, b.Len())

	wantDifficulties := []model.Difficulty{
		model.DifficultyEasy, model.DifficultyEasy,
		model.DifficultyMedium, model.DifficultyMedium,
		model.DifficultyHard, model.DifficultyHard,
	}
	wantLimits := []int{20, 20, 60, 60, 120, 120}

	for i, q := range b.All() {
		assert.Equal(t, i+1, q.ID)
		assert.Equal(t, wantDifficulties[i], q.Difficulty)
		assert.Equal(t, wantLimits[i], q.TimeLimit)
		assert.NotEmpty(t, q.Text)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	b := Default()
	qs := b.All()
	qs[0].Text = "mutated"
	assert.NotEqual(t, "mutated", b.At(0).Text)
}

func TestLoadFile(t *testing.T) {
	path := writeBank(t, `
easy:
  - id: 10
    question: "What is a slice?"
    time_limit: 15
medium:
  - id: 20
    question: "Explain goroutines."
    time_limit: 45
hard:
  - id: 30
    question: "Design a rate limiter."
    time_limit: 90
`)
	b, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())
	assert.Equal(t, 10, b.At(0).ID)
	assert.Equal(t, model.DifficultyEasy, b.At(0).Difficulty)
	assert.Equal(t, model.DifficultyMedium, b.At(1).Difficulty)
	assert.Equal(t, model.DifficultyHard, b.At(2).Difficulty)
	assert.Equal(t, 90, b.At(2).TimeLimit)
}

func TestLoadFileRejectsDuplicateIDs(t *testing.T) {
	path := writeBank(t, `
easy:
  - id: 1
    question: "a"
    time_limit: 10
medium:
  - id: 1
    question: "b"
    time_limit: 10
`)
	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "duplicate question id")
}

func TestLoadFileRejectsBadTimeLimit(t *testing.T) {
	path := writeBank(t, `
easy:
  - id: 1
    question: "a"
    time_limit: 0
`)
	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "time limit")
}

func TestLoadFileRejectsEmptyBank(t *testing.T) {
	path := writeBank(t, "easy: []\n")
	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "empty")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

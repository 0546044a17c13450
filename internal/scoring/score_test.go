package scoring

import (
	"strings"
	"testing"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestScoreKnownExample(t *testing.T) {
	// base=1.4, keyword bonus=3 ("React"), time bonus=11.25, easy multiplier
	got := Score("React is great", model.DifficultyEasy, 5, 20)
	assert.Equal(t, 16, got)
}

func TestScoreEmptyAnswer(t *testing.T) {
	// base=0, no keywords; only the time bonus remains
	got := Score("", model.DifficultyEasy, 20, 20)
	assert.Equal(t, 0, got)

	got = Score("", model.DifficultyEasy, 0, 20)
	assert.Equal(t, 15, got) // full time bonus, rounded
}

func TestScoreRange(t *testing.T) {
	answers := []string{
		"",
		"short",
		strings.Repeat("architecture performance optimization security database ", 50),
		"React Node JavaScript API component async function event loop",
	}
	difficulties := []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}

	for _, a := range answers {
		for _, d := range difficulties {
			for _, spent := range []int{0, 10, 20, 120, 500} {
				got := Score(a, d, spent, 120)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)
			}
		}
	}
}

func TestScoreMonotonicInLength(t *testing.T) {
	// longer answers never score lower, up to the length cap
	prev := -1
	for n := 0; n <= 200; n += 10 {
		got := Score(strings.Repeat("x", n), model.DifficultyEasy, 10, 20)
		assert.GreaterOrEqual(t, got, prev, "length %d", n)
		prev = got
	}
}

func TestScoreNonIncreasingInTimeSpent(t *testing.T) {
	prev := 101
	for spent := 0; spent <= 60; spent += 5 {
		got := Score("a fixed answer about hooks", model.DifficultyMedium, spent, 60)
		assert.LessOrEqual(t, got, prev, "time spent %d", spent)
		prev = got
	}
}

func TestScoreNoTimeBonusAtOrPastLimit(t *testing.T) {
	atLimit := Score("answer", model.DifficultyEasy, 20, 20)
	pastLimit := Score("answer", model.DifficultyEasy, 25, 20)
	assert.Equal(t, atLimit, pastLimit)
}

func TestScoreKeywordsCaseInsensitiveAndSubstring(t *testing.T) {
	lower := Score("react react react", model.DifficultyEasy, 20, 20)
	upper := Score("REACT REACT REACT", model.DifficultyEasy, 20, 20)
	assert.Equal(t, lower, upper)

	// substring matches count: "css" inside a longer token still scores
	with := Score("xcssx", model.DifficultyEasy, 20, 20)
	without := Score("xzzzx", model.DifficultyEasy, 20, 20)
	assert.Equal(t, without+3, with)
}

func TestScoreDifficultyMultiplier(t *testing.T) {
	easy := Score("API", model.DifficultyEasy, 20, 20)
	medium := Score("API", model.DifficultyMedium, 20, 20)
	hard := Score("API", model.DifficultyHard, 20, 20)
	// base 0.3 + bonus 3 = 3.3 raw
	assert.Equal(t, 3, easy)
	assert.Equal(t, 7, medium)
	assert.Equal(t, 13, hard)
}

func TestScoreClampedAt100(t *testing.T) {
	long := strings.Repeat("architecture security performance database server client ", 40)
	assert.Equal(t, 100, Score(long, model.DifficultyHard, 0, 120))
}

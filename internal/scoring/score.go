package scoring

import (
	"math"
	"strings"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
)

// keywords earn a flat bonus per case-insensitive occurrence anywhere in the
// answer. Substring matches count: raw substring counting is intentional.
var keywords = []string{
	"react", "node", "javascript", "api", "component", "async", "function",
	"event", "loop", "architecture", "state", "props", "hooks", "dom", "css",
	"html", "database", "server", "client", "responsive", "performance",
	"optimization", "security",
}

// Score rates an answer on a 0-100 scale from its length, technical keyword
// density, remaining time and question difficulty:
//
//	base     = min(len/10, 20)
//	keywords = 3 per occurrence
//	time     = (limit-spent)/limit * 15, only when spent < limit
//	result   = round((base + keywords + time) * multiplier), capped at 100
//
// where the multiplier is 1 for easy, 2 for medium and 4 for hard.
func Score(answer string, difficulty model.Difficulty, timeSpent, timeLimit int) int {
	base := math.Min(float64(len(answer))/10, 20)

	lower := strings.ToLower(answer)
	matches := 0
	for _, kw := range keywords {
		matches += strings.Count(lower, kw)
	}
	keywordBonus := float64(matches * 3)

	var timeBonus float64
	if timeSpent < timeLimit {
		timeBonus = float64(timeLimit-timeSpent) / float64(timeLimit) * 15
	}

	multiplier := 1.0
	switch difficulty {
	case model.DifficultyMedium:
		multiplier = 2
	case model.DifficultyHard:
		multiplier = 4
	}

	score := int(math.Round((base + keywordBonus + timeBonus) * multiplier))
	if score > 100 {
		score = 100
	}
	return score
}

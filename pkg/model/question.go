package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID         int        `json:"id" yaml:"id"`
	Text       string     `json:"question" yaml:"question"`
	TimeLimit  int        `json:"time_limit" yaml:"time_limit"` // seconds
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
}

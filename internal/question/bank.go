package question

import (
	"fmt"
	"os"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"gopkg.in/yaml.v3"
)

// Bank is the fixed, ordered list of interview questions: easy questions
// first, then medium, then hard, in authoring order. Immutable after load.
type Bank struct {
	questions []model.Question
}

type bankFile struct {
	Easy   []model.Question `yaml:"easy"`
	Medium []model.Question `yaml:"medium"`
	Hard   []model.Question `yaml:"hard"`
}

// Default returns the built-in six question bank.
func Default() *Bank {
	b, err := build(bankFile{
		Easy: []model.Question{
			{ID: 1, Text: "What is React and why is it popular for frontend development?", TimeLimit: 20},
			{ID: 2, Text: "Explain the difference between let, const, and var in JavaScript.", TimeLimit: 20},
		},
		Medium: []model.Question{
			{ID: 3, Text: "How do React hooks work and what problem do they solve?", TimeLimit: 60},
			{ID: 4, Text: "Explain the Node.js event loop and how it handles asynchronous operations.", TimeLimit: 60},
		},
		Hard: []model.Question{
			{ID: 5, Text: "Design a scalable architecture for a real-time chat application using React and Node.js.", TimeLimit: 120},
			{ID: 6, Text: "How would you optimize a React application's performance for large datasets?", TimeLimit: 120},
		},
	})
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFile reads a question bank from a YAML file with easy/medium/hard groups.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse questions file: %w", err)
	}
	return build(f)
}

func build(f bankFile) (*Bank, error) {
	groups := []struct {
		difficulty model.Difficulty
		questions  []model.Question
	}{
		{model.DifficultyEasy, f.Easy},
		{model.DifficultyMedium, f.Medium},
		{model.DifficultyHard, f.Hard},
	}

	var all []model.Question
	seen := make(map[int]bool)
	for _, g := range groups {
		for _, q := range g.questions {
			q.Difficulty = g.difficulty
			if q.Text == "" {
				return nil, fmt.Errorf("question %d: empty text", q.ID)
			}
			if q.TimeLimit <= 0 {
				return nil, fmt.Errorf("question %d: time limit must be positive", q.ID)
			}
			if seen[q.ID] {
				return nil, fmt.Errorf("duplicate question id %d", q.ID)
			}
			seen[q.ID] = true
			all = append(all, q)
		}
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	return &Bank{questions: all}, nil
}

// All returns every question in interview order.
func (b *Bank) All() []model.Question {
	out := make([]model.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// At returns the question at the given position in interview order.
func (b *Bank) At(i int) model.Question {
	return b.questions[i]
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

package candidate

import (
	"time"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
)

// seedRecords are the fixed example candidates every fresh dashboard shows.
// They are never written back to persistence.
func seedRecords() []model.CandidateRecord {
	return []model.CandidateRecord{
		{
			ID:             "sample-1",
			Name:           "John Doe",
			Email:          "john.doe@example.com",
			Phone:          "+1-555-0123",
			ResumeFileName: "john_doe_resume.pdf",
			InterviewDate:  time.Date(2025, 10, 1, 10, 30, 0, 0, time.UTC),
			Status:         model.StatusCompleted,
			TotalScore:     85,
			Answers: []model.Answer{
				{
					QuestionID: 1,
					Text:       "React is a JavaScript library for building user interfaces, particularly for web applications. It's popular because of its component-based architecture, virtual DOM for efficient updates, and strong ecosystem.",
					Score:      18,
					TimeSpent:  18,
				},
				{
					QuestionID: 2,
					Text:       "let and const are block-scoped while var is function-scoped. const cannot be reassigned after declaration, let can be reassigned but not redeclared in the same scope.",
					Score:      16,
					TimeSpent:  19,
				},
			},
			Summary: "Strong candidate with excellent React knowledge and good communication skills. Shows practical experience and clear thinking.",
		},
		{
			ID:             "sample-2",
			Name:           "Sarah Wilson",
			Email:          "sarah.wilson@example.com",
			Phone:          "+1-555-0124",
			ResumeFileName: "sarah_wilson_resume.pdf",
			InterviewDate:  time.Date(2025, 9, 30, 14, 15, 0, 0, time.UTC),
			Status:         model.StatusCompleted,
			TotalScore:     92,
			Answers: []model.Answer{
				{
					QuestionID: 3,
					Text:       "React hooks allow functional components to have state and lifecycle methods. They solve the problem of complex class components and allow better code reuse through custom hooks.",
					Score:      45,
					TimeSpent:  55,
				},
				{
					QuestionID: 4,
					Text:       "The event loop allows Node.js to perform non-blocking I/O operations. It processes callbacks from the event queue when the call stack is empty, enabling asynchronous programming.",
					Score:      48,
					TimeSpent:  58,
				},
			},
			Summary: "Exceptional candidate with deep understanding of both frontend and backend technologies. Outstanding problem-solving abilities.",
		},
		{
			ID:             "sample-3",
			Name:           "Mike Chen",
			Email:          "mike.chen@example.com",
			Phone:          "+1-555-0125",
			ResumeFileName: "mike_chen_resume.pdf",
			InterviewDate:  time.Date(2025, 9, 29, 11, 0, 0, 0, time.UTC),
			Status:         model.StatusCompleted,
			TotalScore:     78,
			Answers: []model.Answer{
				{
					QuestionID: 5,
					Text:       "I would use microservices architecture with React frontend, Node.js API gateway, WebSocket servers for real-time communication, Redis for message queuing, and MongoDB for data persistence.",
					Score:      95,
					TimeSpent:  115,
				},
				{
					QuestionID: 6,
					Text:       "Use React.memo for component memoization, implement virtual scrolling for large lists, code splitting with React.lazy, optimize bundle size, use useMemo and useCallback hooks.",
					Score:      88,
					TimeSpent:  108,
				},
			},
			Summary: "Good technical foundation with room for growth. Shows enthusiasm and willingness to learn new technologies.",
		},
	}
}

package model

import "time"

// CandidateRecord is the finalized snapshot of a completed interview.
// Records are never mutated after creation.
type CandidateRecord struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ResumeFileName string    `json:"resume_file_name"`
	InterviewDate  time.Time `json:"interview_date"`
	Status         string    `json:"status"`
	TotalScore     int       `json:"total_score"`
	Answers        []Answer  `json:"answers"`
	Summary        string    `json:"ai_summary"`
	TotalTime      int       `json:"total_time,omitempty"` // whole interview, seconds
}

const StatusCompleted = "completed"

type ListCandidatesQuery struct {
	Search string `form:"search"`
	SortBy string `form:"sort_by,default=score"`
}

const (
	SortByScore = "score"
	SortByName  = "name"
	SortByDate  = "date"
)

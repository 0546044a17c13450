package model

import "time"

type Stage string

const (
	StageUpload         Stage = "upload"
	StageInfoCollection Stage = "info_collection"
	StageInterview      Stage = "interview"
	StageComplete       Stage = "complete"
)

// NoAnswerText is recorded when a question times out with an empty buffer.
const NoAnswerText = "No answer provided"

type CandidateInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Answer struct {
	QuestionID int    `json:"question_id"`
	Text       string `json:"answer"`
	Score      int    `json:"score"`
	TimeSpent  int    `json:"time_spent"` // seconds
}

// InterviewSession is the serializable state of one interview in progress.
// It is only ever mutated by the flow engine, under the session lock.
type InterviewSession struct {
	ID                   string        `json:"id"`
	Candidate            CandidateInfo `json:"candidate"`
	ResumeFileName       string        `json:"resume_file_name"`
	Stage                Stage         `json:"stage"`
	CurrentQuestionIndex int           `json:"current_question_index"`
	Answers              []Answer      `json:"answers"`
	StartTime            time.Time     `json:"start_time"`
	TotalScore           *int          `json:"total_score,omitempty"` // set once stage == complete
}

type Sender string

const (
	SenderAI     Sender = "ai"
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type CreateSessionReq struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,min=1"`
}

type ConfirmInfoReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SubmitAnswerReq struct {
	Text string `json:"text"`
}

type UpdateBufferReq struct {
	Text string `json:"text"`
}

// SessionRes is the snapshot returned to clients, with the remaining
// time of the current question when one is running.
type SessionRes struct {
	InterviewSession
	QuestionCount    int       `json:"question_count"`
	CurrentQuestion  *Question `json:"current_question,omitempty"`
	RemainingSeconds *int      `json:"remaining_seconds,omitempty"`
}

package interview

import (
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"go.uber.org/zap"
)

// EventSink receives flow events so any front end (or just the log) can
// subscribe without the engine knowing about rendering.
type EventSink interface {
	StageChanged(sessionID string, stage model.Stage)
	ValidationFailed(sessionID string, err error)
	AnswerRecorded(sessionID string, answer model.Answer)
	MessageAdded(sessionID string, msg model.Message)
}

type NopSink struct{}

func (NopSink) StageChanged(string, model.Stage)    {}
func (NopSink) ValidationFailed(string, error)      {}
func (NopSink) AnswerRecorded(string, model.Answer) {}
func (NopSink) MessageAdded(string, model.Message)  {}

// ZapSink logs every flow event.
type ZapSink struct {
	Logger *zap.Logger
}

func (s ZapSink) StageChanged(sessionID string, stage model.Stage) {
	s.Logger.Info("interview: stage changed",
		zap.String("session_id", sessionID),
		zap.String("stage", string(stage)),
	)
}

func (s ZapSink) ValidationFailed(sessionID string, err error) {
	s.Logger.Warn("interview: validation failed",
		zap.String("session_id", sessionID),
		zap.String("kind", model.ErrorKind(err)),
		zap.Error(err),
	)
}

func (s ZapSink) AnswerRecorded(sessionID string, answer model.Answer) {
	s.Logger.Info("interview: answer recorded",
		zap.String("session_id", sessionID),
		zap.Int("question_id", answer.QuestionID),
		zap.Int("score", answer.Score),
		zap.Int("time_spent", answer.TimeSpent),
	)
}

func (s ZapSink) MessageAdded(sessionID string, msg model.Message) {
	s.Logger.Debug("interview: message added",
		zap.String("session_id", sessionID),
		zap.String("sender", string(msg.Sender)),
	)
}

package interview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/store"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"go.uber.org/zap"
)

// snapshot is what gets written to the session's KV slot on every
// non-terminal transition, for resume-on-reload.
type snapshot struct {
	Session    model.InterviewSession `json:"session"`
	Buffer     string                 `json:"buffer"`
	Transcript []model.Message        `json:"transcript"`
	SavedAt    time.Time              `json:"saved_at"`
}

// appendMessage adds one transcript entry. Caller holds the session lock.
func (e *Engine) appendMessage(s *session, sender model.Sender, content string) {
	msg := model.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Content:   content,
		Timestamp: e.clock.Now(),
	}
	s.transcript = append(s.transcript, msg)
	e.sink.MessageAdded(s.data.ID, msg)
}

// enqueueAI schedules a sequence of AI messages, one typing delay apart,
// drained in order by chained timers. Each link re-checks the session epoch
// under the lock, so reset or advance drops the rest of the queue. Caller
// holds the session lock.
func (e *Engine) enqueueAI(s *session, contents ...string) {
	e.scheduleNext(s, s.epoch, contents)
}

func (e *Engine) scheduleNext(s *session, epoch int, queue []string) {
	if len(queue) == 0 {
		return
	}
	e.clock.AfterFunc(e.typingDelay, func() {
		s.mu.Lock()
		if s.epoch != epoch {
			s.mu.Unlock()
			return
		}
		e.appendMessage(s, model.SenderAI, queue[0])
		s.mu.Unlock()
		e.scheduleNext(s, epoch, queue[1:])
	})
}

// persist writes the in-progress snapshot. Terminal and initial stages never
// persist; failures only cost durability. Caller holds the session lock.
func (e *Engine) persist(ctx context.Context, s *session) {
	if s.data.Stage == model.StageUpload || s.data.Stage == model.StageComplete {
		return
	}
	data, err := json.Marshal(snapshot{
		Session:    s.data,
		Buffer:     s.buffer,
		Transcript: s.transcript,
		SavedAt:    e.clock.Now(),
	})
	if err != nil {
		e.logger.Error("interview: encode snapshot", zap.String("session_id", s.data.ID), zap.Error(err))
		return
	}
	if err := e.kv.Set(ctx, store.SessionKey(s.data.ID), string(data)); err != nil {
		e.logger.Warn("interview: persist snapshot failed", zap.String("session_id", s.data.ID), zap.Error(err))
	}
}

// sessionRes builds the client-facing snapshot. Caller holds the session lock.
func (e *Engine) sessionRes(s *session) *model.SessionRes {
	res := &model.SessionRes{
		InterviewSession: s.data,
		QuestionCount:    e.bank.Len(),
	}
	res.Answers = make([]model.Answer, len(s.data.Answers))
	copy(res.Answers, s.data.Answers)

	if s.data.Stage == model.StageInterview && s.data.CurrentQuestionIndex < e.bank.Len() {
		q := e.bank.At(s.data.CurrentQuestionIndex)
		res.CurrentQuestion = &q
		remaining := clamp(int(s.deadline.Sub(e.clock.Now()).Seconds()), 0, q.TimeLimit)
		res.RemainingSeconds = &remaining
	}
	return res
}

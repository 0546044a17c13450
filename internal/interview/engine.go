package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/candidate"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/question"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/resume"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/scoring"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/store"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Engine drives interview sessions through upload -> info_collection ->
// interview -> complete. Each session is guarded by its own mutex; timer and
// queued-message callbacks re-check the session epoch under that lock before
// applying effects, so a reset or advance cancels anything stale.
type Engine struct {
	bank        *question.Bank
	kv          store.KV
	candidates  *candidate.Store
	extractor   resume.Extractor
	clock       Clock
	sink        EventSink
	logger      *zap.Logger
	typingDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

// session bundles the serializable state with runtime-only timer bookkeeping.
type session struct {
	mu            sync.Mutex
	data          model.InterviewSession
	buffer        string
	transcript    []model.Message
	epoch         int
	timer         Timer
	questionStart time.Time
	deadline      time.Time
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithSink(s EventSink) Option {
	return func(e *Engine) { e.sink = s }
}

func WithExtractor(x resume.Extractor) Option {
	return func(e *Engine) { e.extractor = x }
}

// WithTypingDelay sets the base delay between queued AI messages. Zero makes
// the transcript sequence fire as fast as the clock allows.
func WithTypingDelay(d time.Duration) Option {
	return func(e *Engine) { e.typingDelay = d }
}

func NewEngine(bank *question.Bank, kv store.KV, candidates *candidate.Store, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		bank:        bank,
		kv:          kv,
		candidates:  candidates,
		extractor:   resume.StubExtractor{},
		clock:       realClock{},
		sink:        NopSink{},
		logger:      logger,
		typingDelay: 600 * time.Millisecond,
		sessions:    make(map[string]*session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartFromResume validates the uploaded resume and, on success, creates a
// session already in the info_collection stage with the extracted candidate
// fields. Validation failures create nothing.
func (e *Engine) StartFromResume(ctx context.Context, meta resume.Meta) (*model.SessionRes, error) {
	if err := resume.ValidateMeta(meta); err != nil {
		e.sink.ValidationFailed("", err)
		return nil, err
	}

	info, err := e.extractor.Extract(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("extract resume: %w", err)
	}

	s := &session{
		data: model.InterviewSession{
			ID:             uuid.NewString(),
			Candidate:      info,
			ResumeFileName: meta.FileName,
			Stage:          model.StageInfoCollection,
			Answers:        []model.Answer{},
			StartTime:      e.clock.Now(),
		},
	}

	e.mu.Lock()
	e.sessions[s.data.ID] = s
	e.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	e.enqueueAI(s,
		"Perfect! I've successfully analyzed your resume. Let me confirm the information I extracted:",
		fmt.Sprintf("Name: %s", info.Name),
		fmt.Sprintf("Email: %s", info.Email),
		fmt.Sprintf("Phone: %s", info.Phone),
		"Please confirm if this information is correct, or update any fields that need changes. Once confirmed, we'll begin your technical interview!",
	)
	e.persist(ctx, s)
	e.sink.StageChanged(s.data.ID, s.data.Stage)
	return e.sessionRes(s), nil
}

// ConfirmInfo validates the candidate identity fields and starts the first
// question. On failure the session stays in info_collection untouched.
func (e *Engine) ConfirmInfo(ctx context.Context, id string, info model.CandidateInfo) (*model.SessionRes, error) {
	s, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Stage != model.StageInfoCollection {
		return nil, model.ErrInvalidStage
	}
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Email) == "" || strings.TrimSpace(info.Phone) == "" {
		e.appendMessage(s, model.SenderAI, model.ErrIncompleteCandidateInfo.Error())
		e.sink.ValidationFailed(id, model.ErrIncompleteCandidateInfo)
		return nil, model.ErrIncompleteCandidateInfo
	}
	if !emailRegex.MatchString(info.Email) {
		e.appendMessage(s, model.SenderAI, model.ErrInvalidEmailFormat.Error())
		e.sink.ValidationFailed(id, model.ErrInvalidEmailFormat)
		return nil, model.ErrInvalidEmailFormat
	}

	s.data.Candidate = info
	s.epoch++ // drop any still-pending upload-stage messages
	e.appendMessage(s, model.SenderUser,
		fmt.Sprintf("Confirmed information:\nName: %s\nEmail: %s\nPhone: %s", info.Name, info.Email, info.Phone))
	e.appendMessage(s, model.SenderAI,
		"Perfect! Your information has been confirmed. Now let's begin your technical interview.")

	s.data.Stage = model.StageInterview
	s.data.CurrentQuestionIndex = 0
	e.askQuestion(s)
	e.persist(ctx, s)
	e.sink.StageChanged(id, model.StageInterview)
	return e.sessionRes(s), nil
}

// UpdateBuffer stores the candidate's current input so a timeout can submit
// whatever was typed.
func (e *Engine) UpdateBuffer(ctx context.Context, id, text string) error {
	s, err := e.get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Stage == model.StageComplete {
		return model.ErrInvalidStage
	}
	s.buffer = text
	return nil
}

// SubmitAnswer scores the answer for the current question, appends it and
// advances the session, completing the interview after the final question.
func (e *Engine) SubmitAnswer(ctx context.Context, id, text string) (*model.SessionRes, error) {
	s, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Stage != model.StageInterview {
		return nil, model.ErrInvalidStage
	}
	if strings.TrimSpace(text) == "" {
		e.sink.ValidationFailed(id, model.ErrEmptyAnswerSubmission)
		return nil, model.ErrEmptyAnswerSubmission
	}

	q := e.bank.At(s.data.CurrentQuestionIndex)
	elapsed := int(e.clock.Now().Sub(s.questionStart).Seconds())
	timeSpent := clamp(elapsed, 0, q.TimeLimit)

	e.appendMessage(s, model.SenderUser, text)
	e.recordAnswer(ctx, s, text, scoring.Score(text, q.Difficulty, timeSpent, q.TimeLimit), timeSpent)
	return e.sessionRes(s), nil
}

// Reset returns the session to its upload-stage initial values from any
// stage and clears the persisted snapshot. Idempotent.
func (e *Engine) Reset(ctx context.Context, id string) (*model.SessionRes, error) {
	s, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.data = model.InterviewSession{
		ID:      s.data.ID,
		Stage:   model.StageUpload,
		Answers: []model.Answer{},
	}
	s.buffer = ""
	s.transcript = nil
	s.questionStart = time.Time{}
	s.deadline = time.Time{}

	if err := e.kv.Delete(ctx, store.SessionKey(id)); err != nil {
		e.logger.Warn("interview: clear snapshot failed", zap.String("session_id", id), zap.Error(err))
	}
	e.sink.StageChanged(id, model.StageUpload)
	return e.sessionRes(s), nil
}

// Get returns the current session snapshot, rehydrating from the KV slot
// after a restart. A rehydrated interview-stage session gets a fresh timer
// for its current question.
func (e *Engine) Get(ctx context.Context, id string) (*model.SessionRes, error) {
	s, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.sessionRes(s), nil
}

// Transcript returns the session's message log in order.
func (e *Engine) Transcript(ctx context.Context, id string) ([]model.Message, error) {
	s, err := e.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.transcript))
	copy(out, s.transcript)
	return out, nil
}

func (e *Engine) get(ctx context.Context, id string) (*session, error) {
	e.mu.RLock()
	s, ok := e.sessions[id]
	e.mu.RUnlock()
	if ok {
		return s, nil
	}
	return e.rehydrate(ctx, id)
}

func (e *Engine) rehydrate(ctx context.Context, id string) (*session, error) {
	raw, err := e.kv.Get(ctx, store.SessionKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read session snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}

	s := &session{
		data:       snap.Session,
		buffer:     snap.Buffer,
		transcript: snap.Transcript,
	}

	e.mu.Lock()
	if existing, ok := e.sessions[id]; ok {
		e.mu.Unlock()
		return existing, nil
	}
	e.sessions[id] = s
	e.mu.Unlock()

	s.mu.Lock()
	if s.data.Stage == model.StageInterview && s.data.CurrentQuestionIndex < e.bank.Len() {
		// the interrupted question restarts with its full time limit
		e.appendMessage(s, model.SenderSystem, "Welcome back! Your interview resumes where you left off.")
		e.askQuestion(s)
	}
	s.mu.Unlock()

	e.logger.Info("interview: session rehydrated", zap.String("session_id", id), zap.String("stage", string(snap.Session.Stage)))
	return s, nil
}

// askQuestion posts the current question and arms its countdown. Caller
// holds the session lock.
func (e *Engine) askQuestion(s *session) {
	idx := s.data.CurrentQuestionIndex
	q := e.bank.At(idx)
	e.appendMessage(s, model.SenderAI, fmt.Sprintf("Question %d/%d (%s - %ds)\n\n%s",
		idx+1, e.bank.Len(), strings.ToUpper(string(q.Difficulty)), q.TimeLimit, q.Text))

	now := e.clock.Now()
	s.questionStart = now
	s.deadline = now.Add(time.Duration(q.TimeLimit) * time.Second)

	epoch := s.epoch
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = e.clock.AfterFunc(time.Duration(q.TimeLimit)*time.Second, func() {
		e.handleTimeout(s, epoch, idx)
	})
}

// handleTimeout fires when a question's countdown reaches zero. A non-empty
// buffer is submitted as the answer; otherwise a zero-score sentinel answer
// is recorded. Stale timers are no-ops.
func (e *Engine) handleTimeout(s *session, epoch, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.data.Stage != model.StageInterview || s.data.CurrentQuestionIndex != idx {
		return
	}

	ctx := context.Background()
	q := e.bank.At(idx)
	if text := strings.TrimSpace(s.buffer); text != "" {
		e.appendMessage(s, model.SenderUser, text)
		e.recordAnswer(ctx, s, text, scoring.Score(text, q.Difficulty, q.TimeLimit, q.TimeLimit), q.TimeLimit)
		return
	}

	e.appendMessage(s, model.SenderUser, "No answer provided - time expired")
	e.appendMessage(s, model.SenderAI, "Time's up! Don't worry, let's continue with the next question.")
	e.recordAnswer(ctx, s, model.NoAnswerText, 0, q.TimeLimit)
}

// recordAnswer appends the answer, advances the index in the same step so
// len(answers) always equals the index, and either asks the next question or
// completes the interview. Caller holds the session lock.
func (e *Engine) recordAnswer(ctx context.Context, s *session, text string, score, timeSpent int) {
	q := e.bank.At(s.data.CurrentQuestionIndex)
	answer := model.Answer{
		QuestionID: q.ID,
		Text:       text,
		Score:      score,
		TimeSpent:  timeSpent,
	}
	s.data.Answers = append(s.data.Answers, answer)
	s.data.CurrentQuestionIndex++
	s.buffer = ""
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	e.sink.AnswerRecorded(s.data.ID, answer)

	if text != model.NoAnswerText {
		e.appendMessage(s, model.SenderAI, encouragement(score))
	}

	if s.data.CurrentQuestionIndex < e.bank.Len() {
		e.askQuestion(s)
		e.persist(ctx, s)
		return
	}
	e.complete(ctx, s)
}

// complete finalizes the session: total score, summary, candidate record,
// snapshot cleanup. Runs exactly once per session. Caller holds the lock.
func (e *Engine) complete(ctx context.Context, s *session) {
	s.data.Stage = model.StageComplete

	sum := 0
	for _, a := range s.data.Answers {
		sum += a.Score
	}
	total := int(math.Round(float64(sum) / float64(e.bank.Len())))
	s.data.TotalScore = &total

	summary := scoring.Summarize(total)
	now := e.clock.Now()
	rec := model.CandidateRecord{
		ID:             s.data.ID,
		Name:           s.data.Candidate.Name,
		Email:          s.data.Candidate.Email,
		Phone:          s.data.Candidate.Phone,
		ResumeFileName: s.data.ResumeFileName,
		InterviewDate:  now,
		Status:         model.StatusCompleted,
		TotalScore:     total,
		Answers:        s.data.Answers,
		Summary:        summary,
		TotalTime:      int(now.Sub(s.data.StartTime).Seconds()),
	}
	e.candidates.Add(ctx, rec)

	if err := e.kv.Delete(ctx, store.SessionKey(s.data.ID)); err != nil {
		e.logger.Warn("interview: clear snapshot failed", zap.String("session_id", s.data.ID), zap.Error(err))
	}

	e.enqueueAI(s,
		fmt.Sprintf("Interview complete! Your final score is %d%%.", total),
		fmt.Sprintf("Performance analysis:\n%s", summary),
		"Thank you for your time! The interviewer will review your responses and get back to you soon. Best of luck!",
	)
	e.sink.StageChanged(s.data.ID, model.StageComplete)
}

func encouragement(score int) string {
	switch {
	case score >= 80:
		return "Excellent answer! Moving to the next question..."
	case score >= 60:
		return "Good response! Moving to the next question..."
	case score >= 40:
		return "Not bad! Moving to the next question..."
	default:
		return "Keep going! Moving to the next question..."
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

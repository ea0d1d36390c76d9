package interview

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/interview-prep/backend/internal/models"
	"github.com/interview-prep/backend/internal/store"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionTerminated = errors.New("session already terminated")
)

// State machine thresholds. A score at or above advanceThreshold moves the
// session up one tier, at or below regressThreshold down one tier; a score
// below strikeThreshold records a strike. Two strikes terminate the session,
// as does a readiness score below the configured threshold once
// earlyExitMinQuestions questions have been issued.
const (
	advanceThreshold      = 75
	regressThreshold      = 40
	strikeThreshold       = 50
	maxStrikes            = 2
	earlyExitMinQuestions = 3
)

// Service owns the session state machine. Mutations to a single session are
// serialized through a per-session lock held for the whole submit step, so
// evaluation and state update apply atomically per request.
type Service struct {
	store     store.SessionStore
	evaluator AnswerEvaluator
	selector  *Selector
	rng       *Rand
	logger    *zap.Logger

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func NewService(st store.SessionStore, evaluator AnswerEvaluator, selector *Selector, rng *Rand, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     st,
		evaluator: evaluator,
		selector:  selector,
		rng:       rng,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Analyze runs the stateless profile analysis.
func (s *Service) Analyze(req models.AnalyzeRequest) models.AnalyzeResponse {
	resp := Analyze(req.ResumeText, req.JDText)
	s.logger.Debug("profile analyzed", zap.Int("skills", len(resp.Skills)))
	return resp
}

// StartSession creates a session at medium difficulty with zero strikes and
// scores, issues the first question, and stores the session.
func (s *Service) StartSession(req models.StartSessionRequest) models.StartSessionResponse {
	session := &models.Session{
		ID:              uuid.NewString(),
		ResumeText:      req.ResumeText,
		JDText:          req.JDText,
		Settings:        req.Settings,
		Difficulty:      models.DifficultyMedium,
		Scores:          []int{},
		UsedQuestionIDs: make(map[string]bool),
	}

	question := s.selector.NextQuestion(session)
	s.store.Put(session)

	s.logger.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("first_question", question.ID),
		zap.Int("max_questions", req.Settings.MaxQuestions))

	return models.StartSessionResponse{
		SessionID: session.ID,
		Question:  question,
	}
}

// SubmitAnswer applies one state machine transition: evaluate the answer,
// record the score, shift difficulty by at most one tier, update strikes,
// check termination, and issue the next question unless terminated.
//
// The submitted question id is accepted without matching it against the
// outstanding question; the evaluation depends only on the answer itself.
func (s *Service) SubmitAnswer(req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, ok := s.store.Get(req.SessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Terminated {
		return nil, ErrSessionTerminated
	}

	evaluation := s.evaluator.Evaluate(req.AnswerText, req.TimeTakenSec, session.Settings.TimeLimitSec, session.Difficulty)
	score := evaluation.Score
	session.Scores = append(session.Scores, score)

	// At most one tier move per answer, regardless of score magnitude.
	tierIdx := session.Difficulty.Index()
	if score >= advanceThreshold && tierIdx < len(models.DifficultyOrder)-1 {
		session.Difficulty = models.DifficultyOrder[tierIdx+1]
	} else if score <= regressThreshold && tierIdx > 0 {
		session.Difficulty = models.DifficultyOrder[tierIdx-1]
	}

	// Strikes are sticky for the session's lifetime.
	if score < strikeThreshold {
		session.Strikes++
	}

	readiness := ReadinessScore(session.Scores)

	terminated := false
	switch {
	case session.Strikes >= maxStrikes:
		terminated = true
	case session.QuestionCount >= earlyExitMinQuestions && readiness < session.Settings.EarlyTerminateThreshold:
		terminated = true
	case session.QuestionCount >= session.Settings.MaxQuestions:
		terminated = true
	}
	session.Terminated = terminated

	var nextQuestion *models.Question
	if !terminated {
		question := s.selector.NextQuestion(session)
		nextQuestion = &question
	}

	s.store.Put(session)

	s.logger.Info("answer evaluated",
		zap.String("session_id", session.ID),
		zap.Int("score", score),
		zap.String("difficulty", string(session.Difficulty)),
		zap.Int("strikes", session.Strikes),
		zap.Int("readiness", readiness),
		zap.Bool("terminated", terminated))

	return &models.SubmitAnswerResponse{
		NextQuestion: nextQuestion,
		Evaluation:   evaluation,
		State: models.SessionState{
			Difficulty:     session.Difficulty,
			Strikes:        session.Strikes,
			Terminated:     session.Terminated,
			QuestionCount:  session.QuestionCount,
			ReadinessScore: readiness,
		},
	}, nil
}

// FetchReport builds the readiness report from the session's score history.
// It never mutates the session.
func (s *Service) FetchReport(sessionID string) (*models.Report, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	report := BuildReport(session.Scores, s.rng)

	s.logger.Debug("report generated",
		zap.String("session_id", sessionID),
		zap.Int("readiness", report.ReadinessScore),
		zap.String("verdict", report.HiringReadiness))

	return &report, nil
}

// lockSession returns an unlock func for the session's mutation lock. Locks
// are created on first use and kept for the process lifetime, matching the
// sessions themselves.
func (s *Service) lockSession(id string) func() {
	s.lockMu.Lock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	s.lockMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"allyship/internal/cache"
	"allyship/internal/model"
	"allyship/internal/scoring"
)

var (
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrSessionSubmitted = fmt.Errorf("session already submitted")
	ErrUnknownQuestion  = fmt.Errorf("question not in questionnaire")
	ErrScoreOutOfRange  = fmt.Errorf("score outside the rating scale")
)

// SessionService owns the respondent session lifecycle: start, answer
// recording, progress. Answers live in the session cache only.
type SessionService struct {
	questionnaire *model.Questionnaire
	sessions      cache.SessionCache
	authSvc       *AuthService
	broadcaster   Broadcaster
}

// NewSessionService creates a new session service
func NewSessionService(q *model.Questionnaire, sessions cache.SessionCache, authSvc *AuthService) *SessionService {
	return &SessionService{
		questionnaire: q,
		sessions:      sessions,
		authSvc:       authSvc,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start opens a new session and issues its token.
func (s *SessionService) Start(ctx context.Context) (*model.StartSessionResponse, error) {
	session := &model.Session{
		ID:        uuid.New().String(),
		Status:    model.SessionActive,
		Answers:   make(map[string]model.Answer),
		StartedAt: time.Now(),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.authSvc.IssueSessionToken(session.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &model.StartSessionResponse{
		SessionID: session.ID,
		Token:     token,
		Scale:     s.questionnaire.MaxRating,
	}, nil
}

// Get loads a session, returning ErrSessionNotFound when absent or expired.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// RecordAnswer stores one answer, overwriting any previous answer to the
// same question. The question must exist in the questionnaire and the score
// must lie in the configured rating set; out-of-range scores are rejected,
// never coerced.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID string, spec model.QuestionSpec, score int) (*model.Completion, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionSubmitted {
		return nil, ErrSessionSubmitted
	}

	if _, ok := s.questionnaire.Lookup(spec.Key()); !ok {
		return nil, ErrUnknownQuestion
	}
	if score < 1 || score > s.questionnaire.MaxRating {
		return nil, ErrScoreOutOfRange
	}

	if session.Answers == nil {
		session.Answers = make(map[string]model.Answer)
	}
	session.Answers[spec.Key()] = model.Answer{
		Score:      score,
		AnsweredAt: time.Now(),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	progress := s.completion(session)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "progress_update", progress)
	}
	return &progress, nil
}

// Progress reports answered vs total questions.
func (s *SessionService) Progress(ctx context.Context, sessionID string) (*model.Completion, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress := s.completion(session)
	return &progress, nil
}

func (s *SessionService) completion(session *model.Session) model.Completion {
	return model.Completion{
		Answered: len(session.Answers),
		Total:    s.questionnaire.Len(),
		Percent:  scoring.Percent(len(session.Answers), s.questionnaire.Len()),
	}
}

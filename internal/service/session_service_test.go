package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allyship/internal/model"
	"allyship/internal/questionnaire"
)

// fakeSessionCache is an in-memory SessionCache. Values round-trip through
// JSON like the redis implementation so tests catch tag mistakes.
type fakeSessionCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{data: make(map[string][]byte)}
}

func (c *fakeSessionCache) Set(_ context.Context, session *model.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.data[session.ID] = data
	return nil
}

func (c *fakeSessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[id]
	if !ok {
		return nil, nil
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *fakeSessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, id)
	return nil
}

type recordedEvent struct {
	SessionID string
	Type      string
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (b *fakeBroadcaster) BroadcastToSession(sessionID, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{SessionID: sessionID, Type: msgType})
}

func newSessionService(t *testing.T) (*SessionService, *fakeSessionCache) {
	t.Helper()
	q, err := questionnaire.Build(4)
	require.NoError(t, err)
	sessions := newFakeSessionCache()
	return NewSessionService(q, sessions, NewAuthService()), sessions
}

func firstQuestion(t *testing.T) model.QuestionSpec {
	t.Helper()
	q, err := questionnaire.Build(4)
	require.NoError(t, err)
	return q.Questions[0]
}

func TestStartSession(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	resp, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 4, resp.Scale)

	session, err := svc.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionActive, session.Status)
	assert.Empty(t, session.Answers)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	auth := NewAuthService()
	token, err := auth.IssueSessionToken("abc-123")
	require.NoError(t, err)

	claims, err := auth.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", claims.SessionID)

	_, err = auth.ValidateSessionToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRecordAnswer(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	resp, err := svc.Start(ctx)
	require.NoError(t, err)

	progress, err := svc.RecordAnswer(ctx, resp.SessionID, firstQuestion(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Answered)
	assert.Equal(t, 30, progress.Total)
	assert.Equal(t, 3, progress.Percent)
}

func TestRecordAnswerOverwrites(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	resp, err := svc.Start(ctx)
	require.NoError(t, err)

	spec := firstQuestion(t)
	_, err = svc.RecordAnswer(ctx, resp.SessionID, spec, 1)
	require.NoError(t, err)
	progress, err := svc.RecordAnswer(ctx, resp.SessionID, spec, 4)
	require.NoError(t, err)

	// Still one answer, with the later score.
	assert.Equal(t, 1, progress.Answered)
	session, err := svc.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 4, session.Answers[spec.Key()].Score)
}

func TestRecordAnswerValidation(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	resp, err := svc.Start(ctx)
	require.NoError(t, err)
	spec := firstQuestion(t)

	tests := []struct {
		name  string
		spec  model.QuestionSpec
		score int
		want  error
	}{
		{"score too low", spec, 0, ErrScoreOutOfRange},
		{"score too high", spec, 5, ErrScoreOutOfRange},
		{"negative score", spec, -2, ErrScoreOutOfRange},
		{"unknown question", model.QuestionSpec{Category: "X", Section: "Y", Text: "Z"}, 2, ErrUnknownQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordAnswer(ctx, resp.SessionID, tt.spec, tt.score)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// Nothing got stored by the rejected attempts.
	progress, err := svc.Progress(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Answered)
}

func TestRecordAnswerUnknownSession(t *testing.T) {
	svc, _ := newSessionService(t)
	_, err := svc.RecordAnswer(context.Background(), "missing", firstQuestion(t), 2)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRecordAnswerBroadcastsProgress(t *testing.T) {
	svc, _ := newSessionService(t)
	b := &fakeBroadcaster{}
	svc.SetBroadcaster(b)
	ctx := context.Background()
	resp, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, resp.SessionID, firstQuestion(t), 2)
	require.NoError(t, err)

	require.Len(t, b.events, 1)
	assert.Equal(t, recordedEvent{SessionID: resp.SessionID, Type: "progress_update"}, b.events[0])
}

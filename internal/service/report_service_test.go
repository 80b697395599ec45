package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allyship/internal/model"
	"allyship/internal/questionnaire"
	"allyship/internal/report"
)

type fakeSubmissionRepo struct {
	mu    sync.Mutex
	saved []*model.Submission
}

func (r *fakeSubmissionRepo) Save(_ context.Context, sub *model.Submission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, sub)
	return "id", nil
}

func (r *fakeSubmissionRepo) GetBySessionID(_ context.Context, sessionID string) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.saved {
		if s.SessionID == sessionID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, _ int64) ([]*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved, nil
}

func newReportService(t *testing.T) (*ReportService, *SessionService, *fakeSubmissionRepo) {
	t.Helper()
	q, err := questionnaire.Build(4)
	require.NoError(t, err)
	sessionSvc := NewSessionService(q, newFakeSessionCache(), NewAuthService())
	repo := &fakeSubmissionRepo{}
	missing := filepath.Join(t.TempDir(), "missing")
	svc := NewReportService(q, sessionSvc, repo, report.DefaultTiers(),
		questionnaire.Title, filepath.Join(missing, "logo.png"), filepath.Join(missing, "guide.pdf"))
	return svc, sessionSvc, repo
}

func answerEverything(t *testing.T, svc *SessionService, sessionID string, score int) {
	t.Helper()
	ctx := context.Background()
	q, err := questionnaire.Build(4)
	require.NoError(t, err)
	for _, spec := range q.Questions {
		_, err := svc.RecordAnswer(ctx, sessionID, spec, score)
		require.NoError(t, err)
	}
}

func TestSummary(t *testing.T) {
	reportSvc, sessionSvc, _ := newReportService(t)
	ctx := context.Background()
	resp, err := sessionSvc.Start(ctx)
	require.NoError(t, err)
	answerEverything(t, sessionSvc, resp.SessionID, 1)

	sum, err := reportSvc.Summary(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 30, sum.Total)
	require.Len(t, sum.Categories, 1)
	assert.Equal(t, 25, sum.Categories[0].Percent)
	assert.Len(t, sum.Subsections, 10)
}

func TestSubmitArchivesSnapshot(t *testing.T) {
	reportSvc, sessionSvc, repo := newReportService(t)
	ctx := context.Background()
	resp, err := sessionSvc.Start(ctx)
	require.NoError(t, err)
	answerEverything(t, sessionSvc, resp.SessionID, 4)

	sum, err := reportSvc.Submit(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 120, sum.Total)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, resp.SessionID, repo.saved[0].SessionID)
	assert.Equal(t, *sum, repo.saved[0].Summary)

	session, err := sessionSvc.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionSubmitted, session.Status)
	require.NotNil(t, session.SubmittedAt)

	// Second submit and late answers are rejected.
	_, err = reportSvc.Submit(ctx, resp.SessionID)
	assert.ErrorIs(t, err, ErrSessionSubmitted)
	_, err = sessionSvc.RecordAnswer(ctx, resp.SessionID, firstQuestion(t), 2)
	assert.ErrorIs(t, err, ErrSessionSubmitted)
}

func TestSubmitBroadcasts(t *testing.T) {
	reportSvc, sessionSvc, _ := newReportService(t)
	b := &fakeBroadcaster{}
	reportSvc.SetBroadcaster(b)
	ctx := context.Background()
	resp, err := sessionSvc.Start(ctx)
	require.NoError(t, err)

	_, err = reportSvc.Submit(ctx, resp.SessionID)
	require.NoError(t, err)

	require.Len(t, b.events, 1)
	assert.Equal(t, "session_submitted", b.events[0].Type)
}

func TestResultsPDFWithoutLogo(t *testing.T) {
	reportSvc, sessionSvc, _ := newReportService(t)
	ctx := context.Background()
	resp, err := sessionSvc.Start(ctx)
	require.NoError(t, err)
	answerEverything(t, sessionSvc, resp.SessionID, 2)

	// Logo path points nowhere; the report renders without it.
	doc, err := reportSvc.ResultsPDF(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Greater(t, len(doc), 4)
	assert.Equal(t, "%PDF-", string(doc[:5]))
}

func TestGuideMissing(t *testing.T) {
	reportSvc, _, _ := newReportService(t)
	_, err := reportSvc.Guide()
	assert.ErrorIs(t, err, ErrGuideNotFound)
}

func TestVisitCounter(t *testing.T) {
	c := NewVisitCounter()
	assert.EqualValues(t, 0, c.Count())
	assert.EqualValues(t, 1, c.Record())
	assert.EqualValues(t, 2, c.Record())
	assert.EqualValues(t, 2, c.Count())
}

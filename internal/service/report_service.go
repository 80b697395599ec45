package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"time"

	"allyship/internal/chart"
	"allyship/internal/model"
	"allyship/internal/report"
	"allyship/internal/repository"
	"allyship/internal/scoring"
)

var ErrGuideNotFound = fmt.Errorf("guide document not found")

// ReportService aggregates session answers and produces the downloadable
// results: the JSON summary, the composed PDF, and the static guide.
type ReportService struct {
	questionnaire *model.Questionnaire
	sessionSvc    *SessionService
	submissions   repository.SubmissionRepo
	tiers         []report.Tier
	layout        report.Layout
	title         string
	logoPath      string
	guidePath     string
	broadcaster   Broadcaster
}

// NewReportService creates a new report service
func NewReportService(
	q *model.Questionnaire,
	sessionSvc *SessionService,
	submissions repository.SubmissionRepo,
	tiers []report.Tier,
	title, logoPath, guidePath string,
) *ReportService {
	return &ReportService{
		questionnaire: q,
		sessionSvc:    sessionSvc,
		submissions:   submissions,
		tiers:         tiers,
		layout:        report.DefaultLayout(),
		title:         title,
		logoPath:      logoPath,
		guidePath:     guidePath,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ReportService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Summary recomputes the aggregation for a session's current answers.
func (s *ReportService) Summary(ctx context.Context, sessionID string) (*model.ScoreSummary, error) {
	session, err := s.sessionSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return scoring.Aggregate(s.questionnaire, session.Answers), nil
}

// Submit finalizes a session: marks it submitted, archives the score
// snapshot, and returns the summary. Submitting twice is rejected.
func (s *ReportService) Submit(ctx context.Context, sessionID string) (*model.ScoreSummary, error) {
	session, err := s.sessionSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionSubmitted {
		return nil, ErrSessionSubmitted
	}

	summary := scoring.Aggregate(s.questionnaire, session.Answers)

	now := time.Now()
	session.Status = model.SessionSubmitted
	session.SubmittedAt = &now
	if err := s.sessionSvc.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if _, err := s.submissions.Save(ctx, &model.Submission{
		SessionID: sessionID,
		Summary:   *summary,
	}); err != nil {
		return nil, fmt.Errorf("archive submission: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "session_submitted", summary)
	}
	return summary, nil
}

// ResultsPDF composes the generated results document for a session.
func (s *ReportService) ResultsPDF(ctx context.Context, sessionID string) ([]byte, error) {
	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	charts, err := chart.CategoryCharts(summary)
	if err != nil {
		return nil, err
	}
	images := make([]report.ImageBlock, 0, len(charts))
	for _, c := range charts {
		images = append(images, report.ImageBlock{PNG: c.PNG, Aspect: c.Aspect})
	}

	logo, logoAspect := s.loadLogo()
	blocks := report.BuildBlocks(s.title, logo, logoAspect, summary, s.tiers, images)
	return report.Compose(blocks, s.layout)
}

// Guide returns the pre-made guide PDF bytes. A missing file is a
// user-visible not-found, not a crash.
func (s *ReportService) Guide() ([]byte, error) {
	data, err := os.ReadFile(s.guidePath)
	if os.IsNotExist(err) {
		log.Printf("report: guide PDF missing at %s", s.guidePath)
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// loadLogo reads the logo asset. A missing or unreadable logo degrades to a
// report without the logo block.
func (s *ReportService) loadLogo() ([]byte, float64) {
	data, err := os.ReadFile(s.logoPath)
	if err != nil {
		log.Printf("Warning: logo image not found at %s, continuing without it", s.logoPath)
		return nil, 0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Height == 0 {
		log.Printf("Warning: logo image at %s not decodable, continuing without it", s.logoPath)
		return nil, 0
	}
	return data, float64(cfg.Width) / float64(cfg.Height)
}

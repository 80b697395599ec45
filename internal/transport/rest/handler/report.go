package handler

import (
	"fmt"
	"net/http"

	"allyship/internal/service"
	"allyship/internal/transport/rest/middleware"
)

// ReportHandler handles summary and document download endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Summary handles GET /v1/sessions/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.reportSvc.Summary(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Submit handles POST /v1/sessions/submit
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.reportSvc.Submit(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Results handles GET /v1/sessions/results.pdf
func (h *ReportHandler) Results(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := h.reportSvc.ResultsPDF(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	servePDF(w, "assessment_results.pdf", doc)
}

// Guide handles GET /v1/guide
func (h *ReportHandler) Guide(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportSvc.Guide()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	servePDF(w, "allyship_guide.pdf", doc)
}

func servePDF(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

package handler

import (
	"net/http"

	"allyship/internal/model"
	"allyship/internal/questionnaire"
)

// QuestionnaireHandler serves the static questionnaire definition
type QuestionnaireHandler struct {
	q *model.Questionnaire
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(q *model.Questionnaire) *QuestionnaireHandler {
	return &QuestionnaireHandler{q: q}
}

// QuestionnaireResponse is the full form definition for the UI
type QuestionnaireResponse struct {
	Title  string                `json:"title"`
	Intro  string                `json:"intro"`
	Scale  int                   `json:"scale"`
	Legend []string              `json:"legend"`
	Groups []questionnaire.Group `json:"groups"`
}

// Get handles GET /v1/questionnaire
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuestionnaireResponse{
		Title:  questionnaire.Title,
		Intro:  questionnaire.Intro,
		Scale:  h.q.MaxRating,
		Legend: questionnaire.ScaleLegend(h.q.MaxRating),
		Groups: questionnaire.Definition(),
	})
}

package model

// CategoryTotals is the aggregated score for one category.
// Max is always questionCount x maxRating, so it is never zero.
type CategoryTotals struct {
	Category string `json:"category" bson:"category"`
	Raw      int    `json:"raw" bson:"raw"`
	Max      int    `json:"max" bson:"max"`
	Percent  int    `json:"percent" bson:"percent"`
}

// SubsectionTotals is the aggregated score for one section within a category.
type SubsectionTotals struct {
	Category string `json:"category" bson:"category"`
	Section  string `json:"section" bson:"section"`
	Raw      int    `json:"raw" bson:"raw"`
	Max      int    `json:"max" bson:"max"`
	Percent  int    `json:"percent" bson:"percent"`
}

// Completion tracks answered vs total questions for progress display.
type Completion struct {
	Answered int `json:"answered" bson:"answered"`
	Total    int `json:"total" bson:"total"`
	Percent  int `json:"percent" bson:"percent"`
}

// ScoreSummary is the full output of one aggregation pass. Categories and
// Subsections follow questionnaire order, so repeated aggregation over the
// same answers is byte-for-byte identical.
type ScoreSummary struct {
	Total       int                `json:"total" bson:"total"`
	Categories  []CategoryTotals   `json:"categories" bson:"categories"`
	Subsections []SubsectionTotals `json:"subsections" bson:"subsections"`
	Completion  Completion         `json:"completion" bson:"completion"`
}

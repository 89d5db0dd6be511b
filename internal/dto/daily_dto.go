package dto

// LogEmotionsRequest is the POST /emotions/:userId payload.
type LogEmotionsRequest struct {
	Emotions []string `json:"emotions"`
	Type     string   `json:"type"`
}

// LogNeedsRequest is the POST /needs/:userId payload.
type LogNeedsRequest struct {
	Needs []string `json:"needs"`
}

// EmotionSummaryRow is one date's aggregated emotion counts.
type EmotionSummaryRow struct {
	Date          string `json:"date"`
	PositiveCount int    `json:"positiveCount"`
	NegativeCount int    `json:"negativeCount"`
}

// NeedSummaryRow is one date's aggregated need count.
type NeedSummaryRow struct {
	Date       string `json:"date"`
	NeedsCount int    `json:"needsCount"`
}

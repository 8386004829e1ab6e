package game

// Tier classifies a completed session by its score.
type Tier int

const (
	TierWorst Tier = iota // 0 correct
	TierPoor              // 1-2 correct
	TierGood              // 3 correct
	TierBest              // 4 correct
)

// Outcome is the end-of-session summary copy for a tier.
type Outcome struct {
	Tier    Tier
	Title   string
	Message string
}

var outcomes = map[Tier]Outcome{
	TierBest: {
		Tier:    TierBest,
		Title:   "★ TRAIL LEGEND ★",
		Message: "A perfect run! The whole pizza arrives with every corner piece intact.",
	},
	TierGood: {
		Tier:    TierGood,
		Title:   "TRAIL VETERAN",
		Message: "Three slices delivered. One went missing somewhere around the Loop.",
	},
	TierPoor: {
		Tier:    TierPoor,
		Title:   "GREENHORN",
		Message: "The trail was rough. Most of the pizza didn't make it.",
	},
	TierWorst: {
		Tier:    TierWorst,
		Title:   "✖ LOST ON THE TRAIL ✖",
		Message: "Not a single slice survived. The trail continues tomorrow...",
	},
}

// OutcomeFor maps a session score to its display tier. Thresholds sit
// exactly at 4, 3, 1, and 0 correct.
func OutcomeFor(score int) Outcome {
	switch {
	case score >= SlotCount:
		return outcomes[TierBest]
	case score == SlotCount-1:
		return outcomes[TierGood]
	case score >= 1:
		return outcomes[TierPoor]
	default:
		return outcomes[TierWorst]
	}
}

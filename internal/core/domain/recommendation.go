package domain

// Recommendation pairs a suggested product with its collaborative score.
type Recommendation struct {
	ProductID uint
	Score     float64
}

// ScoredProduct is a recommendation joined with catalog details.
type ScoredProduct struct {
	Product Product
	Score   float64
}

package domain

import "time"

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
)

// ModerationAction is a reviewer decision on a review.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionFlag    ModerationAction = "flag"
)

// Valid reports whether a is a known moderation action.
func (a ModerationAction) Valid() bool {
	return a == ActionApprove || a == ActionFlag
}

// PastTense renders the action for acknowledgement messages.
func (a ModerationAction) PastTense() string {
	switch a {
	case ActionApprove:
		return "approved"
	case ActionFlag:
		return "flagged"
	default:
		return string(a)
	}
}

// Review is a customer's rating of a product.
type Review struct {
	ID         uint       `json:"id"`
	ProductID  uint       `json:"product_id"`
	CustomerID uint       `json:"customer_id"`
	Rating     int        `json:"rating"`
	Comment    *string    `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// ReviewPatch holds the fields a review update may change.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// Apply copies every present field of p onto r.
func (p ReviewPatch) Apply(r *Review) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = p.Comment
	}
}

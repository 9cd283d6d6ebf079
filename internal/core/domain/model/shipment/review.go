package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is the client's feedback on a delivered shipment. Rating, text and
// timestamp are present together or not at all.
type Review struct { //nolint:recvcheck //using for validation
	rating    int
	text      string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewReview validates rating ∈ [MinRating, MaxRating] and a non-blank text.
func NewReview(rating int, text string, createdAt time.Time) (Review, error) {
	r := Review{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setRating(rating), r.setText(text), r.setCreatedAt(createdAt)); err != nil {
		return Review{}, err
	}

	return r, nil
}

func (r Review) Validate() error {
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r Review) Rating() int {
	return r.rating
}

func (r Review) Text() string {
	return r.text
}

func (r Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("review_rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("review_text")
	}
	r.text = text
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("review_created_at")
	}
	r.createdAt = createdAt.UTC()
	return nil
}

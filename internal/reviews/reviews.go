// internal/reviews/reviews.go
package reviews

import (
	"context"
	"strings"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/session"
)

type Source interface {
	ListReviews(ctx context.Context, token, productID string) (*api.ReviewPage, error)
	AddReview(ctx context.Context, token string, req *api.AddReviewRequest) error
}

// Section backs the review block on a product page. The backend decides who
// counts as a verified buyer; the client only relays the canReview flag and
// gates the submit path on it.
type Section struct {
	api Source
}

func NewSection(src Source) *Section {
	return &Section{api: src}
}

func (s *Section) Load(ctx context.Context, sess session.Session, productID string) (*api.ReviewPage, error) {
	return s.api.ListReviews(ctx, sess.Token, productID)
}

// Submit posts a review. Rating must be 1-5 and the comment non-blank; both
// are checked before any network call.
func (s *Section) Submit(ctx context.Context, sess session.Session, productID string, rating int, comment string) error {
	if !sess.LoggedIn() {
		return api.NewError(api.KindNotAuthenticated, "please login to review products")
	}
	if rating < 1 || rating > 5 {
		return api.NewError(api.KindValidationFailure, "rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return api.NewError(api.KindValidationFailure, "comment must not be empty")
	}
	return s.api.AddReview(ctx, sess.Token, &api.AddReviewRequest{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
}

package review

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// ReviewService is the typed client for the review bounded context.
type ReviewService interface {
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetPackageReviews(ctx context.Context, packageID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, token string, input models.ReviewInput) (*models.Review, error)
	ReplyToReview(ctx context.Context, token string, reviewID int64, reply models.ReplyInput) error
}

// DefaultReviewService implements ReviewService over the API gateway.
type DefaultReviewService struct {
	Gateway gateway.Caller
}

func (s *DefaultReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	res := s.Gateway.Do(ctx, "/api/reviews", gateway.Options{})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var reviews []models.Review
	if err := res.Decode(&reviews); err != nil {
		return nil, fmt.Errorf("failed to parse reviews: %w", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) GetPackageReviews(ctx context.Context, packageID int64) ([]models.Review, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/reviews/package/%d", packageID), gateway.Options{})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var reviews []models.Review
	if err := res.Decode(&reviews); err != nil {
		return nil, fmt.Errorf("failed to parse reviews: %w", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) CreateReview(ctx context.Context, token string, input models.ReviewInput) (*models.Review, error) {
	res := s.Gateway.Do(ctx, "/api/reviews", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var r models.Review
	if err := res.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to parse review: %w", err)
	}
	return &r, nil
}

func (s *DefaultReviewService) ReplyToReview(ctx context.Context, token string, reviewID int64, reply models.ReplyInput) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/reviews/%d/reply", reviewID), gateway.Options{
		Method: http.MethodPost,
		Data:   reply,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

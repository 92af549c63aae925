package services

import (
	"fmt"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"

	"github.com/google/uuid"
)

// ReviewService handles customer reviews and their moderation.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	yachtRepo  repositories.YachtRepository
	userRepo   repositories.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	yachtRepo repositories.YachtRepository,
	userRepo repositories.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		yachtRepo:  yachtRepo,
		userRepo:   userRepo,
	}
}

// CreateReview stores a review as pending moderation. The author and yacht
// names are denormalized so listings stay readable after edits.
func (s *ReviewService) CreateReview(userID, yachtID string, rating int, content string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", repositories.ErrInvalid)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	yacht, err := s.yachtRepo.GetByID(yachtID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &models.Review{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.Name,
		YachtID:   yacht.ID,
		YachtName: yacht.Name,
		Rating:    rating,
		Content:   content,
		Status:    models.ReviewPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListYachtReviews returns the approved reviews of a yacht.
func (s *ReviewService) ListYachtReviews(yachtID string) ([]models.Review, error) {
	return s.reviewRepo.ListByYacht(yachtID, true)
}

// ListAllReviews returns every review regardless of moderation state.
func (s *ReviewService) ListAllReviews() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

// ModerateReview sets a review's moderation state.
func (s *ReviewService) ModerateReview(id, status string) (*models.Review, error) {
	if status != models.ReviewApproved && status != models.ReviewRejected && status != models.ReviewPending {
		return nil, fmt.Errorf("unknown review status %q: %w", status, repositories.ErrInvalid)
	}

	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	review.Status = status
	review.UpdatedAt = time.Now()
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

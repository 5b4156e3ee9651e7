package newsletter

import (
	"context"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type NewsletterService struct {
	db         *gorm.DB
	repository *NewsletterRepository
}

func NewNewsletterService(db *gorm.DB, repository *NewsletterRepository) *NewsletterService {
	return &NewsletterService{
		db:         db,
		repository: repository,
	}
}

func (s *NewsletterService) Subscribe(ctx context.Context, request *SubscribeRequest) error {
	log := logger.FromContext(ctx)

	language := request.Language
	if language == "" {
		language = "ko"
	}

	sub := &model.NewsletterSubscription{
		Email:    request.Email,
		Name:     request.Name,
		Language: language,
		IsActive: true,
	}

	if err := s.repository.Upsert(ctx, s.db, sub); err != nil {
		log.Error("뉴스레터 구독 실패", "error", err)
		return fmt.Errorf("subscribe newsletter: %w", err)
	}

	log.Info("뉴스레터 구독 완료", "email", logger.MaskEmail(request.Email))
	return nil
}

package inquiry

import (
	"context"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type InquiryService struct {
	db         *gorm.DB
	repository *InquiryRepository
}

func NewInquiryService(db *gorm.DB, repository *InquiryRepository) *InquiryService {
	return &InquiryService{
		db:         db,
		repository: repository,
	}
}

// Create stores a new inquiry. memberID is nil for anonymous visitors.
func (s *InquiryService) Create(ctx context.Context, memberID *uint32, request *CreateInquiryRequest) (*model.Inquiry, error) {
	log := logger.FromContext(ctx)

	category := request.Category
	if category == "" {
		category = model.InquiryCategoryGeneral
	}

	inquiry := &model.Inquiry{
		MemberID: memberID,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Subject:  request.Subject,
		Message:  request.Message,
		Category: category,
		Status:   model.InquiryStatusPending,
	}

	if err := s.repository.Create(ctx, s.db, inquiry); err != nil {
		log.Error("문의 등록 실패", "error", err)
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	log.Info("문의 등록 완료",
		"email", logger.MaskEmail(request.Email),
		"phone", logger.MaskPhone(request.Phone),
		"category", category,
	)
	return inquiry, nil
}

package inquiry

import (
	"context"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type InquiryRepository struct{}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{}
}

func (r *InquiryRepository) Create(ctx context.Context, db *gorm.DB, inquiry *model.Inquiry) error {
	return db.WithContext(ctx).Create(inquiry).Error
}

func (r *InquiryRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	err := db.WithContext(ctx).Where("id = ?", id).First(&inquiry).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) ListAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

// Respond records the admin answer and marks the inquiry answered.
func (r *InquiryRepository) Respond(ctx context.Context, db *gorm.DB, id uint32, response string, respondedBy uint32) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"admin_response": response,
			"status":         model.InquiryStatusAnswered,
			"responded_at":   time.Now().UTC(),
			"responded_by":   respondedBy,
			"updated_at":     time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func (r *InquiryRepository) CountPending(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Inquiry{}).
		Where("status = ?", model.InquiryStatusPending).
		Count(&count).Error
	return count, err
}

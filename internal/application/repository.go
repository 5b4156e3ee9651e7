package application

import (
	"context"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct{}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) Create(ctx context.Context, db *gorm.DB, app *model.PrePurchaseApplication) error {
	return db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.PrePurchaseApplication, error) {
	var app model.PrePurchaseApplication
	err := db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]MemberApplication, error) {
	var apps []MemberApplication
	err := db.WithContext(ctx).
		Model(&model.PrePurchaseApplication{}).
		Select("pre_purchase_applications.*, mt.name AS membership_name, mt.name_ko AS membership_name_ko").
		Joins("JOIN membership_types mt ON mt.id = pre_purchase_applications.membership_type_id").
		Where("pre_purchase_applications.member_id = ?", memberID).
		Order("pre_purchase_applications.created_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]AdminApplication, error) {
	var apps []AdminApplication
	err := db.WithContext(ctx).
		Model(&model.PrePurchaseApplication{}).
		Select("pre_purchase_applications.*, m.name AS member_name, m.email AS member_email, " +
			"mt.name AS membership_name, mt.name_ko AS membership_name_ko, mt.price AS membership_price").
		Joins("JOIN members m ON m.id = pre_purchase_applications.member_id").
		Joins("JOIN membership_types mt ON mt.id = pre_purchase_applications.membership_type_id").
		Order("pre_purchase_applications.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// SetStatus transitions an application. approvedBy is recorded together with
// the decision timestamp for approve/reject; pass nil for system transitions.
func (r *ApplicationRepository) SetStatus(ctx context.Context, db *gorm.DB, id uint32, status string, approvedBy *uint32) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if approvedBy != nil {
		updates["approved_at"] = time.Now().UTC()
		updates["approved_by"] = *approvedBy
	}

	result := db.WithContext(ctx).
		Model(&model.PrePurchaseApplication{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.PrePurchaseApplication{}).Count(&count).Error
	return count, err
}

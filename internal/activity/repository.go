package activity

import (
	"context"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ActivityLogRepository struct{}

func NewActivityLogRepository() *ActivityLogRepository {
	return &ActivityLogRepository{}
}

func (r *ActivityLogRepository) Create(ctx context.Context, db *gorm.DB, log *model.ActivityLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *ActivityLogRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32, limit, offset int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

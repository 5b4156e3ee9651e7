package member

import (
	"context"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) UpdateLastLogin(ctx context.Context, db *gorm.DB, id uint32, at time.Time) error {
	return db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (m *MemberRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uint32, status string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	return result.RowsAffected, result.Error
}

func (m *MemberRepository) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Member{}).Count(&count).Error
	return count, err
}

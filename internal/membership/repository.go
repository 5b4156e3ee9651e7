package membership

import (
	"context"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MembershipTypeRepository struct{}

func NewMembershipTypeRepository() *MembershipTypeRepository {
	return &MembershipTypeRepository{}
}

// ListActive returns active catalog entries ordered by price ascending.
func (r *MembershipTypeRepository) ListActive(ctx context.Context, db *gorm.DB) ([]model.MembershipType, error) {
	var types []model.MembershipType
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *MembershipTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.MembershipType, error) {
	var membershipType model.MembershipType
	err := db.WithContext(ctx).Where("id = ?", id).First(&membershipType).Error
	if err != nil {
		return nil, err
	}
	return &membershipType, nil
}

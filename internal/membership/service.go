package membership

import (
	"context"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MembershipService struct {
	db         *gorm.DB
	repository *MembershipTypeRepository
}

func NewMembershipService(db *gorm.DB, repository *MembershipTypeRepository) *MembershipService {
	return &MembershipService{
		db:         db,
		repository: repository,
	}
}

func (s *MembershipService) GetCatalog(ctx context.Context) ([]model.MembershipType, error) {
	types, err := s.repository.ListActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("회원권 타입 조회 실패: %w", err)
	}
	return types, nil
}

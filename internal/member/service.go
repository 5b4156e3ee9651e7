package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	return &GetProfileResponse{
		ID:                member.ID,
		Email:             member.Email,
		Name:              member.Name,
		Phone:             member.Phone,
		BirthDate:         member.BirthDate,
		Nationality:       member.Nationality,
		PreferredLanguage: member.PreferredLanguage,
		Role:              member.Role,
		Status:            member.Status,
		LastLoginAt:       member.LastLoginAt,
	}, nil
}

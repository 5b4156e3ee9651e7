package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/membership"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db                   *gorm.DB
	repository           *ApplicationRepository
	membershipRepository *membership.MembershipTypeRepository
	recorder             *activity.Recorder
}

func NewApplicationService(
	db *gorm.DB,
	repository *ApplicationRepository,
	membershipRepository *membership.MembershipTypeRepository,
	recorder *activity.Recorder,
) *ApplicationService {
	return &ApplicationService{
		db:                   db,
		repository:           repository,
		membershipRepository: membershipRepository,
		recorder:             recorder,
	}
}

// Create submits a pre-purchase application. The membership price at this
// moment is snapshotted into total_amount; later catalog changes never move it.
func (s *ApplicationService) Create(ctx context.Context, memberID uint32, request *CreateApplicationRequest, meta activity.RequestMeta) (*model.PrePurchaseApplication, error) {
	log := logger.FromContext(ctx)

	membershipType, err := s.membershipRepository.FindByID(ctx, s.db, request.MembershipTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("알 수 없는 회원권 타입", "membership_type_id", request.MembershipTypeID)
			return nil, fmt.Errorf("error %w", ErrUnknownMembershipType)
		}
		return nil, fmt.Errorf("회원권 타입 조회 실패: %w", err)
	}

	paymentMethod := request.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodFullPayment
	}

	app := &model.PrePurchaseApplication{
		MemberID:             memberID,
		MembershipTypeID:     membershipType.ID,
		PreferredFloor:       request.PreferredFloor,
		PreferredOrientation: request.PreferredOrientation,
		PaymentMethod:        paymentMethod,
		DepositAmount:        request.DepositAmount,
		TotalAmount:          membershipType.Price,
		Status:               model.ApplicationStatusPending,
	}

	if err := s.repository.Create(ctx, s.db, app); err != nil {
		log.Error("사전구매 신청 생성 실패", "error", err)
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.recorder.Record(ctx, &memberID, model.ActionPrePurchaseApplication,
		fmt.Sprintf("회원권 사전구매 신청 - %s", membershipType.NameKo), meta)

	log.Info("사전구매 신청 완료",
		"member_id", memberID,
		"membership_type_id", membershipType.ID,
	)
	return app, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, memberID uint32) ([]MemberApplication, error) {
	apps, err := s.repository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("신청 내역 조회 실패: %w", err)
	}
	return apps, nil
}

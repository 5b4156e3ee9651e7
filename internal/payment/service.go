package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/application"
	"github.com/boracay-silvertown/go-api-server/internal/membership"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// currencyKRW is the only settlement currency the site sells in.
const currencyKRW = "KRW"

type PaymentService struct {
	db                    *gorm.DB
	provider              Provider
	membershipRepository  *membership.MembershipTypeRepository
	applicationRepository *application.ApplicationRepository
	recorder              *activity.Recorder
}

func NewPaymentService(
	db *gorm.DB,
	provider Provider,
	membershipRepository *membership.MembershipTypeRepository,
	applicationRepository *application.ApplicationRepository,
	recorder *activity.Recorder,
) *PaymentService {
	return &PaymentService{
		db:                    db,
		provider:              provider,
		membershipRepository:  membershipRepository,
		applicationRepository: applicationRepository,
		recorder:              recorder,
	}
}

// CreateIntent asks the provider for a payment intent priced at the current
// catalog price. Nothing is persisted.
func (s *PaymentService) CreateIntent(ctx context.Context, request *CreateIntentRequest) (*Intent, error) {
	log := logger.FromContext(ctx)

	membershipType, err := s.membershipRepository.FindByID(ctx, s.db, request.MembershipTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error %w", application.ErrUnknownMembershipType)
		}
		return nil, fmt.Errorf("회원권 타입 조회 실패: %w", err)
	}

	intent, err := s.provider.CreateIntent(ctx, membershipType.Price, currencyKRW)
	if err != nil {
		log.Error("결제 인텐트 생성 실패", "error", err)
		return nil, fmt.Errorf("error %w", ErrPaymentFailed)
	}

	log.Info("결제 인텐트 생성", "membership_type_id", membershipType.ID)
	return intent, nil
}

// Confirm settles the intent with the provider, then records the purchase as
// a paid application and appends the audit entry.
func (s *PaymentService) Confirm(ctx context.Context, memberID uint32, request *ConfirmRequest, meta activity.RequestMeta) (*model.PrePurchaseApplication, error) {
	log := logger.FromContext(ctx)

	membershipType, err := s.membershipRepository.FindByID(ctx, s.db, request.MembershipTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error %w", application.ErrUnknownMembershipType)
		}
		return nil, fmt.Errorf("회원권 타입 조회 실패: %w", err)
	}

	if err := s.provider.Confirm(ctx, request.PaymentIntentID); err != nil {
		log.Error("결제 승인 실패", "intent_id", request.PaymentIntentID, "error", err)
		return nil, fmt.Errorf("error %w", ErrPaymentFailed)
	}

	paymentMethod := request.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodFullPayment
	}

	app := &model.PrePurchaseApplication{
		MemberID:         memberID,
		MembershipTypeID: membershipType.ID,
		PaymentMethod:    paymentMethod,
		DepositAmount:    request.DepositAmount,
		TotalAmount:      membershipType.Price,
		Status:           model.ApplicationStatusPaid,
	}

	if err := s.applicationRepository.Create(ctx, s.db, app); err != nil {
		log.Error("결제 완료 신청 생성 실패", "error", err)
		return nil, fmt.Errorf("create paid application: %w", err)
	}

	s.recorder.Record(ctx, &memberID, model.ActionPaymentConfirmed,
		fmt.Sprintf("회원권 결제 완료 - %s", membershipType.NameKo), meta)

	log.Info("결제 확인 완료",
		"member_id", memberID,
		"membership_type_id", membershipType.ID,
	)
	return app, nil
}

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/application"
	"github.com/boracay-silvertown/go-api-server/internal/inquiry"
	"github.com/boracay-silvertown/go-api-server/internal/member"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/newsletter"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type AdminService struct {
	db                    *gorm.DB
	memberRepository      *member.MemberRepository
	applicationRepository *application.ApplicationRepository
	inquiryRepository     *inquiry.InquiryRepository
	newsletterRepository  *newsletter.NewsletterRepository
	activityRepository    *activity.ActivityLogRepository
}

func NewAdminService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	applicationRepository *application.ApplicationRepository,
	inquiryRepository *inquiry.InquiryRepository,
	newsletterRepository *newsletter.NewsletterRepository,
	activityRepository *activity.ActivityLogRepository,
) *AdminService {
	return &AdminService{
		db:                    db,
		memberRepository:      memberRepository,
		applicationRepository: applicationRepository,
		inquiryRepository:     inquiryRepository,
		newsletterRepository:  newsletterRepository,
		activityRepository:    activityRepository,
	}
}

// Dashboard issues four independent count queries; each count reflects its
// own read time.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalMembers, err = s.memberRepository.Count(ctx, s.db); err != nil {
		return nil, fmt.Errorf("회원 수 조회 실패: %w", err)
	}
	if stats.TotalApplications, err = s.applicationRepository.Count(ctx, s.db); err != nil {
		return nil, fmt.Errorf("신청 수 조회 실패: %w", err)
	}
	if stats.PendingInquiries, err = s.inquiryRepository.CountPending(ctx, s.db); err != nil {
		return nil, fmt.Errorf("대기 문의 수 조회 실패: %w", err)
	}
	if stats.NewsletterSubscribers, err = s.newsletterRepository.CountActive(ctx, s.db); err != nil {
		return nil, fmt.Errorf("구독자 수 조회 실패: %w", err)
	}

	return stats, nil
}

func (s *AdminService) ListMembers(ctx context.Context, query ListQuery) ([]model.Member, error) {
	members, err := s.memberRepository.List(ctx, s.db, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}
	return members, nil
}

func (s *AdminService) ListApplications(ctx context.Context, query ListQuery) ([]application.AdminApplication, error) {
	apps, err := s.applicationRepository.ListAll(ctx, s.db, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("신청 목록 조회 실패: %w", err)
	}
	return apps, nil
}

func (s *AdminService) ListInquiries(ctx context.Context, query ListQuery) ([]model.Inquiry, error) {
	inquiries, err := s.inquiryRepository.ListAll(ctx, s.db, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("문의 목록 조회 실패: %w", err)
	}
	return inquiries, nil
}

// ApproveApplication marks a pending application approved and stamps the decision.
func (s *AdminService) ApproveApplication(ctx context.Context, applicationID, adminID uint32) error {
	return s.setApplicationStatus(ctx, applicationID, adminID, model.ApplicationStatusApproved)
}

// RejectApplication marks a pending application rejected and stamps the decision.
func (s *AdminService) RejectApplication(ctx context.Context, applicationID, adminID uint32) error {
	return s.setApplicationStatus(ctx, applicationID, adminID, model.ApplicationStatusRejected)
}

func (s *AdminService) setApplicationStatus(ctx context.Context, applicationID, adminID uint32, status string) error {
	log := logger.FromContext(ctx)

	affected, err := s.applicationRepository.SetStatus(ctx, s.db, applicationID, status, &adminID)
	if err != nil {
		log.Error("신청 상태 변경 실패", "application_id", applicationID, "error", err)
		return fmt.Errorf("set application status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("error %w", application.ErrApplicationNotFound)
	}

	log.Info("신청 상태 변경", "application_id", applicationID, "status", status, "admin_id", adminID)
	return nil
}

func (s *AdminService) RespondInquiry(ctx context.Context, inquiryID, adminID uint32, response string) error {
	log := logger.FromContext(ctx)

	affected, err := s.inquiryRepository.Respond(ctx, s.db, inquiryID, response, adminID)
	if err != nil {
		log.Error("문의 답변 실패", "inquiry_id", inquiryID, "error", err)
		return fmt.Errorf("respond inquiry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("error %w", inquiry.ErrInquiryNotFound)
	}

	log.Info("문의 답변 완료", "inquiry_id", inquiryID, "admin_id", adminID)
	return nil
}

// ListMemberActivity returns the audit trail of one member, newest first.
func (s *AdminService) ListMemberActivity(ctx context.Context, memberID uint32, query ListQuery) ([]model.ActivityLog, error) {
	if _, err := s.memberRepository.FindByID(ctx, s.db, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error %w", member.ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	logs, err := s.activityRepository.ListByMember(ctx, s.db, memberID, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("활동 로그 조회 실패: %w", err)
	}
	return logs, nil
}

func (s *AdminService) UpdateMemberStatus(ctx context.Context, memberID uint32, status string) error {
	affected, err := s.memberRepository.UpdateStatus(ctx, s.db, memberID, status)
	if err != nil {
		return fmt.Errorf("update member status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("error %w", member.ErrMemberNotFound)
	}
	return nil
}

func (s *AdminService) DeleteMember(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	affected, err := s.memberRepository.Delete(ctx, s.db, memberID)
	if err != nil {
		log.Error("회원 삭제 실패", "member_id", memberID, "error", err)
		return fmt.Errorf("delete member: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("error %w", member.ErrMemberNotFound)
	}

	log.Info("회원 삭제 완료", "member_id", memberID)
	return nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/member"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/database"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"github.com/boracay-silvertown/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
	recorder         *activity.Recorder
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager, recorder *activity.Recorder) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
		recorder:         recorder,
	}
}

func (a *AuthService) Register(ctx context.Context, request *RegisterRequest, meta activity.RequestMeta) (*AuthResult, error) {
	log := logger.FromContext(ctx)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("비밀번호 해시 실패", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newMember := model.NewMember(
		request.Email,
		string(hashedPassword),
		request.Name,
		request.Phone,
		request.BirthDate,
		request.Nationality,
		request.PreferredLanguage,
	)

	err = database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.memberRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("회원 존재 여부 확인 실패", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("이미 등록된 이메일", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("error %w", member.ErrMemberAlreadyExists)
		}

		if err := a.memberRepository.Create(ctx, tx, newMember); err != nil {
			// 사전 확인과 INSERT 사이의 경합: unique 제약 위반도 중복 가입으로 처리
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("이메일 중복 (unique 제약)", "email", logger.MaskEmail(request.Email))
				return fmt.Errorf("error %w", member.ErrMemberAlreadyExists)
			}
			log.Error("회원 생성 실패", "error", err)
			return fmt.Errorf("create member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 감사 로그는 best-effort: 실패해도 가입은 유효
	a.recorder.Record(ctx, &newMember.ID, model.ActionRegister, "회원 가입", meta)

	result, err := a.issueTokens(newMember)
	if err != nil {
		log.Error("토큰 발급 실패", "error", err)
		return nil, err
	}

	log.Info("회원 가입 성공", "email", logger.MaskEmail(request.Email))
	return result, nil
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest, meta activity.RequestMeta) (*AuthResult, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by email
	found, err := a.memberRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - member email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Update last login time (로그인 자체는 이미 성공)
	if err := a.memberRepository.UpdateLastLogin(ctx, a.db, found.ID, time.Now().UTC()); err != nil {
		log.Warn("마지막 로그인 시간 갱신 실패", "error", err)
	}

	a.recorder.Record(ctx, &found.ID, model.ActionLogin, "로그인", meta)

	result, err := a.issueTokens(found)
	if err != nil {
		log.Error("토큰 발급 실패", "error", err)
		return nil, err
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email))
	return result, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*AuthResult, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil || claims.TokenType != token.REFRESH {
		log.Warn("갱신 토큰 검증 실패")
		return nil, fmt.Errorf("error %w", ErrInvalidRefreshToken)
	}

	id, err := strconv.ParseUint(claims.MemberID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("error %w", ErrInvalidRefreshToken)
	}

	// 토큰 발급 이후 역할/상태 변경을 반영하기 위해 회원을 다시 조회
	found, err := a.memberRepository.FindByID(ctx, a.db, uint32(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error %w", ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	return a.issueTokens(found)
}

func (a *AuthService) issueTokens(m *model.Member) (*AuthResult, error) {
	memberID := strconv.FormatUint(uint64(m.ID), 10)

	accessToken, err := a.tokenManager.GenerateAccessToken(memberID, m.Email, m.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(memberID, m.Email, m.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &AuthResult{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Member: MemberSummary{
			ID:     m.ID,
			Email:  m.Email,
			Name:   m.Name,
			Role:   m.Role,
			Status: m.Status,
		},
	}, nil
}

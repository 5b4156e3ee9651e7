package activity

import (
	"context"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// RequestMeta carries the client fingerprint handlers capture for the audit trail.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Recorder writes audit entries on a best-effort basis. A failed write never
// fails the primary mutation; it is logged at warn level and dropped.
type Recorder struct {
	db         *gorm.DB
	repository *ActivityLogRepository
}

func NewRecorder(db *gorm.DB, repository *ActivityLogRepository) *Recorder {
	return &Recorder{
		db:         db,
		repository: repository,
	}
}

// Record appends an activity log entry. memberID may be nil for anonymous actions.
// Call only after the primary mutation has succeeded.
func (r *Recorder) Record(ctx context.Context, memberID *uint32, action, description string, meta RequestMeta) {
	log := &model.ActivityLog{
		MemberID:    memberID,
		Action:      action,
		Description: description,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}

	if err := r.repository.Create(ctx, r.db, log); err != nil {
		logger.FromContext(ctx).Warn("활동 로그 기록 실패",
			"action", action,
			"error", err,
		)
	}
}

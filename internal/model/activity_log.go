package model

import "time"

// Activity log actions
const (
	ActionRegister               = "register"
	ActionLogin                  = "login"
	ActionPrePurchaseApplication = "pre_purchase_application"
	ActionPaymentConfirmed       = "payment_confirmed"
)

// ActivityLog is an append-only audit record of security-relevant member
// actions. Rows are never updated or deleted.
type ActivityLog struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	MemberID    *uint32 `gorm:"column:member_id;index" json:"member_id,omitempty"`
	Action      string  `gorm:"column:action;type:VARCHAR2(50);not null" json:"action"`
	Description string  `gorm:"column:description;type:VARCHAR2(500)" json:"description,omitempty"`
	IPAddress   string  `gorm:"column:ip_address;type:VARCHAR2(45)" json:"ip_address,omitempty"`
	UserAgent   string  `gorm:"column:user_agent;type:VARCHAR2(500)" json:"user_agent,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for ActivityLog
func (*ActivityLog) TableName() string {
	return "activity_logs"
}

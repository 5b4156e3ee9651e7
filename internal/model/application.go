package model

import "time"

// PrePurchaseApplication statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
	ApplicationStatusPaid     = "paid"
)

// PaymentMethodFullPayment is the default payment method when none is given.
const PaymentMethodFullPayment = "full_payment"

// PrePurchaseApplication is a member's reservation request against a
// membership type. TotalAmount snapshots the catalog price at creation time;
// the row is mutated only by admin approve/reject or payment confirmation.
type PrePurchaseApplication struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	MemberID         uint32 `gorm:"column:member_id;not null;index" json:"member_id"`
	MembershipTypeID uint32 `gorm:"column:membership_type_id;not null;index" json:"membership_type_id"`

	PreferredFloor       int     `gorm:"column:preferred_floor" json:"preferred_floor,omitempty"`            // 희망 층
	PreferredOrientation string  `gorm:"column:preferred_orientation;type:VARCHAR2(20)" json:"preferred_orientation,omitempty"` // 희망 방향
	PaymentMethod        string  `gorm:"column:payment_method;type:VARCHAR2(30);not null;default:full_payment" json:"payment_method"`
	DepositAmount        float64 `gorm:"column:deposit_amount;not null;default:0" json:"deposit_amount"`
	TotalAmount          float64 `gorm:"column:total_amount;not null" json:"total_amount"` // 신청 시점 가격 스냅샷

	Status     string     `gorm:"column:status;type:VARCHAR2(20);not null;default:pending" json:"status"`
	AdminNotes string     `gorm:"column:admin_notes;type:VARCHAR2(1000)" json:"admin_notes,omitempty"`
	ApprovedAt *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	ApprovedBy *uint32    `gorm:"column:approved_by" json:"approved_by,omitempty"`

	Member         Member         `gorm:"foreignKey:MemberID" json:"-"`
	MembershipType MembershipType `gorm:"foreignKey:MembershipTypeID" json:"-"`

	BaseEntity
}

// TableName specifies the table name for PrePurchaseApplication
func (*PrePurchaseApplication) TableName() string {
	return "pre_purchase_applications"
}

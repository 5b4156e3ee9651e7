package application

import (
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/model"
)

type CreateApplicationRequest struct {
	MembershipTypeID     uint32  `json:"membership_type_id" binding:"required"`
	PreferredFloor       int     `json:"preferred_floor" binding:"omitempty,min=1,max=4"`
	PreferredOrientation string  `json:"preferred_orientation" binding:"omitempty,max=20"`
	PaymentMethod        string  `json:"payment_method" binding:"omitempty,oneof=full_payment installment"`
	DepositAmount        float64 `json:"deposit_amount" binding:"omitempty,min=0"`
}

// MemberApplication is a member-facing row joined with the membership names.
type MemberApplication struct {
	model.PrePurchaseApplication
	MembershipName   string `gorm:"column:membership_name" json:"membership_name"`
	MembershipNameKo string `gorm:"column:membership_name_ko" json:"membership_name_ko"`
}

// AdminApplication is the operator listing row with member display fields joined in.
type AdminApplication struct {
	ID                   uint32     `gorm:"column:id" json:"id"`
	MemberID             uint32     `gorm:"column:member_id" json:"member_id"`
	MembershipTypeID     uint32     `gorm:"column:membership_type_id" json:"membership_type_id"`
	PreferredFloor       int        `gorm:"column:preferred_floor" json:"preferred_floor,omitempty"`
	PreferredOrientation string     `gorm:"column:preferred_orientation" json:"preferred_orientation,omitempty"`
	PaymentMethod        string     `gorm:"column:payment_method" json:"payment_method"`
	DepositAmount        float64    `gorm:"column:deposit_amount" json:"deposit_amount"`
	TotalAmount          float64    `gorm:"column:total_amount" json:"total_amount"`
	Status               string     `gorm:"column:status" json:"status"`
	CreatedAt            time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ApprovedAt           *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	MemberName           string     `gorm:"column:member_name" json:"member_name"`
	MemberEmail          string     `gorm:"column:member_email" json:"member_email"`
	MembershipName       string     `gorm:"column:membership_name" json:"membership_name"`
	MembershipNameKo     string     `gorm:"column:membership_name_ko" json:"membership_name_ko"`
	MembershipPrice      float64    `gorm:"column:membership_price" json:"membership_price"`
}

package model

import "time"

// Inquiry statuses
const (
	InquiryStatusPending  = "pending"
	InquiryStatusAnswered = "answered"
)

// InquiryCategoryGeneral is the default category when none is given.
const InquiryCategoryGeneral = "general"

// Inquiry is a visitor or member question. MemberID is nil for
// unauthenticated submissions; the row is mutated only by an admin response.
type Inquiry struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	MemberID *uint32 `gorm:"column:member_id;index" json:"member_id,omitempty"`
	Name     string  `gorm:"column:name;type:VARCHAR2(100);not null" json:"name"`
	Email    string  `gorm:"column:email;type:VARCHAR2(255);not null" json:"email"`
	Phone    string  `gorm:"column:phone;type:VARCHAR2(100)" json:"phone,omitempty"`
	Subject  string  `gorm:"column:subject;type:VARCHAR2(255);not null" json:"subject"`
	Message  string  `gorm:"column:message;type:VARCHAR2(2000);not null" json:"message"`
	Category string  `gorm:"column:category;type:VARCHAR2(30);not null;default:general" json:"category"`

	Status        string     `gorm:"column:status;type:VARCHAR2(20);not null;default:pending" json:"status"`
	AdminResponse string     `gorm:"column:admin_response;type:VARCHAR2(2000)" json:"admin_response,omitempty"`
	RespondedAt   *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`
	RespondedBy   *uint32    `gorm:"column:responded_by" json:"responded_by,omitempty"`

	BaseEntity
}

// TableName specifies the table name for Inquiry
func (*Inquiry) TableName() string {
	return "inquiries"
}

package model

import "time"

// Member roles
const (
	RoleMember  = "member"
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Member statuses
const (
	MemberStatusPending   = "pending"
	MemberStatusActive    = "active"
	MemberStatusSuspended = "suspended"
)

// Member represents a registered prospective buyer.
// PasswordHash is a bcrypt digest and must never be serialized to clients.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Email             string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email" json:"email"` // 이메일 (unique)
	PasswordHash      string `gorm:"column:password_hash;type:VARCHAR2(60);not null" json:"-"`                           // 암호화된 비밀번호
	Name              string `gorm:"column:name;type:VARCHAR2(100);not null" json:"name"`                                // 이름
	Phone             string `gorm:"column:phone;type:VARCHAR2(100)" json:"phone,omitempty"`                             // 연락처
	BirthDate         string `gorm:"column:birth_date;type:VARCHAR2(10)" json:"birth_date,omitempty"`                    // YYYY-MM-DD
	Nationality       string `gorm:"column:nationality;type:VARCHAR2(10);default:KR" json:"nationality,omitempty"`
	PreferredLanguage string `gorm:"column:preferred_language;type:VARCHAR2(10);default:ko" json:"preferred_language,omitempty"`

	Role   string `gorm:"column:role;type:VARCHAR2(20);not null;default:member" json:"role"`
	Status string `gorm:"column:status;type:VARCHAR2(20);not null;default:pending" json:"status"`

	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "members"
}

// NewMember creates a Member with the catalog defaults applied.
// passwordHash must already be a bcrypt digest (hashed in the service layer).
func NewMember(email, passwordHash, name, phone, birthDate, nationality, preferredLanguage string) *Member {
	if nationality == "" {
		nationality = "KR"
	}
	if preferredLanguage == "" {
		preferredLanguage = "ko"
	}
	return &Member{
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              name,
		Phone:             phone,
		BirthDate:         birthDate,
		Nationality:       nationality,
		PreferredLanguage: preferredLanguage,
		Role:              RoleMember,
		Status:            MemberStatusPending,
	}
}

// IsAdmin reports whether the member holds an operator role.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin || m.Role == RoleManager
}

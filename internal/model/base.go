package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"` // GORM이 자동 관리
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"` // GORM이 자동 관리
}

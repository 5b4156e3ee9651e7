package model

// MembershipType is a purchasable unit offering with a fixed catalog price.
// Immutable reference data; rows are seeded, never written by this service.
type MembershipType struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name          string  `gorm:"column:name;type:VARCHAR2(100);not null" json:"name"`
	NameKo        string  `gorm:"column:name_ko;type:VARCHAR2(100);not null" json:"name_ko"` // 한글 명칭
	Price         float64 `gorm:"column:price;not null" json:"price"`
	Description   string  `gorm:"column:description;type:VARCHAR2(1000)" json:"description,omitempty"`
	DescriptionKo string  `gorm:"column:description_ko;type:VARCHAR2(1000)" json:"description_ko,omitempty"`
	AreaSqm       float64 `gorm:"column:area_sqm" json:"area_sqm,omitempty"`     // 면적 (㎡)
	AreaPyeong    float64 `gorm:"column:area_pyeong" json:"area_pyeong,omitempty"` // 면적 (평)
	MaxOccupancy  int     `gorm:"column:max_occupancy" json:"max_occupancy,omitempty"`
	IsActive      bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`

	BaseEntity
}

// TableName specifies the table name for MembershipType
func (*MembershipType) TableName() string {
	return "membership_types"
}

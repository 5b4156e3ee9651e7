package model

// NewsletterSubscription is keyed on email; subscribing again with the same
// email updates name/language/is_active instead of erroring.
type NewsletterSubscription struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Email    string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_newsletter_email" json:"email"`
	Name     string `gorm:"column:name;type:VARCHAR2(100)" json:"name,omitempty"`
	Language string `gorm:"column:language;type:VARCHAR2(10);not null;default:ko" json:"language"`
	IsActive bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	BaseEntity
}

// TableName specifies the table name for NewsletterSubscription
func (*NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}

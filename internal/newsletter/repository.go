package newsletter

import (
	"context"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewsletterRepository struct{}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

// Upsert inserts the subscription or, when the email already exists,
// refreshes name/language/is_active. Idempotent per email.
func (r *NewsletterRepository) Upsert(ctx context.Context, db *gorm.DB, sub *model.NewsletterSubscription) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "language", "is_active", "updated_at"}),
		}).
		Create(sub).Error
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	err := db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *NewsletterRepository) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.NewsletterSubscription{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

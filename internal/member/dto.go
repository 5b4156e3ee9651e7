package member

import "time"

type GetProfileResponse struct {
	ID                uint32     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone,omitempty"`
	BirthDate         string     `json:"birth_date,omitempty"`
	Nationality       string     `json:"nationality,omitempty"`
	PreferredLanguage string     `json:"preferred_language,omitempty"`
	Role              string     `json:"role"`
	Status            string     `json:"status"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

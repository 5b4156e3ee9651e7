package auth

type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email,max=255"`
	Password          string `json:"password" binding:"required,min=8,max=72"`
	Name              string `json:"name" binding:"required,min=1,max=50"`
	Phone             string `json:"phone" binding:"omitempty,phone"`
	BirthDate         string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Nationality       string `json:"nationality" binding:"omitempty,max=10"`
	PreferredLanguage string `json:"preferred_language" binding:"omitempty,max=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// MemberSummary is the member projection returned with tokens.
// Never carries the password hash.
type MemberSummary struct {
	ID     uint32 `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type AuthResult struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	Member       MemberSummary `json:"member"`
}

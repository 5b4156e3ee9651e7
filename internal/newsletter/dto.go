package newsletter

type SubscribeRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"omitempty,max=100"`
	Language string `json:"language" binding:"omitempty,oneof=ko en"`
}

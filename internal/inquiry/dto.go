package inquiry

type CreateInquiryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=100"`
	Subject  string `json:"subject" binding:"required,min=1,max=255"`
	Message  string `json:"message" binding:"required,min=1,max=2000"`
	Category string `json:"category" binding:"omitempty,oneof=general membership facility visit payment"`
}

type RespondRequest struct {
	Response string `json:"response" binding:"required,min=1,max=2000"`
}

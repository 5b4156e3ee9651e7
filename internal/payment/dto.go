package payment

type CreateIntentRequest struct {
	MembershipTypeID uint32 `json:"membership_type_id" binding:"required"`
}

type ConfirmRequest struct {
	PaymentIntentID  string `json:"payment_intent_id" binding:"required"`
	MembershipTypeID uint32 `json:"membership_type_id" binding:"required"`
	PaymentMethod    string `json:"payment_method" binding:"omitempty,oneof=full_payment installment"`
	DepositAmount    float64 `json:"deposit_amount" binding:"omitempty,min=0"`
}
